// Package graph builds the room connectivity graph: a brute-force Delaunay
// edge set, its minimum spanning tree, and a few extra loop edges.
//
// Vertices are identified by their index into the caller's point slice.
package graph

import (
	"cmp"
	"fmt"
	"slices"
)

// Key identifies an unordered vertex pair. A is always the smaller index.
type Key struct {
	A, B int
}

// Edge is an undirected, weighted edge between two vertices.
type Edge struct {
	A, B   int
	Weight float64
}

// NewEdge creates an edge with its endpoints in canonical order.
func NewEdge(a, b int, weight float64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b, Weight: weight}
}

// Key returns the unordered pair identifying e.
func (e Edge) Key() Key {
	if e.A > e.B {
		return Key{A: e.B, B: e.A}
	}
	return Key{A: e.A, B: e.B}
}

// Equal reports whether e and o connect the same vertices, in either order.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d (%.2f)", e.A, e.B, e.Weight)
}

// Compare orders edges by weight, then by endpoints so the order is total.
func Compare(a, b Edge) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	ka, kb := a.Key(), b.Key()
	if c := cmp.Compare(ka.A, kb.A); c != 0 {
		return c
	}
	return cmp.Compare(ka.B, kb.B)
}

// SortEdges sorts edges in place by Compare.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, Compare)
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}
