package graph

import (
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// DisjointSet is a union-find structure over the vertices 0..n-1.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// Find returns the representative of v's set, compressing the path.
func (ds *DisjointSet) Find(v int) int {
	root := v
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[v] != root {
		next := ds.parent[v]
		ds.parent[v] = root
		v = next
	}
	return root
}

// Union merges the sets of a and b. It returns false if they were already
// in the same set.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	return true
}

// MinimumSpanningTree runs Kruskal's algorithm over edges between the
// vertices 0..n-1. The result is in ascending weight order. It has n-1
// edges when the edge set connects every vertex, otherwise it is a
// minimum spanning forest.
func MinimumSpanningTree(n int, edges []Edge) []Edge {
	sorted := slices.Clone(edges)
	SortEdges(sorted)

	ds := NewDisjointSet(n)
	tree := make([]Edge, 0, max(n-1, 0))
	for _, e := range sorted {
		if ds.Union(e.A, e.B) {
			tree = append(tree, e)
			if len(tree) == n-1 {
				break
			}
		}
	}
	return tree
}

// Difference returns the edges of all that are not in subset, keeping the
// order of all.
func Difference(all, subset []Edge) []Edge {
	exclude := mapset.New[Key]()
	for _, e := range subset {
		exclude.Put(e.Key())
	}

	out := make([]Edge, 0, len(all))
	for _, e := range all {
		if !exclude.Has(e.Key()) {
			out = append(out, e)
		}
	}
	return out
}

// PickExtra draws up to count edges uniformly at random, without
// replacement, from candidates. candidates is not modified.
func PickExtra(rng *rand.Rand, candidates []Edge, count int) []Edge {
	pool := slices.Clone(candidates)
	picked := make([]Edge, 0, min(max(count, 0), len(pool)))
	for len(picked) < count && len(pool) > 0 {
		i := rng.Intn(len(pool))
		picked = append(picked, pool[i])
		pool = slices.Delete(pool, i, i+1)
	}
	return picked
}
