// Package mesh accumulates triangle-list geometry into one flat vertex and
// index buffer. Every primitive indexes from the vertex count at the moment
// it is appended, so primitives concatenate without collisions. Vertices
// are never welded.
package mesh

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

// ErrIndexOutOfRange is returned by Validate for a dangling index.
var ErrIndexOutOfRange = errors.New("index out of range")

var quadIndices = [6]int32{0, 1, 2, 0, 2, 3}

var prismIndices = [24]int32{
	0, 1, 2, 0, 2, 3, // floor
	4, 6, 5, 4, 7, 6, // ceiling
	5, 1, 0, 5, 0, 4, // wall on the minus side
	6, 3, 2, 6, 7, 3, // wall on the plus side
}

// Mesh is a triangle list.
type Mesh struct {
	Vertices []geom.Vector3
	Indices  []int32
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

func (m *Mesh) base() int32 {
	return int32(len(m.Vertices))
}

// TriangleCount returns len(Indices)/3.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// AddQuad appends the quad a, b, c, d as the triangles (a,b,c) and (a,c,d).
func (m *Mesh) AddQuad(a, b, c, d geom.Vector3) {
	base := m.base()
	m.Vertices = append(m.Vertices, a, b, c, d)
	for _, i := range quadIndices {
		m.Indices = append(m.Indices, base+i)
	}
}

// AddQuadReversed appends the quad like AddQuad but with opposite winding.
func (m *Mesh) AddQuadReversed(a, b, c, d geom.Vector3) {
	base := m.base()
	m.Vertices = append(m.Vertices, a, b, c, d)
	for i := len(quadIndices) - 1; i >= 0; i-- {
		m.Indices = append(m.Indices, base+quadIndices[i])
	}
}

// AddPrism appends an open-ended box with a floor, a ceiling and two side
// walls. The footprint is the quad startMinus, endMinus, endPlus, startPlus
// at y=0 extruded to y=height. The end caps are left open so corridors can
// join rooms and each other.
func (m *Mesh) AddPrism(startMinus, endMinus, endPlus, startPlus geom.Vector2, height float64) {
	base := m.base()
	footprint := [4]geom.Vector2{startMinus, endMinus, endPlus, startPlus}
	for _, p := range footprint {
		m.Vertices = append(m.Vertices, geom.Lift(p, 0))
	}
	for _, p := range footprint {
		m.Vertices = append(m.Vertices, geom.Lift(p, height))
	}
	for _, i := range prismIndices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Validate checks that the index buffer is a whole number of triangles and
// that every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := int32(len(m.Vertices))
	for pos, i := range m.Indices {
		if i < 0 || i >= n {
			return fmt.Errorf("index %d at position %d with %d vertices: %w", i, pos, n, ErrIndexOutOfRange)
		}
	}
	return nil
}
