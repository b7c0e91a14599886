package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

func vec(v geom.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FaceNormals returns one unit normal per triangle, following the
// right-hand rule on the index order. Degenerate triangles get the up
// vector.
func (m *Mesh) FaceNormals() []geom.Vector3 {
	normals := make([]geom.Vector3, 0, m.TriangleCount())
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := vec(m.Vertices[m.Indices[t]])
		b := vec(m.Vertices[m.Indices[t+1]])
		c := vec(m.Vertices[m.Indices[t+2]])

		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() < 1e-12 {
			normals = append(normals, geom.Vec3(0, 1, 0))
			continue
		}
		n = n.Normalize()
		normals = append(normals, geom.Vec3(n[0], n[1], n[2]))
	}
	return normals
}

// WriteOBJ writes m as a Wavefront OBJ object with per-face normals.
func WriteOBJ(w io.Writer, name string, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid mesh: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	normals := m.FaceNormals()
	for _, n := range normals {
		fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", n.X, n.Y, n.Z)
	}
	for t := range normals {
		i := 3 * t
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			m.Indices[i]+1, t+1,
			m.Indices[i+1]+1, t+1,
			m.Indices[i+2]+1, t+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OBJ: %w", err)
	}
	return nil
}
