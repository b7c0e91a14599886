package graph

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

// Tolerance is the single absolute tolerance used by the triangulation: a
// triple whose doubled signed area is within Tolerance of zero is
// collinear, and a point counts as inside a circumcircle only when its
// squared distance to the center is smaller than the squared radius by more
// than Tolerance.
const Tolerance = 1e-9

// Circle is a circumcircle with its squared radius.
type Circle struct {
	Center   geom.Vector2
	RadiusSq float64
}

// Circumcircle returns the circle through a, b and c. ok is false when the
// three points are collinear.
func Circumcircle(a, b, c geom.Vector2) (circle Circle, ok bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	det := ab.Cross(ac)
	if math.Abs(det) <= Tolerance {
		return Circle{}, false
	}

	abSq := ab.LengthSquared()
	acSq := ac.LengthSquared()
	d := 2 * det
	ux := (ac.Y*abSq - ab.Y*acSq) / d
	uy := (ab.X*acSq - ac.X*abSq) / d

	return Circle{
		Center:   geom.Vec2(a.X+ux, a.Y+uy),
		RadiusSq: ux*ux + uy*uy,
	}, true
}

// StrictlyContains reports whether p lies inside the circle, excluding
// points on the circle within Tolerance.
func (c Circle) StrictlyContains(p geom.Vector2) bool {
	return p.Sub(c.Center).LengthSquared() < c.RadiusSq-Tolerance
}

// Triangle is a triple of vertex indices. Delaunay emits them with
// I < J < K.
type Triangle struct {
	I, J, K int
}

// Triangulation is the result of Delaunay.
type Triangulation struct {
	Triangles []Triangle
	Edges     []Edge // sorted by Compare
}

// Delaunay computes the Delaunay edge set of points by testing every triple
// against every other point. It runs in O(n^4). Fewer than three points, or
// a fully collinear set, yields no edges.
func Delaunay(points []geom.Vector2) Triangulation {
	n := len(points)
	var tri Triangulation
	if n < 3 {
		return tri
	}

	seen := mapset.New[Key]()
	addEdge := func(a, b int) {
		e := NewEdge(a, b, points[a].Distance(points[b]))
		if seen.Has(e.Key()) {
			return
		}
		seen.Put(e.Key())
		tri.Edges = append(tri.Edges, e)
	}

	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				circle, ok := Circumcircle(points[i], points[j], points[k])
				if !ok || !emptyCircle(circle, points, i, j, k) {
					continue
				}
				tri.Triangles = append(tri.Triangles, Triangle{I: i, J: j, K: k})
				addEdge(i, j)
				addEdge(j, k)
				addEdge(i, k)
			}
		}
	}

	SortEdges(tri.Edges)
	return tri
}

func emptyCircle(c Circle, points []geom.Vector2, i, j, k int) bool {
	for p := range points {
		if p == i || p == j || p == k {
			continue
		}
		if c.StrictlyContains(points[p]) {
			return false
		}
	}
	return true
}
