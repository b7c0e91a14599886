package world

import (
	"cmp"
	"context"
	"math"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/mesh"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
)

// GenerateMesh emits the level as one triangle list: the secondary rooms
// (unless mainRoomsOnly), then the main rooms, then every corridor.
func (d *Dungeon) GenerateMesh(ctx context.Context, mainRoomsOnly bool) *mesh.Mesh {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate_mesh")
	defer span.End()

	m := mesh.New()
	if !mainRoomsOnly {
		for _, i := range d.SecondaryRooms() {
			AppendRoomMesh(m, &d.Rooms[i], d.Settings.LineTolerance)
		}
	}
	for _, i := range d.MainRooms {
		AppendRoomMesh(m, &d.Rooms[i], d.Settings.LineTolerance)
	}
	for _, p := range d.Paths {
		AppendPathMesh(m, p)
	}

	span.SetAttributes(
		attribute.Bool("mesh.main_rooms_only", mainRoomsOnly),
		attribute.Int("mesh.vertices", len(m.Vertices)),
		attribute.Int("mesh.triangles", m.TriangleCount()),
	)
	return m
}

// AppendRoomMesh adds the floor, ceiling and walls of r to m. Each wall is
// split around the entrances that lie on it within tolerance.
func AppendRoomMesh(m *mesh.Mesh, r *Room, tolerance float64) {
	c := r.Rect().Corners()
	h := r.FloorToCeiling

	m.AddQuad(geom.Lift(c[0], 0), geom.Lift(c[1], 0), geom.Lift(c[2], 0), geom.Lift(c[3], 0))
	m.AddQuadReversed(geom.Lift(c[0], h), geom.Lift(c[1], h), geom.Lift(c[2], h), geom.Lift(c[3], h))

	for i := range c {
		a, b := c[i], c[(i+1)%4]
		dir := b.Sub(a).Normalize()
		for _, piece := range wallPieces(a, b, r.Entrances, tolerance) {
			p0 := a.Add(dir.Scale(piece[0]))
			p1 := a.Add(dir.Scale(piece[1]))
			m.AddQuad(geom.Lift(p0, 0), geom.Lift(p0, h), geom.Lift(p1, h), geom.Lift(p1, 0))
		}
	}
}

// wallPieces returns the solid stretches of the wall a..b, as distances
// from a, once every entrance on the wall has been cut out.
func wallPieces(a, b geom.Vector2, entrances []Entrance, tolerance float64) [][2]float64 {
	length := a.Distance(b)
	dir := b.Sub(a).Normalize()

	var cuts [][2]float64
	for _, e := range entrances {
		if !geom.PointOnLine(e.Point, a, b, tolerance) {
			continue
		}
		t := e.Point.Sub(a).Dot(dir)
		lo := math.Max(0, t-e.Width/2)
		hi := math.Min(length, t+e.Width/2)
		if hi > lo {
			cuts = append(cuts, [2]float64{lo, hi})
		}
	}
	slices.SortFunc(cuts, func(x, y [2]float64) int { return cmp.Compare(x[0], y[0]) })

	var pieces [][2]float64
	pos := 0.0
	for _, cut := range cuts {
		if cut[0]-pos > tolerance {
			pieces = append(pieces, [2]float64{pos, cut[0]})
		}
		pos = math.Max(pos, cut[1])
	}
	if length-pos > tolerance {
		pieces = append(pieces, [2]float64{pos, length})
	}
	return pieces
}

// AppendPathMesh adds the corridor p to m: one prism per segment. The two
// prisms of a bent corridor are mitred so they meet along the diagonal
// through the elbow.
func AppendPathMesh(m *mesh.Mesh, p Path) {
	hw := p.Width / 2
	if !p.Bent {
		appendSegment(m, p.Start, p.End, hw, p.FloorToCeiling)
		return
	}

	d1 := p.Elbow.Sub(p.Start).Normalize()
	d2 := p.End.Sub(p.Elbow).Normalize()
	turn := d1.Cross(d2)
	if d1.IsZero() || d2.IsZero() || turn == 0 {
		appendSegment(m, p.Start, p.Elbow, hw, p.FloorToCeiling)
		appendSegment(m, p.Elbow, p.End, hw, p.FloorToCeiling)
		return
	}

	// The inner corner of the turn pulls back along the segment and the
	// outer corner pushes forward; the turn direction picks which side is
	// which.
	sign := math.Copysign(1, turn)
	o1 := d1.Perpendicular().Scale(hw)
	o2 := d2.Perpendicular().Scale(hw)
	m1 := d1.Scale(sign * hw)
	m2 := d2.Scale(sign * hw)

	m.AddPrism(
		p.Start.Sub(o1),
		p.Elbow.Sub(o1).Add(m1),
		p.Elbow.Add(o1).Sub(m1),
		p.Start.Add(o1),
		p.FloorToCeiling,
	)
	m.AddPrism(
		p.Elbow.Sub(o2).Sub(m2),
		p.End.Sub(o2),
		p.End.Add(o2),
		p.Elbow.Add(o2).Add(m2),
		p.FloorToCeiling,
	)
}

// appendSegment adds a straight prism of half width hw from start to end.
// Zero-length segments add nothing.
func appendSegment(m *mesh.Mesh, start, end geom.Vector2, hw, height float64) {
	dir := end.Sub(start).Normalize()
	if dir.IsZero() {
		return
	}
	o := dir.Perpendicular().Scale(hw)
	m.AddPrism(start.Sub(o), end.Sub(o), end.Add(o), start.Add(o), height)
}
