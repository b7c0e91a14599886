package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
)

// Path is a corridor between two rooms. A straight path runs from Start to
// End; a bent path runs from Start to Elbow and then from Elbow to End at a
// right angle.
type Path struct {
	From, To       int // Room indices
	Start, End     geom.Vector2
	Elbow          geom.Vector2 // Only meaningful when Bent
	Width          float64
	FloorToCeiling float64
	Bent           bool
}

// Segments returns the straight pieces of the path in order.
func (p Path) Segments() [][2]geom.Vector2 {
	if p.Bent {
		return [][2]geom.Vector2{{p.Start, p.Elbow}, {p.Elbow, p.End}}
	}
	return [][2]geom.Vector2{{p.Start, p.End}}
}

// Length returns the total length along the path's center line.
func (p Path) Length() float64 {
	var total float64
	for _, s := range p.Segments() {
		total += s[0].Distance(s[1])
	}
	return total
}

// Route computes the corridor between rooms a and b and records the door
// openings on both rooms.
//
// If the rooms share at least width along X the corridor is a straight
// vertical run through the middle of the shared interval, and likewise for
// Y. Otherwise it leaves the side wall of a that faces b, turns at
// (end.X, start.Y), and enters the wall of b that faces a. When that elbow
// falls inside either room the corridor leaves the wall of a that faces b
// vertically and turns at (start.X, end.Y) instead. When both elbows fall
// inside a room the rooms must share some interval, and the corridor runs
// straight through the middle of the longer one even though it is narrower
// than width.
func Route(a, b *Room, width, height float64) Path {
	ra, rb := a.Rect(), b.Rect()
	p := Path{Width: width, FloorToCeiling: height}

	xlo, xhi, xOverlap := ra.OverlapX(rb)
	ylo, yhi, yOverlap := ra.OverlapY(rb)
	switch {
	case xOverlap >= width:
		p.Start, p.End = straightVertical(ra, rb, (xlo+xhi)/2)
	case yOverlap >= width:
		p.Start, p.End = straightHorizontal(ra, rb, (ylo+yhi)/2)
	default:
		if start, elbow, end, ok := bendHorizontalFirst(ra, rb); ok {
			p.Start, p.Elbow, p.End, p.Bent = start, elbow, end, true
		} else if start, elbow, end, ok := bendVerticalFirst(ra, rb); ok {
			p.Start, p.Elbow, p.End, p.Bent = start, elbow, end, true
		} else if xOverlap >= yOverlap {
			p.Start, p.End = straightVertical(ra, rb, (xlo+xhi)/2)
		} else {
			p.Start, p.End = straightHorizontal(ra, rb, (ylo+yhi)/2)
		}
	}

	a.AddEntrance(p.Start, width)
	b.AddEntrance(p.End, width)
	return p
}

func straightVertical(ra, rb geom.Rect, x float64) (start, end geom.Vector2) {
	if rb.Center.Y >= ra.Center.Y {
		return geom.Vec2(x, ra.Max().Y), geom.Vec2(x, rb.Min().Y)
	}
	return geom.Vec2(x, ra.Min().Y), geom.Vec2(x, rb.Max().Y)
}

func straightHorizontal(ra, rb geom.Rect, y float64) (start, end geom.Vector2) {
	if rb.Center.X >= ra.Center.X {
		return geom.Vec2(ra.Max().X, y), geom.Vec2(rb.Min().X, y)
	}
	return geom.Vec2(ra.Min().X, y), geom.Vec2(rb.Max().X, y)
}

// bendHorizontalFirst leaves a through its side wall and enters b through
// its top or bottom. ok is false when the elbow lies inside either room.
func bendHorizontalFirst(ra, rb geom.Rect) (start, elbow, end geom.Vector2, ok bool) {
	startX := ra.Max().X
	if rb.Center.X < ra.Center.X {
		startX = ra.Min().X
	}
	endY := rb.Min().Y
	if rb.Center.Y < ra.Center.Y {
		endY = rb.Max().Y
	}
	start = geom.Vec2(startX, ra.Center.Y)
	end = geom.Vec2(rb.Center.X, endY)
	elbow = geom.Vec2(end.X, start.Y)
	return start, elbow, end, !ra.Contains(elbow) && !rb.Contains(elbow)
}

// bendVerticalFirst leaves a through its top or bottom and enters b through
// its side wall. ok is false when the elbow lies inside either room.
func bendVerticalFirst(ra, rb geom.Rect) (start, elbow, end geom.Vector2, ok bool) {
	startY := ra.Max().Y
	if rb.Center.Y < ra.Center.Y {
		startY = ra.Min().Y
	}
	endX := rb.Min().X
	if rb.Center.X < ra.Center.X {
		endX = rb.Max().X
	}
	start = geom.Vec2(ra.Center.X, startY)
	end = geom.Vec2(endX, rb.Center.Y)
	elbow = geom.Vec2(start.X, end.Y)
	return start, elbow, end, !ra.Contains(elbow) && !rb.Contains(elbow)
}

// GeneratePaths routes a corridor for every Layout edge. Paths and
// entrances from a previous call are discarded first.
func (d *Dungeon) GeneratePaths(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate_paths")
	defer span.End()

	d.resetPaths()

	bent := 0
	for _, e := range d.Layout {
		p := Route(&d.Rooms[e.A], &d.Rooms[e.B], d.Settings.CorridorWidth, d.Settings.CorridorHeight)
		p.From, p.To = e.A, e.B
		if p.Bent {
			bent++
		}
		d.Paths = append(d.Paths, p)
	}

	span.SetAttributes(
		attribute.Int("paths.count", len(d.Paths)),
		attribute.Int("paths.bent", bent),
	)
}
