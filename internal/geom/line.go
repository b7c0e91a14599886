package geom

import "math"

// DefaultLineTolerance is the distance within which a point counts as lying
// on a line segment.
const DefaultLineTolerance = 0.001

// DistanceToLine returns the distance from p to the infinite line through a
// and b. If a and b coincide it returns the distance from p to a.
func DistanceToLine(p, a, b Vector2) float64 {
	ab := b.Sub(a)
	l := ab.Length()
	if l == 0 {
		return p.Distance(a)
	}
	return math.Abs(ab.Cross(p.Sub(a))) / l
}

// DistanceToSegment returns the distance from p to the segment a..b.
func DistanceToSegment(p, a, b Vector2) float64 {
	ab := b.Sub(a)
	sq := ab.LengthSquared()
	if sq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / sq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Scale(t)))
}

// PointOnLine reports whether p lies on the segment a..b within tolerance.
func PointOnLine(p, a, b Vector2, tolerance float64) bool {
	return DistanceToSegment(p, a, b) <= tolerance
}
