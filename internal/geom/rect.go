package geom

import "math"

// Rect is an axis-aligned rectangle described by its center and size.
// "Top" is the -Y side.
type Rect struct {
	Center        Vector2
	Width, Height float64
}

func (r Rect) halfSize() Vector2 {
	return Vector2{X: r.Width / 2, Y: r.Height / 2}
}

// TopLeft returns the corner with the smallest X and Y.
func (r Rect) TopLeft() Vector2 {
	h := r.halfSize()
	return r.Center.Add(Vector2{X: -h.X, Y: -h.Y})
}

// TopRight returns the corner with the largest X and smallest Y.
func (r Rect) TopRight() Vector2 {
	h := r.halfSize()
	return r.Center.Add(Vector2{X: h.X, Y: -h.Y})
}

// BottomRight returns the corner with the largest X and Y.
func (r Rect) BottomRight() Vector2 {
	return r.Center.Add(r.halfSize())
}

// BottomLeft returns the corner with the smallest X and largest Y.
func (r Rect) BottomLeft() Vector2 {
	h := r.halfSize()
	return r.Center.Add(Vector2{X: -h.X, Y: h.Y})
}

// Corners returns the corners in winding order: top-left, top-right,
// bottom-right, bottom-left.
func (r Rect) Corners() [4]Vector2 {
	return [4]Vector2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Vector2 {
	return r.TopLeft()
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Vector2 {
	return r.BottomRight()
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Overlaps reports whether the interiors of r and o intersect. Rectangles
// that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	return rMin.X < oMax.X && rMax.X > oMin.X &&
		rMin.Y < oMax.Y && rMax.Y > oMin.Y
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Vector2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// OnBoundary reports whether p lies on one of r's edges within tolerance.
func (r Rect) OnBoundary(p Vector2, tolerance float64) bool {
	c := r.Corners()
	for i := range c {
		if PointOnLine(p, c[i], c[(i+1)%4], tolerance) {
			return true
		}
	}
	return false
}

// OverlapX returns the shared X interval of r and o. The length is
// negative when they are separated along X.
func (r Rect) OverlapX(o Rect) (lo, hi, length float64) {
	lo = math.Max(r.Min().X, o.Min().X)
	hi = math.Min(r.Max().X, o.Max().X)
	return lo, hi, hi - lo
}

// OverlapY returns the shared Y interval of r and o. The length is
// negative when they are separated along Y.
func (r Rect) OverlapY(o Rect) (lo, hi, length float64) {
	lo = math.Max(r.Min().Y, o.Min().Y)
	hi = math.Min(r.Max().Y, o.Max().Y)
	return lo, hi, hi - lo
}
