// Package geom provides the 2D and 3D math used by dungeon generation.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the per-component tolerance used by Equal.
const Epsilon = 1e-8

// Vector2 is a 2D vector. Dungeon layouts live in the XY plane.
type Vector2 struct {
	X, Y float64
}

// Vec2 is shorthand for Vector2{X: x, Y: y}.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides by s. Dividing by zero yields the zero vector.
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns the squared length of v.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length. It uses an exact 1/sqrt.
func (v Vector2) Normalize() Vector2 {
	sq := v.LengthSquared()
	if sq == 0 {
		return Vector2{}
	}
	inv := 1 / math.Sqrt(sq)
	return Vector2{X: v.X * inv, Y: v.Y * inv}
}

// Perpendicular rotates v by 90 degrees counterclockwise.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Distance returns the distance between v and o.
func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// Equal reports whether both components differ by less than Epsilon.
func (v Vector2) Equal(o Vector2) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}

// IsZero reports whether v equals the zero vector within Epsilon.
func (v Vector2) IsZero() bool {
	return v.Equal(Vector2{})
}

// String formats v with two decimals.
func (v Vector2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Vector3 is a 3D vector. Meshes use Y as the up axis.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 is shorthand for Vector3{X: x, Y: y, Z: z}.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Lift places a layout point at height y: (p.X, y, p.Y).
func Lift(p Vector2, y float64) Vector3 {
	return Vector3{X: p.X, Y: y, Z: p.Y}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides by s. Dividing by zero yields the zero vector.
func (v Vector3) Div(s float64) Vector3 {
	if s == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// Equal reports whether all components differ by less than Epsilon.
func (v Vector3) Equal(o Vector3) bool {
	return math.Abs(v.X-o.X) < Epsilon &&
		math.Abs(v.Y-o.Y) < Epsilon &&
		math.Abs(v.Z-o.Z) < Epsilon
}
