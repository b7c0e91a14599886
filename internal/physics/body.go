// Package physics provides the point-mass rigid body used to push rooms
// apart. Bodies never rotate.
package physics

import "github.com/samdwyer/dungeonmesh/internal/geom"

const (
	// DefaultMass is used for bodies created without an explicit mass.
	DefaultMass = 1.0

	// StopThreshold is the speed below which a body's velocity snaps to zero.
	StopThreshold = 1e-4
)

// Body is a point mass with position and velocity.
type Body struct {
	Position geom.Vector2
	Velocity geom.Vector2
	Mass     float64
}

// NewBody creates a body at rest at pos with DefaultMass.
func NewBody(pos geom.Vector2) Body {
	return Body{Position: pos, Mass: DefaultMass}
}

func (b *Body) mass() float64 {
	if b.Mass <= 0 {
		b.Mass = DefaultMass
	}
	return b.Mass
}

// ApplyForce accelerates the body by f over dt. Residual velocities below
// StopThreshold are snapped to zero.
func (b *Body) ApplyForce(f geom.Vector2, dt float64) {
	b.Velocity = b.Velocity.Add(f.Div(b.mass()).Scale(dt))
	if b.Velocity.Length() < StopThreshold {
		b.Velocity = geom.Vector2{}
	}
}

// ApplyFriction applies a force of the given magnitude against the current
// velocity. Friction can stop the body but never reverses it.
func (b *Body) ApplyFriction(magnitude, dt float64) {
	speed := b.Velocity.Length()
	if speed == 0 {
		return
	}
	if magnitude*dt/b.mass() >= speed {
		b.Velocity = geom.Vector2{}
		return
	}
	b.ApplyForce(b.Velocity.Normalize().Scale(-magnitude), dt)
}

// Integrate advances the position by the current velocity over dt.
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Moving reports whether the body has a nonzero velocity.
func (b *Body) Moving() bool {
	return b.Velocity != (geom.Vector2{})
}
