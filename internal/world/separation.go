package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmesh/internal/telemetry"
)

// SimulationResult summarizes a SimulateRooms run.
type SimulationResult struct {
	Steps     int
	Converged bool
}

// TimeStep advances the separation simulation by one step of length dt:
// every overlapping pair is pushed apart along the line between their
// centers with the repulsion force, every moving room is slowed by the
// friction force, and every room is integrated. It reports whether the
// layout was collision free and no room is moving.
//
// Rooms with coincident centers have no separating direction and receive
// no force from each other.
func (d *Dungeon) TimeStep(repulsion, friction, dt float64) bool {
	colliding := false
	for i := range d.Rooms {
		a := &d.Rooms[i]
		for j := i + 1; j < len(d.Rooms); j++ {
			b := &d.Rooms[j]
			if !a.Intersects(b) {
				continue
			}
			colliding = true
			dir := b.Body.Position.Sub(a.Body.Position).Normalize()
			force := dir.Scale(repulsion)
			a.Body.ApplyForce(force.Neg(), dt)
			b.Body.ApplyForce(force, dt)
		}
	}

	for i := range d.Rooms {
		d.Rooms[i].Body.ApplyFriction(friction, dt)
	}

	moving := false
	for i := range d.Rooms {
		body := &d.Rooms[i].Body
		body.Integrate(dt)
		if body.Moving() {
			moving = true
		}
	}
	return !(colliding || moving)
}

// SimulateRooms calls TimeStep until it converges or Settings.MaxSteps is
// reached. A capped run leaves the rooms where they are; callers that need
// a collision-free layout should check Converged and resample.
func (d *Dungeon) SimulateRooms(ctx context.Context, repulsion, friction, dt float64) SimulationResult {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.simulate_rooms")
	defer span.End()

	var result SimulationResult
	for result.Steps < d.Settings.MaxSteps {
		result.Steps++
		if d.TimeStep(repulsion, friction, dt) {
			result.Converged = true
			break
		}
	}

	span.SetAttributes(
		attribute.Int("simulation.steps", result.Steps),
		attribute.Bool("simulation.converged", result.Converged),
		attribute.Int("simulation.overlapping_pairs", d.OverlappingPairs()),
	)
	return result
}

// OverlappingPairs counts the room pairs whose rectangles overlap.
func (d *Dungeon) OverlappingPairs() int {
	count := 0
	for i := range d.Rooms {
		for j := i + 1; j < len(d.Rooms); j++ {
			if d.Rooms[i].Intersects(&d.Rooms[j]) {
				count++
			}
		}
	}
	return count
}
