package world

import (
	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/physics"
)

// DefaultFloorToCeiling is the room height used when none is configured.
const DefaultFloorToCeiling = 3.0

// Entrance is a door opening punched into a room wall by a corridor.
type Entrance struct {
	Point geom.Vector2 // Position on the room perimeter
	Width float64      // Width of the corridor that created it
}

// Room is a rectangular room. Its position lives in the rigid body that the
// separation simulator moves; width and height never change.
type Room struct {
	Body           physics.Body
	Width, Height  float64
	FloorToCeiling float64
	Entrances      []Entrance

	// EntranceWidth is the width of the last corridor attached to the room.
	// Per-opening widths are kept on each Entrance.
	EntranceWidth float64
}

// NewRoom creates a room at rest centered on center.
func NewRoom(center geom.Vector2, width, height float64) Room {
	return Room{
		Body:           physics.NewBody(center),
		Width:          width,
		Height:         height,
		FloorToCeiling: DefaultFloorToCeiling,
	}
}

// Center returns the room's current center.
func (r *Room) Center() geom.Vector2 {
	return r.Body.Position
}

// Rect returns the room's current footprint.
func (r *Room) Rect() geom.Rect {
	return geom.Rect{Center: r.Body.Position, Width: r.Width, Height: r.Height}
}

// Area returns width times height.
func (r *Room) Area() float64 {
	return r.Width * r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r *Room) Intersects(other *Room) bool {
	return r.Rect().Overlaps(other.Rect())
}

// AddEntrance records a door opening of the given width at p.
func (r *Room) AddEntrance(p geom.Vector2, width float64) {
	r.Entrances = append(r.Entrances, Entrance{Point: p, Width: width})
	r.EntranceWidth = width
}

// ClearEntrances removes every door opening.
func (r *Room) ClearEntrances() {
	r.Entrances = nil
	r.EntranceWidth = 0
}
