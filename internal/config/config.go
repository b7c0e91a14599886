// Package config holds the generation parameters and the layers that set
// them: defaults, embedded presets, environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/world"
)

// ErrInvalidConfig is wrapped by every error Validate reports.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every parameter of the generation pipeline.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `json:"seed"`

	RoomCount int     `json:"room_count"`
	MinSize   float64 `json:"min_size"`
	MaxSize   float64 `json:"max_size"`
	BoundsX   float64 `json:"bounds_x"`
	BoundsY   float64 `json:"bounds_y"`

	// Separation simulator
	Repulsion float64 `json:"repulsion"`
	Friction  float64 `json:"friction"`
	Delta     float64 `json:"delta"`
	MaxSteps  int     `json:"max_steps"`

	MainRooms  int `json:"main_rooms"`
	ExtraPaths int `json:"extra_paths"`

	CorridorWidth  float64 `json:"corridor_width"`
	CorridorHeight float64 `json:"corridor_height"`
	RoomHeight     float64 `json:"room_height"`
	LineTolerance  float64 `json:"line_tolerance"`

	// MainRoomsOnly leaves the secondary rooms out of the mesh.
	MainRoomsOnly bool `json:"main_rooms_only"`
}

// Default returns the configuration used when no preset is named.
func Default() Config {
	s := world.DefaultSettings()
	return Config{
		RoomCount:      30,
		MinSize:        4,
		MaxSize:        12,
		BoundsX:        50,
		BoundsY:        50,
		Repulsion:      50,
		Friction:       5,
		Delta:          0.05,
		MaxSteps:       s.MaxSteps,
		MainRooms:      8,
		ExtraPaths:     2,
		CorridorWidth:  s.CorridorWidth,
		CorridorHeight: s.CorridorHeight,
		RoomHeight:     s.RoomHeight,
		LineTolerance:  s.LineTolerance,
	}
}

// Bounds returns the sampling area for room centers.
func (c Config) Bounds() geom.Vector2 {
	return geom.Vec2(c.BoundsX, c.BoundsY)
}

// Settings returns the parts of c the dungeon itself holds on to.
func (c Config) Settings() world.Settings {
	return world.Settings{
		CorridorWidth:  c.CorridorWidth,
		CorridorHeight: c.CorridorHeight,
		RoomHeight:     c.RoomHeight,
		MaxSteps:       c.MaxSteps,
		LineTolerance:  c.LineTolerance,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.RoomCount >= 0, "room_count %d must not be negative", c.RoomCount)
	check(c.MinSize > 0, "min_size %v must be positive", c.MinSize)
	check(c.MaxSize >= c.MinSize, "max_size %v is below min_size %v", c.MaxSize, c.MinSize)
	check(c.BoundsX > 0 && c.BoundsY > 0, "bounds %vx%v must be positive", c.BoundsX, c.BoundsY)
	check(c.Friction > 0, "friction %v must be positive", c.Friction)
	check(c.Repulsion > c.Friction, "repulsion %v must exceed friction %v", c.Repulsion, c.Friction)
	check(c.Delta > 0, "delta %v must be positive", c.Delta)
	check(c.MaxSteps > 0, "max_steps %d must be positive", c.MaxSteps)
	check(c.MainRooms >= 0, "main_rooms %d must not be negative", c.MainRooms)
	check(c.ExtraPaths >= 0, "extra_paths %d must not be negative", c.ExtraPaths)
	check(c.CorridorWidth > 0, "corridor_width %v must be positive", c.CorridorWidth)
	check(c.CorridorHeight > 0, "corridor_height %v must be positive", c.CorridorHeight)
	check(c.RoomHeight > 0, "room_height %v must be positive", c.RoomHeight)
	check(c.LineTolerance > 0, "line_tolerance %v must be positive", c.LineTolerance)

	return errors.Join(errs...)
}
