package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/graph"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
)

// ErrInvalidParameters is wrapped by errors for unusable generation input.
var ErrInvalidParameters = errors.New("invalid generation parameters")

// Settings holds the generation parameters that are not passed per call.
type Settings struct {
	CorridorWidth  float64 // Width of every corridor
	CorridorHeight float64 // Floor-to-ceiling height of corridors
	RoomHeight     float64 // Floor-to-ceiling height given to sampled rooms
	MaxSteps       int     // Cap on time steps taken by SimulateRooms
	LineTolerance  float64 // Distance within which an entrance lies on a wall
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		CorridorWidth:  2,
		CorridorHeight: DefaultFloorToCeiling,
		RoomHeight:     DefaultFloorToCeiling,
		MaxSteps:       20000,
		LineTolerance:  geom.DefaultLineTolerance,
	}
}

// withDefaults replaces every non-positive field with its default.
func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.CorridorWidth <= 0 {
		s.CorridorWidth = def.CorridorWidth
	}
	if s.CorridorHeight <= 0 {
		s.CorridorHeight = def.CorridorHeight
	}
	if s.RoomHeight <= 0 {
		s.RoomHeight = def.RoomHeight
	}
	if s.MaxSteps <= 0 {
		s.MaxSteps = def.MaxSteps
	}
	if s.LineTolerance <= 0 {
		s.LineTolerance = def.LineTolerance
	}
	return s
}

// Dungeon owns every room, the connectivity graph and the corridors of one
// generated level. Rooms live in an arena; everything else refers to them
// by index.
type Dungeon struct {
	Settings Settings
	Bounds   geom.Vector2
	Rooms    []Room

	// MainRooms holds room indices in ascending area order.
	MainRooms []int

	Triangles []graph.Triangle // Delaunay triangles over room indices
	Delaunay  []graph.Edge     // Delaunay edges over room indices
	MST       []graph.Edge     // Minimum spanning tree of Delaunay
	Layout    []graph.Edge     // MST plus the extra loop edges
	Paths     []Path

	main []bool
	rng  *rand.Rand
}

// NewDungeon creates an empty dungeon. Zero or negative settings take their
// DefaultSettings value, and a nil rng is replaced by one seeded from the
// clock.
func NewDungeon(settings Settings, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dungeon{
		Settings: settings.withDefaults(),
		Rooms:    make([]Room, 0),
		rng:      rng,
	}
}

// Reset discards every room and everything derived from them.
func (d *Dungeon) Reset() {
	d.Rooms = d.Rooms[:0]
	d.resetGraph()
	d.MainRooms = nil
	d.main = nil
}

func (d *Dungeon) resetGraph() {
	d.Triangles = nil
	d.Delaunay = nil
	d.MST = nil
	d.Layout = nil
	d.resetPaths()
}

func (d *Dungeon) resetPaths() {
	d.Paths = nil
	for i := range d.Rooms {
		d.Rooms[i].ClearEntrances()
	}
}

// GenerateRooms replaces the dungeon's rooms with count rooms whose centers
// are uniform over bounds (centered on the origin) and whose sides are
// uniform in [minSize, maxSize].
func (d *Dungeon) GenerateRooms(ctx context.Context, count int, minSize, maxSize float64, bounds geom.Vector2) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate_rooms")
	defer span.End()

	if err := validateRoomParameters(count, minSize, maxSize, bounds); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	d.Reset()
	d.Bounds = bounds
	for i := 0; i < count; i++ {
		center := geom.Vec2(
			d.randomFloat(-bounds.X/2, bounds.X/2),
			d.randomFloat(-bounds.Y/2, bounds.Y/2),
		)
		d.AddRoom(center, d.randomFloat(minSize, maxSize), d.randomFloat(minSize, maxSize))
	}

	span.SetAttributes(
		attribute.Int("dungeon.room_count", count),
		attribute.Float64("dungeon.min_size", minSize),
		attribute.Float64("dungeon.max_size", maxSize),
		attribute.Float64("dungeon.bounds_x", bounds.X),
		attribute.Float64("dungeon.bounds_y", bounds.Y),
	)
	return nil
}

func validateRoomParameters(count int, minSize, maxSize float64, bounds geom.Vector2) error {
	switch {
	case count < 0:
		return fmt.Errorf("negative room count %d: %w", count, ErrInvalidParameters)
	case minSize <= 0:
		return fmt.Errorf("minimum room size %v must be positive: %w", minSize, ErrInvalidParameters)
	case maxSize < minSize:
		return fmt.Errorf("maximum room size %v below minimum %v: %w", maxSize, minSize, ErrInvalidParameters)
	case bounds.X <= 0 || bounds.Y <= 0:
		return fmt.Errorf("bounds %v must be positive: %w", bounds, ErrInvalidParameters)
	}
	return nil
}

// AddRoom appends a room and returns its index. Derived state (main rooms,
// graph, paths) is not updated.
func (d *Dungeon) AddRoom(center geom.Vector2, width, height float64) int {
	room := NewRoom(center, width, height)
	if d.Settings.RoomHeight > 0 {
		room.FloorToCeiling = d.Settings.RoomHeight
	}
	d.Rooms = append(d.Rooms, room)
	d.main = append(d.main, false)
	return len(d.Rooms) - 1
}

// IsMain reports whether room i was selected as a main room.
func (d *Dungeon) IsMain(i int) bool {
	return i >= 0 && i < len(d.main) && d.main[i]
}

// SecondaryRooms returns the indices of rooms that are not main rooms.
func (d *Dungeon) SecondaryRooms() []int {
	out := make([]int, 0, len(d.Rooms)-len(d.MainRooms))
	for i := range d.Rooms {
		if !d.IsMain(i) {
			out = append(out, i)
		}
	}
	return out
}

func (d *Dungeon) randomFloat(lo, hi float64) float64 {
	return lo + d.rng.Float64()*(hi-lo)
}
