package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

func newTestDungeon(seed int64) *Dungeon {
	return NewDungeon(DefaultSettings(), rand.New(rand.NewSource(seed)))
}

func generate(t *testing.T, d *Dungeon) {
	t.Helper()
	ctx := context.Background()
	if err := d.GenerateRooms(ctx, 30, 4, 10, geom.Vec2(40, 40)); err != nil {
		t.Fatalf("GenerateRooms: %v", err)
	}
	d.SimulateRooms(ctx, 50, 5, 0.05)
	d.SelectMainRooms(8)
	d.BuildGraph(ctx, 2)
	d.GeneratePaths(ctx)
}

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	d1 := newTestDungeon(12345)
	d2 := newTestDungeon(12345)
	generate(t, d1)
	generate(t, d2)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		r1, r2 := d1.Rooms[i], d2.Rooms[i]
		if r1.Center() != r2.Center() || r1.Width != r2.Width || r1.Height != r2.Height {
			t.Errorf("Room %d mismatch: %v %vx%v != %v %vx%v",
				i, r1.Center(), r1.Width, r1.Height, r2.Center(), r2.Width, r2.Height)
		}
	}

	if len(d1.Layout) != len(d2.Layout) {
		t.Fatalf("Layout size mismatch: %d != %d", len(d1.Layout), len(d2.Layout))
	}
	for i := range d1.Layout {
		if !d1.Layout[i].Equal(d2.Layout[i]) {
			t.Errorf("Layout edge %d mismatch: %v != %v", i, d1.Layout[i], d2.Layout[i])
		}
	}

	m1 := d1.GenerateMesh(context.Background(), false)
	m2 := d2.GenerateMesh(context.Background(), false)
	if len(m1.Vertices) != len(m2.Vertices) || len(m1.Indices) != len(m2.Indices) {
		t.Fatalf("Mesh size mismatch: %d/%d != %d/%d",
			len(m1.Vertices), len(m1.Indices), len(m2.Vertices), len(m2.Indices))
	}
	for i := range m1.Vertices {
		if m1.Vertices[i] != m2.Vertices[i] {
			t.Fatalf("Vertex %d mismatch: %v != %v", i, m1.Vertices[i], m2.Vertices[i])
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	// Generate two dungeons with different seeds - they should be different
	d1 := newTestDungeon(12345)
	d2 := newTestDungeon(54321)
	ctx := context.Background()
	if err := d1.GenerateRooms(ctx, 10, 4, 10, geom.Vec2(40, 40)); err != nil {
		t.Fatal(err)
	}
	if err := d2.GenerateRooms(ctx, 10, 4, 10, geom.Vec2(40, 40)); err != nil {
		t.Fatal(err)
	}

	identical := true
	for i := range d1.Rooms {
		if d1.Rooms[i].Center() != d2.Rooms[i].Center() {
			identical = false
			break
		}
	}
	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestGenerateRoomsRespectsRanges(t *testing.T) {
	d := newTestDungeon(1)
	bounds := geom.Vec2(50, 30)
	if err := d.GenerateRooms(context.Background(), 200, 3, 9, bounds); err != nil {
		t.Fatalf("GenerateRooms: %v", err)
	}
	if len(d.Rooms) != 200 {
		t.Fatalf("rooms = %d, want 200", len(d.Rooms))
	}
	for i, r := range d.Rooms {
		if r.Width < 3 || r.Width > 9 || r.Height < 3 || r.Height > 9 {
			t.Errorf("room %d size %vx%v outside [3, 9]", i, r.Width, r.Height)
		}
		c := r.Center()
		if c.X < -25 || c.X > 25 || c.Y < -15 || c.Y > 15 {
			t.Errorf("room %d center %v outside bounds", i, c)
		}
		if r.FloorToCeiling != DefaultFloorToCeiling {
			t.Errorf("room %d height = %v", i, r.FloorToCeiling)
		}
		if r.Body.Moving() {
			t.Errorf("room %d starts moving", i)
		}
	}
}

func TestGenerateRoomsReplacesState(t *testing.T) {
	d := newTestDungeon(2)
	generate(t, d)
	if err := d.GenerateRooms(context.Background(), 5, 4, 10, geom.Vec2(40, 40)); err != nil {
		t.Fatal(err)
	}
	if len(d.Rooms) != 5 || len(d.MainRooms) != 0 || len(d.Layout) != 0 || len(d.Paths) != 0 {
		t.Errorf("regeneration kept old state: rooms=%d main=%d layout=%d paths=%d",
			len(d.Rooms), len(d.MainRooms), len(d.Layout), len(d.Paths))
	}
}

func TestGenerateRoomsInvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		min, max float64
		bounds   geom.Vector2
	}{
		{"negative count", -1, 1, 2, geom.Vec2(10, 10)},
		{"zero min", 5, 0, 2, geom.Vec2(10, 10)},
		{"max below min", 5, 3, 2, geom.Vec2(10, 10)},
		{"zero bounds", 5, 1, 2, geom.Vec2(0, 10)},
	}
	for _, tt := range tests {
		d := newTestDungeon(1)
		err := d.GenerateRooms(context.Background(), tt.count, tt.min, tt.max, tt.bounds)
		if !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("%s: err = %v, want ErrInvalidParameters", tt.name, err)
		}
	}

	d := newTestDungeon(1)
	if err := d.GenerateRooms(context.Background(), 0, 1, 1, geom.Vec2(1, 1)); err != nil {
		t.Errorf("zero rooms of a fixed size should be valid: %v", err)
	}
}

func TestNewDungeonZeroSettingsUseDefaults(t *testing.T) {
	d := NewDungeon(Settings{}, rand.New(rand.NewSource(1)))
	if d.Settings != DefaultSettings() {
		t.Fatalf("Settings = %+v, want %+v", d.Settings, DefaultSettings())
	}

	partial := NewDungeon(Settings{CorridorWidth: 4, MaxSteps: -3}, rand.New(rand.NewSource(1)))
	if partial.Settings.CorridorWidth != 4 {
		t.Errorf("CorridorWidth = %v, want the given 4", partial.Settings.CorridorWidth)
	}
	if partial.Settings.MaxSteps != DefaultSettings().MaxSteps {
		t.Errorf("MaxSteps = %d, want the default", partial.Settings.MaxSteps)
	}

	d.AddRoom(geom.Vec2(0, 0), 10, 10)
	d.AddRoom(geom.Vec2(20, 0), 10, 10)
	res := d.SimulateRooms(context.Background(), 50, 5, 0.05)
	if !res.Converged || res.Steps != 1 {
		t.Errorf("separated rooms with zero settings: %+v, want converged in 1 step", res)
	}
	if h := d.Rooms[0].FloorToCeiling; h != DefaultFloorToCeiling {
		t.Errorf("room height = %v, want %v", h, DefaultFloorToCeiling)
	}
}

func TestNewDungeonWithoutRNG(t *testing.T) {
	d := NewDungeon(DefaultSettings(), nil)
	if err := d.GenerateRooms(context.Background(), 3, 1, 2, geom.Vec2(10, 10)); err != nil {
		t.Fatalf("GenerateRooms: %v", err)
	}
	if len(d.Rooms) != 3 {
		t.Errorf("rooms = %d, want 3", len(d.Rooms))
	}
}

