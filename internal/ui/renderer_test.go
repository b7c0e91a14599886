package ui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/world"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(s.Close)
	sim.SetSize(w, h)
	return s, sim
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestMapSize(t *testing.T) {
	s, _ := newTestScreen(t, 40, 12)
	w, h := NewRenderer(s).MapSize()
	if w != 40 || h != 12-StatusLines {
		t.Errorf("MapSize() = %dx%d, want 40x%d", w, h, 12-StatusLines)
	}
}

func TestRenderDrawsGridAndStatus(t *testing.T) {
	s, sim := newTestScreen(t, 40, 12)
	r := NewRenderer(s)

	d := world.NewDungeon(world.DefaultSettings(), rand.New(rand.NewSource(1)))
	d.AddRoom(geom.Vec2(0, 0), 10, 10)
	d.SelectMainRooms(1)
	w, h := r.MapSize()
	grid := d.Rasterize(w, h)

	r.Render(grid, "step 3")

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if got, want := cellRune(sim, x, y), grid.GetTile(x, y).Rune(); got != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
	if grid.Count(world.TileMainFloor) == 0 {
		t.Fatal("test grid has no main floor")
	}

	status := ""
	for x := 0; x < 6; x++ {
		status += string(cellRune(sim, x, 11))
	}
	if status != "step 3" {
		t.Errorf("status line = %q", status)
	}
}

func TestRenderMessageClipsAtEdge(t *testing.T) {
	s, sim := newTestScreen(t, 4, 2)
	NewRenderer(s).RenderMessage("overflowing", 0)
	s.Show()

	got := ""
	for x := 0; x < 4; x++ {
		got += string(cellRune(sim, x, 0))
	}
	if got != "over" {
		t.Errorf("row 0 = %q, want %q", got, "over")
	}
}

func TestTileStyles(t *testing.T) {
	if tileStyle(world.TileWall) == tileStyle(world.TileMainFloor) {
		t.Error("walls and main floors should be styled differently")
	}
	if tileStyle(world.TileEmpty) != tcell.StyleDefault {
		t.Error("empty cells should use the default style")
	}
}
