package world

import (
	"context"
	"testing"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

func TestRasterizeEmpty(t *testing.T) {
	d := newTestDungeon(1)
	g := d.Rasterize(20, 10)
	if g.Width != 20 || g.Height != 10 || len(g.Tiles) != 10 || len(g.Tiles[0]) != 20 {
		t.Fatalf("grid is %dx%d", g.Width, g.Height)
	}
	if n := g.Count(TileEmpty); n != 200 {
		t.Errorf("empty cells = %d, want 200", n)
	}
}

func TestRasterizeThreeRooms(t *testing.T) {
	d := threeRoomDungeon()
	d.SelectMainRooms(3)
	d.BuildGraph(context.Background(), 0)
	d.GeneratePaths(context.Background())

	g := d.Rasterize(60, 20)
	if g.Count(TileMainFloor) == 0 {
		t.Error("no main room floor drawn")
	}
	if g.Count(TileFloor) != 0 {
		t.Error("every room is main, no secondary floor expected")
	}
	if g.Count(TileWall) == 0 {
		t.Error("no walls drawn")
	}
	if g.Count(TileCorridor) == 0 {
		t.Error("no corridor drawn between rooms")
	}
	if g.Count(TileDoor) < 2 {
		t.Errorf("doors = %d, want at least one per corridor end", g.Count(TileDoor))
	}

	x, y := g.Cell(d.Rooms[0].Center())
	if got := g.GetTile(x, y); got != TileMainFloor {
		t.Errorf("center of room 0 is %q, want main floor", got.Rune())
	}
	x, y = g.Cell(geom.Vec2(10, 0))
	if got := g.GetTile(x, y); got != TileCorridor {
		t.Errorf("gap between rooms 0 and 1 is %q, want corridor", got.Rune())
	}
}

func TestRasterizeSecondaryRooms(t *testing.T) {
	d := threeRoomDungeon()
	d.SelectMainRooms(1)

	g := d.Rasterize(60, 20)
	if g.Count(TileFloor) == 0 || g.Count(TileMainFloor) == 0 {
		t.Errorf("floor = %d, main floor = %d; want both", g.Count(TileFloor), g.Count(TileMainFloor))
	}
}

func TestGridGetTileOutOfRange(t *testing.T) {
	d := threeRoomDungeon()
	g := d.Rasterize(10, 10)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := g.GetTile(p[0], p[1]); got != TileEmpty {
			t.Errorf("GetTile(%d, %d) = %q, want empty", p[0], p[1], got.Rune())
		}
	}
}

func TestTileIsPassable(t *testing.T) {
	tests := []struct {
		tile Tile
		want bool
	}{
		{TileEmpty, false},
		{TileWall, false},
		{TileFloor, true},
		{TileMainFloor, true},
		{TileCorridor, true},
		{TileDoor, true},
	}
	for _, tt := range tests {
		if got := tt.tile.IsPassable(); got != tt.want {
			t.Errorf("%q.IsPassable() = %v, want %v", tt.tile.Rune(), got, tt.want)
		}
	}
}

func TestDrawLineKeepsPassableTiles(t *testing.T) {
	g := &Grid{
		Width:  5,
		Height: 1,
		Tiles:  [][]Tile{{TileEmpty, TileWall, TileMainFloor, TileDoor, TileEmpty}},
		scale:  1,
	}
	g.drawLine(geom.Vec2(0, 0), geom.Vec2(4, 0))

	want := []Tile{TileCorridor, TileDoor, TileMainFloor, TileDoor, TileCorridor}
	for x, w := range want {
		if got := g.GetTile(x, 0); got != w {
			t.Errorf("cell %d = %q, want %q", x, got.Rune(), w.Rune())
		}
	}
}
