package world

import (
	"math"

	"github.com/samdwyer/dungeonmesh/internal/geom"
)

// CellAspect is the height-to-width ratio of a terminal cell.
const CellAspect = 2.0

// Grid is a top-down rasterization of a dungeon.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile

	origin geom.Vector2
	scale  float64 // cells per world unit along X
}

// Rasterize draws the dungeon into a width x height grid, fitting every
// room into view. Main rooms are drawn over secondary rooms and corridors
// over both.
func (d *Dungeon) Rasterize(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Tiles: make([][]Tile, height)}
	for y := range g.Tiles {
		g.Tiles[y] = make([]Tile, width)
		for x := range g.Tiles[y] {
			g.Tiles[y][x] = TileEmpty
		}
	}
	if len(d.Rooms) == 0 || width <= 0 || height <= 0 {
		return g
	}

	lo := geom.Vec2(math.Inf(1), math.Inf(1))
	hi := geom.Vec2(math.Inf(-1), math.Inf(-1))
	for i := range d.Rooms {
		r := d.Rooms[i].Rect()
		lo = geom.Vec2(math.Min(lo.X, r.Min().X), math.Min(lo.Y, r.Min().Y))
		hi = geom.Vec2(math.Max(hi.X, r.Max().X), math.Max(hi.Y, r.Max().Y))
	}
	span := hi.Sub(lo)
	g.origin = lo
	g.scale = math.Min(float64(width-1)/math.Max(span.X, 1), CellAspect*float64(height-1)/math.Max(span.Y, 1))

	for _, i := range d.SecondaryRooms() {
		g.drawRoom(&d.Rooms[i], TileFloor)
	}
	for _, i := range d.MainRooms {
		g.drawRoom(&d.Rooms[i], TileMainFloor)
	}
	for _, p := range d.Paths {
		for _, s := range p.Segments() {
			g.drawLine(s[0], s[1])
		}
	}
	return g
}

// Cell returns the grid cell containing the world point p.
func (g *Grid) Cell(p geom.Vector2) (x, y int) {
	q := p.Sub(g.origin)
	return int(math.Round(q.X * g.scale)), int(math.Round(q.Y * g.scale / CellAspect))
}

// GetTile returns the tile at the given position.
func (g *Grid) GetTile(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return TileEmpty
	}
	return g.Tiles[y][x]
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Tiles {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}

func (g *Grid) set(x, y int, t Tile) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.Tiles[y][x] = t
	}
}

func (g *Grid) drawRoom(r *Room, floor Tile) {
	rect := r.Rect()
	x0, y0 := g.Cell(rect.Min())
	x1, y1 := g.Cell(rect.Max())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x == x0 || x == x1 || y == y0 || y == y1 {
				g.set(x, y, TileWall)
			} else {
				g.set(x, y, floor)
			}
		}
	}
}

func (g *Grid) drawLine(a, b geom.Vector2) {
	x0, y0 := g.Cell(a)
	x1, y1 := g.Cell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	for s := 0; s <= steps; s++ {
		t := 0.0
		if steps > 0 {
			t = float64(s) / float64(steps)
		}
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		switch tile := g.GetTile(x, y); {
		case tile == TileWall:
			g.set(x, y, TileDoor)
		case !tile.IsPassable():
			g.set(x, y, TileCorridor)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
