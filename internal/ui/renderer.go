package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmesh/internal/world"
)

// StatusLines is the number of rows kept below the map for status text.
const StatusLines = 1

// Renderer handles drawing dungeon previews to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// MapSize returns the grid size that fits above the status line.
func (r *Renderer) MapSize() (width, height int) {
	w, h := r.screen.Size()
	return w, max(h-StatusLines, 0)
}

// Render draws the grid and a status line under it.
func (r *Renderer) Render(grid *world.Grid, status string) {
	r.screen.Clear()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.GetTile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	_, h := r.screen.Size()
	r.RenderMessage(status, h-StatusLines)
	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileMainFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileCorridor:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on row y, cut at the screen edge.
func (r *Renderer) RenderMessage(msg string, y int) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
