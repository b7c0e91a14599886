package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonmesh/internal/app"
	"github.com/samdwyer/dungeonmesh/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	colorLabel = color.Style{color.FgGray}
	colorValue = color.Style{color.FgGreen, color.OpBold}
	colorWarn  = color.Style{color.FgRed, color.OpBold}
)

// terminalSize returns the size of stdout, or a default when it is not a
// terminal.
func terminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return defaultWidth, defaultHeight
	}
	return width, height
}

func printMap(w io.Writer, res *app.Result) {
	width, height := terminalSize()
	grid := res.Dungeon.Rasterize(width, max(height-ui.StatusLines-12, 10))
	for y := 0; y < grid.Height; y++ {
		line := make([]rune, grid.Width)
		for x := range line {
			line[x] = grid.GetTile(x, y).Rune()
		}
		fmt.Fprintln(w, string(line))
	}
}

func printSummary(w io.Writer, s app.Summary, objPath string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Enable = false
	}

	row := func(label string, value any) {
		fmt.Fprintf(w, "%s %s\n", colorLabel.Sprintf("%-16s", label), colorValue.Sprint(value))
	}
	row("seed", s.Seed)
	row("rooms", s.Rooms)
	row("main rooms", s.MainRooms)
	row("delaunay edges", s.DelaunayEdges)
	row("spanning tree", fmt.Sprintf("%d (weight %.1f)", s.MSTEdges, s.MSTWeight))
	row("layout edges", s.LayoutEdges)
	row("corridors", fmt.Sprintf("%d (%d bent)", s.Corridors, s.Bent))
	row("corridor length", fmt.Sprintf("%.1f", s.CorridorLength))
	row("vertices", s.Vertices)
	row("triangles", s.Triangles)
	if s.Converged {
		row("steps", s.Steps)
	} else {
		fmt.Fprintf(w, "%s %s\n", colorLabel.Sprintf("%-16s", "steps"),
			colorWarn.Sprintf("%d (step cap reached, rooms may overlap)", s.Steps))
	}
	if objPath != "" && objPath != "-" {
		row("mesh", objPath)
	}
}
