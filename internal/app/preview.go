package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmesh/internal/telemetry"
	"github.com/samdwyer/dungeonmesh/internal/ui"
)

// DefaultTick is the preview frame interval.
const DefaultTick = 16 * time.Millisecond

// Preview animates a Generator in the terminal: one separation step per
// tick, then the connected layout until the user quits.
type Preview struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	gen      *Generator
	tick     time.Duration
	running  bool

	// ExitWhenDone makes Run return as soon as the layout is connected
	// instead of waiting for a key.
	ExitWhenDone bool
}

// NewPreview creates a preview of gen on screen. A non-positive tick uses
// DefaultTick.
func NewPreview(screen *ui.Screen, gen *Generator, tick time.Duration) *Preview {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Preview{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		gen:      gen,
		tick:     tick,
	}
}

// Run executes the preview loop until the user quits, the context ends,
// or the layout is done and ExitWhenDone is set. The screen is left open.
func (p *Preview) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "preview.run")
	defer span.End()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	p.running = true
	p.render()
	for p.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			p.handleEvent(ev)
		case <-ticker.C:
			if p.gen.Phase() == PhaseDone {
				continue
			}
			if p.gen.Step(ctx) == PhaseDone && p.ExitWhenDone {
				p.running = false
			}
			p.render()
		}
	}

	span.SetAttributes(
		attribute.Int("preview.steps", p.gen.Simulation().Steps),
		attribute.String("preview.phase", p.gen.Phase().String()),
	)
	return nil
}

// handleEvent processes a single input event.
func (p *Preview) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			p.running = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				p.running = false
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
		p.render()
	}
}

func (p *Preview) render() {
	w, h := p.renderer.MapSize()
	d := p.gen.Dungeon()
	grid := d.Rasterize(w, h)

	status := fmt.Sprintf("%s | step %d | rooms %d | overlaps %d | q to quit",
		p.gen.Phase(), p.gen.Simulation().Steps, len(d.Rooms), d.OverlappingPairs())
	if p.gen.Phase() == PhaseDone {
		status = fmt.Sprintf("%s | step %d | main %d | corridors %d | q to quit",
			p.gen.Phase(), p.gen.Simulation().Steps, len(d.MainRooms), len(d.Paths))
	}
	p.renderer.Render(grid, status)
}
