package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmesh/internal/ui"
)

func newPreview(t *testing.T, tick time.Duration) (*Preview, *Generator, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(60, 20)

	g, err := New(context.Background(), smallConfig(t, 21))
	if err != nil {
		t.Fatal(err)
	}
	return NewPreview(screen, g, tick), g, sim
}

func row(sim tcell.SimulationScreen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestPreviewRunsToCompletion(t *testing.T) {
	p, g, sim := newPreview(t, time.Millisecond)
	p.ExitWhenDone = true

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Phase() != PhaseDone {
		t.Fatalf("phase = %v, want done", g.Phase())
	}
	if g.Simulation().Steps == 0 {
		t.Error("no simulation steps were taken")
	}
	if status := row(sim, 19, 4); status != "done" {
		t.Errorf("status line starts %q, want done", status)
	}
}

func TestPreviewQuitKey(t *testing.T) {
	p, g, sim := newPreview(t, time.Hour)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Phase() != PhaseSeparate || g.Simulation().Steps != 0 {
		t.Errorf("quitting before the first tick advanced the generator: %v, %d steps",
			g.Phase(), g.Simulation().Steps)
	}
	if status := row(sim, 19, 10); status != "separating" {
		t.Errorf("status line starts %q", status)
	}
}

func TestPreviewContextCancel(t *testing.T) {
	p, _, _ := newPreview(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
