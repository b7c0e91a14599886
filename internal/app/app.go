// Package app drives the generation pipeline for the CLI, either all at
// once or one simulation step at a time for the animated preview.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonmesh/internal/config"
	"github.com/samdwyer/dungeonmesh/internal/graph"
	"github.com/samdwyer/dungeonmesh/internal/mesh"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
	"github.com/samdwyer/dungeonmesh/internal/world"
)

// Generator holds one dungeon and how far it has been generated.
type Generator struct {
	cfg     config.Config
	seed    int64
	dungeon *world.Dungeon
	phase   Phase
	sim     world.SimulationResult
}

// Result is a finished dungeon and its mesh.
type Result struct {
	Seed       int64
	Dungeon    *world.Dungeon
	Mesh       *mesh.Mesh
	Simulation world.SimulationResult
}

// New validates cfg and samples the rooms. A zero seed is replaced with
// one taken from the clock; Seed reports the seed actually used.
func New(ctx context.Context, cfg config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		cfg:     cfg,
		seed:    seed,
		dungeon: world.NewDungeon(cfg.Settings(), rand.New(rand.NewSource(seed))),
	}
	if err := g.dungeon.GenerateRooms(ctx, cfg.RoomCount, cfg.MinSize, cfg.MaxSize, cfg.Bounds()); err != nil {
		return nil, fmt.Errorf("failed to generate rooms: %w", err)
	}
	return g, nil
}

// Seed returns the seed the dungeon was generated from.
func (g *Generator) Seed() int64 { return g.seed }

// Phase returns the current phase.
func (g *Generator) Phase() Phase { return g.phase }

// Dungeon returns the dungeon being generated.
func (g *Generator) Dungeon() *world.Dungeon { return g.dungeon }

// Simulation returns the separation progress so far.
func (g *Generator) Simulation() world.SimulationResult { return g.sim }

// Step advances the separation by one time step. Once the rooms settle or
// the step cap is reached the layout is connected and the phase becomes
// PhaseDone. Calling Step when done does nothing.
func (g *Generator) Step(ctx context.Context) Phase {
	if g.phase != PhaseSeparate {
		return g.phase
	}
	converged := g.dungeon.TimeStep(g.cfg.Repulsion, g.cfg.Friction, g.cfg.Delta)
	g.sim.Steps++
	g.sim.Converged = converged
	if converged || g.sim.Steps >= g.cfg.MaxSteps {
		g.connect(ctx)
	}
	return g.phase
}

// Finish runs whatever is left of the pipeline and emits the mesh.
func (g *Generator) Finish(ctx context.Context) (*Result, error) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "generator.finish")
	defer span.End()

	if g.phase == PhaseSeparate {
		remaining := g.cfg.MaxSteps - g.sim.Steps
		g.dungeon.Settings.MaxSteps = max(remaining, 1)
		res := g.dungeon.SimulateRooms(ctx, g.cfg.Repulsion, g.cfg.Friction, g.cfg.Delta)
		g.dungeon.Settings.MaxSteps = g.cfg.MaxSteps
		g.sim.Steps += res.Steps
		g.sim.Converged = res.Converged
		g.connect(ctx)
	}

	m := g.dungeon.GenerateMesh(ctx, g.cfg.MainRoomsOnly)
	if err := m.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generated mesh is invalid: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("generator.seed", g.seed),
		attribute.Int("generator.steps", g.sim.Steps),
		attribute.Bool("generator.converged", g.sim.Converged),
	)
	return &Result{Seed: g.seed, Dungeon: g.dungeon, Mesh: m, Simulation: g.sim}, nil
}

func (g *Generator) connect(ctx context.Context) {
	g.dungeon.SelectMainRooms(g.cfg.MainRooms)
	g.dungeon.BuildGraph(ctx, g.cfg.ExtraPaths)
	g.dungeon.GeneratePaths(ctx)
	g.phase = PhaseDone
}

// Summary is the headline numbers of a Result.
type Summary struct {
	Seed           int64
	Rooms          int
	MainRooms      int
	DelaunayEdges  int
	MSTEdges       int
	MSTWeight      float64
	LayoutEdges    int
	Corridors      int
	Bent           int
	CorridorLength float64
	Vertices       int
	Triangles      int
	Steps          int
	Converged      bool
}

// Summary counts what r contains.
func (r *Result) Summary() Summary {
	d := r.Dungeon
	bent := 0
	var length float64
	for _, p := range d.Paths {
		if p.Bent {
			bent++
		}
		length += p.Length()
	}
	return Summary{
		Seed:           r.Seed,
		Rooms:          len(d.Rooms),
		MainRooms:      len(d.MainRooms),
		DelaunayEdges:  len(d.Delaunay),
		MSTEdges:       len(d.MST),
		MSTWeight:      graph.TotalWeight(d.MST),
		LayoutEdges:    len(d.Layout),
		Corridors:      len(d.Paths),
		Bent:           bent,
		CorridorLength: length,
		Vertices:       len(r.Mesh.Vertices),
		Triangles:      r.Mesh.TriangleCount(),
		Steps:          r.Simulation.Steps,
		Converged:      r.Simulation.Converged,
	}
}

// Generate runs the whole pipeline for cfg.
func Generate(ctx context.Context, cfg config.Config) (*Result, error) {
	g, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return g.Finish(ctx)
}
