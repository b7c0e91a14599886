// Package main is the entry point for dungeonmesh.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonmesh/internal/app"
	"github.com/samdwyer/dungeonmesh/internal/config"
	"github.com/samdwyer/dungeonmesh/internal/mesh"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
	"github.com/samdwyer/dungeonmesh/internal/ui"
)

type options struct {
	preset   string
	seed     int64
	objPath  string
	preview  bool
	showMap  bool
	mainOnly bool
	tick     time.Duration
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	opts, set := parseFlags()
	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := loadConfig(opts, set)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	res, err := run(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	out := io.Writer(os.Stdout)
	if opts.objPath == "-" {
		out = os.Stderr
	}
	if opts.objPath != "" {
		if err := writeOBJ(opts.objPath, res.Mesh); err != nil {
			log.Fatalf("Failed to export mesh: %v", err)
		}
	}
	if opts.showMap {
		printMap(out, res)
	}
	printSummary(out, res.Summary(), opts.objPath)
}

func parseFlags() (options, map[string]bool) {
	var opts options
	flag.StringVar(&opts.preset, "preset", "", "named parameter preset (default \"default\", or $DUNGEONMESH_PRESET)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.StringVar(&opts.objPath, "obj", "", "write the mesh as Wavefront OBJ to this path, - for stdout")
	flag.BoolVar(&opts.preview, "preview", false, "animate the separation in the terminal")
	flag.BoolVar(&opts.showMap, "map", false, "print a top-down map of the result")
	flag.BoolVar(&opts.mainOnly, "main-only", false, "leave secondary rooms out of the mesh")
	flag.DurationVar(&opts.tick, "tick", app.DefaultTick, "preview frame interval")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set
}

// loadConfig layers the preset, DUNGEONMESH_* variables and explicit flags.
func loadConfig(opts options, set map[string]bool) (config.Config, error) {
	name := opts.preset
	if name == "" {
		name = os.Getenv("DUNGEONMESH_PRESET")
	}
	if name == "" {
		name = config.DefaultPreset
	}

	cfg, err := config.MustLoadPresets().Preset(name)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if set["seed"] {
		cfg.Seed = opts.seed
	}
	if set["main-only"] {
		cfg.MainRoomsOnly = opts.mainOnly
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, opts options) (*app.Result, error) {
	if !opts.preview {
		return app.Generate(ctx, cfg)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("Note: stdout is not a terminal, generating without preview")
		return app.Generate(ctx, cfg)
	}

	g, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preview: %w", err)
	}
	err = app.NewPreview(screen, g, opts.tick).Run(ctx)
	screen.Close()
	if err != nil {
		return nil, err
	}
	return g.Finish(ctx)
}

func writeOBJ(path string, m *mesh.Mesh) error {
	if path == "-" {
		return mesh.WriteOBJ(os.Stdout, "dungeon", m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mesh.WriteOBJ(f, "dungeon", m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
