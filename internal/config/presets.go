package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownPreset is returned by Preset for a name presets.json lacks.
var ErrUnknownPreset = errors.New("unknown preset")

// DefaultPreset is the preset the CLI starts from.
const DefaultPreset = "default"

// dataFS embeds the preset definitions at build time.
//
//go:embed presets.json
var dataFS embed.FS

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// Presets maps a preset name to its raw overrides. Fields a preset leaves
// out keep their Default value.
type Presets map[string]json.RawMessage

// LoadPresets loads the embedded presets.json.
func LoadPresets() (Presets, error) {
	return Load[Presets]("presets.json")
}

// MustLoadPresets loads the presets, panicking on error.
func MustLoadPresets() Presets {
	return MustLoad[Presets]("presets.json")
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// Preset returns Default with the named preset applied.
func (p Presets) Preset(name string) (Config, error) {
	raw, ok := p[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, p.Names())
	}
	c := Default()
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse preset %q: %w", name, err)
	}
	return c, nil
}
