package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// EnvPrefix starts the name of every environment variable ApplyEnv reads.
const EnvPrefix = "DUNGEONMESH_"

// fields maps each environment variable suffix to the field it sets.
func (c *Config) fields() map[string]any {
	return map[string]any{
		"SEED":            &c.Seed,
		"ROOM_COUNT":      &c.RoomCount,
		"MIN_SIZE":        &c.MinSize,
		"MAX_SIZE":        &c.MaxSize,
		"BOUNDS_X":        &c.BoundsX,
		"BOUNDS_Y":        &c.BoundsY,
		"REPULSION":       &c.Repulsion,
		"FRICTION":        &c.Friction,
		"DELTA":           &c.Delta,
		"MAX_STEPS":       &c.MaxSteps,
		"MAIN_ROOMS":      &c.MainRooms,
		"EXTRA_PATHS":     &c.ExtraPaths,
		"CORRIDOR_WIDTH":  &c.CorridorWidth,
		"CORRIDOR_HEIGHT": &c.CorridorHeight,
		"ROOM_HEIGHT":     &c.RoomHeight,
		"LINE_TOLERANCE":  &c.LineTolerance,
		"MAIN_ROOMS_ONLY": &c.MainRoomsOnly,
	}
}

// ApplyEnv overrides fields from DUNGEONMESH_* variables found by lookup,
// which is normally os.LookupEnv. Unset variables leave the field alone.
// Every unparsable value is reported.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	fields := c.fields()
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		key := EnvPrefix + name
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if err := parseInto(fields[name], v); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err))
		}
	}
	return errors.Join(errs...)
}

func parseInto(field any, v string) error {
	switch p := field.(type) {
	case *int:
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*p = f
	case *bool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*p = b
	default:
		return fmt.Errorf("unsupported field type %T", field)
	}
	return nil
}
