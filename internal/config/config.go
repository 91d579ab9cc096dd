// Package config provides YAML-based configuration loading and physics
// presets for the ball pit.
package config

import "fmt"

// Config contains all tunable parameters for a ball pit session.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Balls   BallsConfig   `yaml:"balls"`
	Colors  ColorsConfig  `yaml:"colors"`
	Zones   ZonesConfig   `yaml:"zones"`
}

// PhysicsConfig defines the forces applied each simulation tick.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // downward acceleration per tick
	Friction      float64 `yaml:"friction"`       // velocity multiplier per tick
	BounceDamping float64 `yaml:"bounce_damping"` // speed kept after a wall bounce
	FlickFactor   float64 `yaml:"flick_factor"`   // throw velocity per cell of drag distance
}

// BallsConfig defines how balls are created.
type BallsConfig struct {
	InitialCount  int     `yaml:"initial_count"` // balls spawned at reset
	DefaultRadius float64 `yaml:"default_radius"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	SpawnSpeed    float64 `yaml:"spawn_speed"` // max per-axis speed of a fresh ball
	EjectSpeed    float64 `yaml:"eject_speed"` // max per-axis speed of an ejected ball
}

// ColorsConfig bounds the random color generator.
type ColorsConfig struct {
	MinValue      int     `yaml:"min_value"` // per-channel floor, keeps colors visible
	MaxValue      int     `yaml:"max_value"`
	MinBrightness float64 `yaml:"min_brightness"`
	MaxBrightness float64 `yaml:"max_brightness"`
}

// ZonesConfig places the interactive zones inside the arena.
type ZonesConfig struct {
	DeleteHeight     float64 `yaml:"delete_height"`      // delete band height at the arena bottom
	InventoryOffsetX float64 `yaml:"inventory_offset_x"` // target center, measured from the right edge
	InventoryOffsetY float64 `yaml:"inventory_offset_y"` // target center, measured from the top edge
	InventoryRadius  float64 `yaml:"inventory_radius"`   // drop radius around the target center
}

// Preset represents a named physics flavor applied over the loaded config.
type Preset string

const (
	PresetNormal Preset = "normal"
	PresetFloaty Preset = "floaty"
	PresetDense  Preset = "dense"
)

// Presets lists all valid preset names in menu order.
func Presets() []Preset {
	return []Preset{PresetNormal, PresetFloaty, PresetDense}
}

// ParsePreset validates a preset name from a flag or menu.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case PresetNormal, PresetFloaty, PresetDense:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (valid: normal, floaty, dense)", name)
	}
}
