package config

import (
	_ "embed"
)

//go:embed defaults/ballpit.yaml
var defaultBallpitYAML []byte

// DefaultConfig returns the default ball pit configuration.
// Values match defaults/ballpit.yaml and are tuned for a terminal-cell
// arena at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:       0.006,
			Friction:      0.985,
			BounceDamping: 0.8,
			FlickFactor:   0.1,
		},
		Balls: BallsConfig{
			InitialCount:  8,
			DefaultRadius: 2.0,
			MinRadius:     1.6,
			MaxRadius:     2.6,
			SpawnSpeed:    0.4,
			EjectSpeed:    0.25,
		},
		Colors: ColorsConfig{
			MinValue:      50,
			MaxValue:      255,
			MinBrightness: 0.4,
			MaxBrightness: 0.9,
		},
		Zones: ZonesConfig{
			DeleteHeight:     2,
			InventoryOffsetX: 9,
			InventoryOffsetY: 3,
			InventoryRadius:  3.5,
		},
	}
}
