package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the ball pit configuration.
// Search order: customPath -> ~/.ballpit/configs/ballpit.yaml -> ./configs/ballpit.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ballpit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ballpit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBallpitYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballpit", "configs", filename)
}

// ApplyPreset overlays a named physics flavor on the config.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetFloaty:
		// Light gravity and springy walls, balls drift and keep bouncing.
		cfg.Physics.Gravity = 0.002
		cfg.Physics.Friction = 0.995
		cfg.Physics.BounceDamping = 0.92
	case PresetDense:
		// A crowd of small heavy balls, constant collisions.
		cfg.Physics.Gravity = 0.008
		cfg.Physics.Friction = 0.98
		cfg.Balls.InitialCount = 16
		cfg.Balls.DefaultRadius = 1.5
		cfg.Balls.MinRadius = 1.2
		cfg.Balls.MaxRadius = 1.8
	}
}
