package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake rule configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration, falling back to the
// hard-coded one if the embed cannot be parsed.
func Default() SnakeConfig {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every inconsistent value in the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x1, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.Unit <= 0 {
		errs = append(errs, fmt.Errorf("grid unit must be positive, got %d", c.Grid.Unit))
	}

	c.Modes.each(func(id string, m *ModeConfig) {
		if err := m.validate(c.Grid); err != nil {
			errs = append(errs, fmt.Errorf("mode %s: %w", id, err))
		}
	})

	return errors.Join(errs...)
}

func (m ModeConfig) validate(g GridConfig) error {
	switch {
	case m.Body.InitialLength < 1:
		return fmt.Errorf("initial body length must be positive")
	case m.Body.InitialLength > g.Width:
		return fmt.Errorf("initial body length %d does not fit a %d wide grid", m.Body.InitialLength, g.Width)
	case m.Speed.InitialMs <= 0 || m.Speed.MinMs <= 0:
		return fmt.Errorf("tick intervals must be positive")
	case m.Speed.MinMs > m.Speed.InitialMs:
		return fmt.Errorf("min interval %dms exceeds initial %dms", m.Speed.MinMs, m.Speed.InitialMs)
	case m.Speed.RampStepMs < 0 || m.Speed.RampEveryNApples < 0:
		return fmt.Errorf("speed ramp must not be negative")
	case m.Obstacles.Enabled && m.Obstacles.Count < 0:
		return fmt.Errorf("obstacle count must not be negative")
	case m.Bonus.Enabled && (m.Bonus.EveryNScore <= 0 || m.Bonus.Duration <= 0):
		return fmt.Errorf("bonus needs a positive cadence and duration")
	case m.Shield.Enabled && (m.Shield.EveryNApples <= 0 || m.Shield.Duration <= 0):
		return fmt.Errorf("shield needs a positive cadence and duration")
	case m.Potion.Enabled && (m.Potion.EveryNApples <= 0 || m.Potion.Duration <= 0):
		return fmt.Errorf("potion needs a positive cadence and duration")
	case m.Enemy.Enabled && m.Enemy.ChaseSpeed <= 0:
		return fmt.Errorf("enemy chase speed must be positive")
	case m.Enemy.Enabled && m.Health.Initial <= 0:
		return fmt.Errorf("an enemy requires positive initial health")
	case m.Health.Max < m.Health.Initial:
		return fmt.Errorf("max health %d below initial %d", m.Health.Max, m.Health.Initial)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
