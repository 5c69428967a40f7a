package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in rules, used when the embedded YAML
// cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	speed := SpeedConfig{
		InitialMs:        150,
		RampEveryNApples: 5,
		RampStepMs:       10,
		MinMs:            50,
	}
	body := BodyConfig{InitialLength: 6}
	shield := ShieldConfig{Enabled: true, EveryNApples: 15, Duration: 150}

	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 32,
			Unit:   25,
		},
		Modes: ModesConfig{
			Classic: ModeConfig{
				Title:  "Classic",
				Shield: shield,
				Body:   body,
				Speed:  speed,
			},
			Wrap: ModeConfig{
				Title:  "Wrap",
				Wrap:   true,
				Shield: shield,
				Body:   body,
				Speed:  speed,
			},
			Obstacle: ModeConfig{
				Title:     "Obstacle",
				Obstacles: ObstaclesConfig{Enabled: true, Count: 5},
				Shield:    shield,
				Body:      body,
				Speed:     speed,
			},
			Bonus: ModeConfig{
				Title: "Bonus",
				Bonus: BonusConfig{
					Enabled:     true,
					EveryNScore: 10,
					Duration:    200,
					Score:       5,
					Growth:      2,
				},
				Shield: shield,
				Body:   body,
				Speed:  speed,
			},
			Rogue: ModeConfig{
				Title:  "Rogue",
				Enemy:  EnemyConfig{Enabled: true, ChaseSpeed: 1},
				Potion: PotionConfig{Enabled: true, EveryNApples: 7, Duration: 300},
				Health: HealthConfig{Initial: 3, Max: 5},
				Body:   body,
				Speed:  speed,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
