package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ModeID identifies a rule set.
type ModeID string

const (
	ModeClassic  ModeID = "classic"
	ModeWrap     ModeID = "wrap"
	ModeObstacle ModeID = "obstacle"
	ModeBonus    ModeID = "bonus"
	ModeRogue    ModeID = "rogue"
)

// MenuModes lists the modes selectable from the menu, in slot order (1..4).
var MenuModes = []ModeID{ModeClassic, ModeWrap, ModeObstacle, ModeBonus}

// AllModes lists every mode.
var AllModes = []ModeID{ModeClassic, ModeWrap, ModeObstacle, ModeBonus, ModeRogue}

// ObstacleRule controls static obstacles.
type ObstacleRule struct {
	Enabled bool
	Count   int
}

// BonusRule controls the timed bonus fruit.
type BonusRule struct {
	Enabled     bool
	EveryNScore int
	Duration    int // ticks
	Score       int
	Growth      int
}

// TimedRule controls a pickup spawned every N apples.
type TimedRule struct {
	Enabled      bool
	EveryNApples int
	Duration     int // ticks
}

// EnemyRule controls the chasing enemy.
type EnemyRule struct {
	Enabled    bool
	ChaseSpeed int
}

// Rules is the immutable rule record of one mode.
type Rules struct {
	ID        ModeID
	Name      string
	Wrap      bool
	Obstacles ObstacleRule
	Bonus     BonusRule
	Shield    TimedRule
	Potion    TimedRule
	Enemy     EnemyRule

	InitialHealth int
	MaxHealth     int

	InitialBodyLength int

	InitialTickInterval   time.Duration
	SpeedRampEveryNApples int
	SpeedRampStep         time.Duration
	MinTickInterval       time.Duration
}

// HasHealth reports whether the mode tracks hit points.
func (r Rules) HasHealth() bool {
	return r.MaxHealth > 0
}

// Validate rejects records the simulation cannot run.
func (r Rules) Validate() error {
	var errs []error
	if r.InitialBodyLength < 1 {
		errs = append(errs, fmt.Errorf("initial body length %d must be positive", r.InitialBodyLength))
	}
	if r.InitialTickInterval <= 0 {
		errs = append(errs, fmt.Errorf("initial tick interval %s must be positive", r.InitialTickInterval))
	}
	if r.MinTickInterval <= 0 || r.MinTickInterval > r.InitialTickInterval {
		errs = append(errs, fmt.Errorf("min tick interval %s must be in (0, %s]", r.MinTickInterval, r.InitialTickInterval))
	}
	if r.SpeedRampEveryNApples < 0 || r.SpeedRampStep < 0 {
		errs = append(errs, errors.New("speed ramp must not be negative"))
	}
	if r.Obstacles.Enabled && r.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacle count %d must not be negative", r.Obstacles.Count))
	}
	if r.Bonus.Enabled && (r.Bonus.EveryNScore < 1 || r.Bonus.Duration < 1) {
		errs = append(errs, errors.New("bonus cadence and duration must be positive"))
	}
	if r.Shield.Enabled && (r.Shield.EveryNApples < 1 || r.Shield.Duration < 1) {
		errs = append(errs, errors.New("shield cadence and duration must be positive"))
	}
	if r.Potion.Enabled && (r.Potion.EveryNApples < 1 || r.Potion.Duration < 1) {
		errs = append(errs, errors.New("potion cadence and duration must be positive"))
	}
	if r.Enemy.Enabled && r.Enemy.ChaseSpeed < 1 {
		errs = append(errs, fmt.Errorf("enemy chase speed %d must be positive", r.Enemy.ChaseSpeed))
	}
	if r.InitialHealth < 0 || r.InitialHealth > r.MaxHealth {
		errs = append(errs, fmt.Errorf("initial health %d must be in [0, %d]", r.InitialHealth, r.MaxHealth))
	}
	if r.Enemy.Enabled && r.InitialHealth < 1 {
		errs = append(errs, errors.New("a mode with an enemy needs health"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("snake: mode %s: %w", r.ID, errors.Join(errs...))
}

// RulesFromConfig converts one mode record of the YAML configuration.
func RulesFromConfig(id ModeID, mc config.ModeConfig) Rules {
	name := mc.Title
	if name == "" {
		name = string(id)
	}
	return Rules{
		ID:   id,
		Name: name,
		Wrap: mc.Wrap,
		Obstacles: ObstacleRule{
			Enabled: mc.Obstacles.Enabled,
			Count:   mc.Obstacles.Count,
		},
		Bonus: BonusRule{
			Enabled:     mc.Bonus.Enabled,
			EveryNScore: mc.Bonus.EveryNScore,
			Duration:    mc.Bonus.Duration,
			Score:       mc.Bonus.Score,
			Growth:      mc.Bonus.Growth,
		},
		Shield: TimedRule{
			Enabled:      mc.Shield.Enabled,
			EveryNApples: mc.Shield.EveryNApples,
			Duration:     mc.Shield.Duration,
		},
		Potion: TimedRule{
			Enabled:      mc.Potion.Enabled,
			EveryNApples: mc.Potion.EveryNApples,
			Duration:     mc.Potion.Duration,
		},
		Enemy: EnemyRule{
			Enabled:    mc.Enemy.Enabled,
			ChaseSpeed: mc.Enemy.ChaseSpeed,
		},
		InitialHealth:         mc.Health.Initial,
		MaxHealth:             mc.Health.Max,
		InitialBodyLength:     mc.Body.InitialLength,
		InitialTickInterval:   ms(mc.Speed.InitialMs),
		SpeedRampEveryNApples: mc.Speed.RampEveryNApples,
		SpeedRampStep:         ms(mc.Speed.RampStepMs),
		MinTickInterval:       ms(mc.Speed.MinMs),
	}
}

// Catalog validates cfg against its grid and builds the rule record of
// every mode.
func Catalog(cfg config.SnakeConfig) (map[ModeID]Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	out := make(map[ModeID]Rules, len(AllModes))
	for _, id := range AllModes {
		mc, ok := cfg.Modes.ByID(string(id))
		if !ok {
			return nil, fmt.Errorf("snake: mode %s missing from config", id)
		}
		r := RulesFromConfig(id, mc)
		if err := r.Validate(); err != nil {
			return nil, err
		}
		out[id] = r
	}
	return out, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
