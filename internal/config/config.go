// Package config provides YAML-based rule configuration for the snake modes
// and the difficulty presets applied on top of it.
package config

// SnakeConfig is the complete, user-overridable rule configuration.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Modes ModesConfig `yaml:"modes"`
}

// GridConfig defines the board.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Unit   int `yaml:"unit"` // pixel size of a cell in rendered frames
}

// ModesConfig holds one rule record per playable mode.
// Fixed fields (rather than a map) let partial YAML files override single
// values without resetting the rest of a record.
type ModesConfig struct {
	Classic  ModeConfig `yaml:"classic"`
	Wrap     ModeConfig `yaml:"wrap"`
	Obstacle ModeConfig `yaml:"obstacle"`
	Bonus    ModeConfig `yaml:"bonus"`
	Rogue    ModeConfig `yaml:"rogue"`
}

// ByID returns the record for a mode id, or false if the id is unknown.
func (m ModesConfig) ByID(id string) (ModeConfig, bool) {
	switch id {
	case "classic":
		return m.Classic, true
	case "wrap":
		return m.Wrap, true
	case "obstacle":
		return m.Obstacle, true
	case "bonus":
		return m.Bonus, true
	case "rogue":
		return m.Rogue, true
	default:
		return ModeConfig{}, false
	}
}

// each calls fn for every mode record, in menu order.
func (m *ModesConfig) each(fn func(id string, mc *ModeConfig)) {
	fn("classic", &m.Classic)
	fn("wrap", &m.Wrap)
	fn("obstacle", &m.Obstacle)
	fn("bonus", &m.Bonus)
	fn("rogue", &m.Rogue)
}

// ModeConfig selects the optional mechanics of one mode and their constants.
type ModeConfig struct {
	Title     string          `yaml:"title"`
	Wrap      bool            `yaml:"wrap"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Bonus     BonusConfig     `yaml:"bonus"`
	Shield    ShieldConfig    `yaml:"shield"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Potion    PotionConfig    `yaml:"potion"`
	Health    HealthConfig    `yaml:"health"`
	Body      BodyConfig      `yaml:"body"`
	Speed     SpeedConfig     `yaml:"speed"`
}

// ObstaclesConfig defines static obstacles generated at round start.
type ObstaclesConfig struct {
	Enabled bool `yaml:"enabled"`
	Count   int  `yaml:"count"`
}

// BonusConfig defines the timed bonus fruit.
type BonusConfig struct {
	Enabled     bool `yaml:"enabled"`
	EveryNScore int  `yaml:"every_n_score"` // spawn when score is a multiple of this
	Duration    int  `yaml:"duration"`      // lifetime in ticks
	Score       int  `yaml:"score"`
	Growth      int  `yaml:"growth"`
}

// ShieldConfig defines the shield pickup.
type ShieldConfig struct {
	Enabled      bool `yaml:"enabled"`
	EveryNApples int  `yaml:"every_n_apples"`
	Duration     int  `yaml:"duration"`
}

// EnemyConfig defines the chasing enemy.
type EnemyConfig struct {
	Enabled    bool `yaml:"enabled"`
	ChaseSpeed int  `yaml:"chase_speed"` // cells per tick along each axis
}

// PotionConfig defines the health potion.
type PotionConfig struct {
	Enabled      bool `yaml:"enabled"`
	EveryNApples int  `yaml:"every_n_apples"`
	Duration     int  `yaml:"duration"`
}

// HealthConfig defines hit points. Zero values mean the mode has no health.
type HealthConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// BodyConfig defines the starting snake.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines the tick interval and its linear ramp, in milliseconds.
type SpeedConfig struct {
	InitialMs        int `yaml:"initial_ms"`
	RampEveryNApples int `yaml:"ramp_every_n_apples"`
	RampStepMs       int `yaml:"ramp_step_ms"`
	MinMs            int `yaml:"min_ms"`
}
