package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetOffsetMs is how much a preset shifts the starting tick interval.
const presetOffsetMs = 30

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplySnakePreset adjusts every mode's speed for a difficulty preset.
// Easy starts slower, hard starts faster (never below the minimum interval),
// fixed keeps the starting speed for the whole round.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Modes.each(func(_ string, m *ModeConfig) {
		switch preset {
		case DifficultyEasy:
			m.Speed.InitialMs += presetOffsetMs
		case DifficultyHard:
			m.Speed.InitialMs = max(m.Speed.MinMs, m.Speed.InitialMs-presetOffsetMs)
		case DifficultyFixed:
			m.Speed.RampStepMs = 0
		}
	})
}
