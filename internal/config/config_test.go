package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	embedded := Default()
	hard := DefaultSnakeConfig()

	if embedded != hard {
		t.Errorf("embedded defaults diverge from DefaultSnakeConfig():\n%+v\n%+v", embedded, hard)
	}
}

func TestDefaultsValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefaultModeConstants(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if cfg.Grid.Width != 32 || cfg.Grid.Height != 32 || cfg.Grid.Unit != 25 {
		t.Errorf("unexpected grid %+v", cfg.Grid)
	}
	if !cfg.Modes.Wrap.Wrap || cfg.Modes.Classic.Wrap {
		t.Error("only the wrap mode should wrap")
	}
	if cfg.Modes.Obstacle.Obstacles.Count != 5 {
		t.Errorf("obstacle count = %d, expected 5", cfg.Modes.Obstacle.Obstacles.Count)
	}
	if b := cfg.Modes.Bonus.Bonus; b.Score != 5 || b.Growth != 2 || b.EveryNScore != 10 {
		t.Errorf("unexpected bonus record %+v", b)
	}
	if r := cfg.Modes.Rogue; !r.Enemy.Enabled || r.Health.Initial != 3 || r.Health.Max != 5 || r.Potion.EveryNApples != 7 {
		t.Errorf("unexpected rogue record %+v", r)
	}
	if cfg.Modes.Rogue.Shield.Enabled {
		t.Error("rogue has no shield")
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
modes:
  classic:
    speed:
      initial_ms: 200
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Modes.Classic.Speed.InitialMs != 200 {
		t.Errorf("initial_ms = %d, expected 200", cfg.Modes.Classic.Speed.InitialMs)
	}
	// Untouched keys keep their defaults
	if cfg.Modes.Classic.Speed.MinMs != 50 {
		t.Errorf("min_ms = %d, expected default 50", cfg.Modes.Classic.Speed.MinMs)
	}
	if cfg.Modes.Classic.Title != "Classic" {
		t.Errorf("title = %q, expected default", cfg.Modes.Classic.Title)
	}
	if cfg.Grid.Width != 32 {
		t.Errorf("grid width = %d, expected default", cfg.Grid.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"tiny grid", "grid: {width: 1, height: 1}", "grid must be at least"},
		{"min above initial", "modes: {wrap: {speed: {min_ms: 500}}}", "mode wrap"},
		{"body too long", "grid: {width: 4}", "does not fit"},
		{"bad yaml", "grid: [", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("modes: {obstacle: {obstacles: {count: 9}}}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Modes.Obstacle.Obstacles.Count != 9 {
		t.Errorf("count = %d, expected 9", cfg.Modes.Obstacle.Obstacles.Count)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshaled config failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Error("marshaled config does not decode back to the defaults")
	}
}

func TestModesByID(t *testing.T) {
	modes := DefaultSnakeConfig().Modes
	for _, id := range []string{"classic", "wrap", "obstacle", "bonus", "rogue"} {
		if _, ok := modes.ByID(id); !ok {
			t.Errorf("ByID(%q) not found", id)
		}
	}
	if _, ok := modes.ByID("tron"); ok {
		t.Error("ByID should reject unknown ids")
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantInitial int
		wantStep    int
	}{
		{DifficultyEasy, 180, 10},
		{DifficultyNormal, 150, 10},
		{DifficultyHard, 120, 10},
		{DifficultyFixed, 150, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			for _, m := range []ModeConfig{cfg.Modes.Classic, cfg.Modes.Rogue} {
				if m.Speed.InitialMs != tc.wantInitial {
					t.Errorf("%s initial = %d, expected %d", m.Title, m.Speed.InitialMs, tc.wantInitial)
				}
				if m.Speed.RampStepMs != tc.wantStep {
					t.Errorf("%s step = %d, expected %d", m.Title, m.Speed.RampStepMs, tc.wantStep)
				}
			}
		})
	}
}

func TestHardPresetRespectsMinimum(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Modes.Classic.Speed.InitialMs = 60
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Modes.Classic.Speed.InitialMs != 50 {
		t.Errorf("initial = %d, expected floor 50", cfg.Modes.Classic.Speed.InitialMs)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}
