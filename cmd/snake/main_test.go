package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig, flagDifficulty = "", ""
	flagRulesDefaults, flagRulesYAML = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"snake", "rogue", "Rogue Snake"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output lacks %q:\n%s", want, out)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{"all modes", []string{"rules"}, []string{"Classic", "Wrap", "Obstacle", "Bonus", "Rogue", "Grid: 32x32"}, ""},
		{"one mode", []string{"rules", "rogue"}, []string{"Rogue", "3/5"}, ""},
		{"hard preset", []string{"rules", "classic", "--difficulty", "hard"}, []string{"120ms"}, ""},
		{"fixed preset", []string{"rules", "wrap", "--difficulty", "fixed"}, []string{"150ms fixed"}, ""},
		{"yaml", []string{"rules", "--yaml"}, []string{"modes:", "initial_ms: 150"}, ""},
		{"defaults", []string{"rules", "--defaults"}, []string{"every_n_apples"}, ""},
		{"unknown mode", []string{"rules", "tetris"}, nil, "unknown mode"},
		{"bad difficulty", []string{"rules", "--difficulty", "insane"}, nil, "unknown difficulty"},
		{"missing config", []string{"rules", "--config", "/nonexistent/snake.yaml"}, nil, "snake.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("rules: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output lacks %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestPlayRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("err = %v, want unknown mode", err)
	}
}
