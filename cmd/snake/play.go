package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play snake",
	Long: `Open the mode menu, or start the named mode directly.

Modes:
  classic   - Walls are fatal
  wrap      - Leaving an edge re-enters on the opposite side
  obstacle  - Static obstacles; a shield absorbs one hit
  bonus     - Timed bonus fruit worth extra points
  rogue     - Same as 'snake rogue'

Controls:
  Arrows/WASD/hjkl - Turn
  1-4, Enter       - Select and start a mode (menu)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 30ms slower start
  normal - Configured speed
  hard   - 30ms faster start
  fixed  - No speed-up while playing

Examples:
  snake play
  snake play obstacle --difficulty easy
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runGame("snake")
	}

	mode := snake.ModeID(strings.ToLower(args[0]))
	if mode == snake.ModeRogue {
		return runGame("rogue")
	}
	slot := slices.Index(snake.MenuModes, mode)
	if slot < 0 {
		return fmt.Errorf("unknown mode %q (want one of %s)", args[0], modeNames())
	}
	return runGame("snake", core.SelectMode(slot+1), core.Cmd(core.CmdConfirm))
}

func modeNames() string {
	names := make([]string, len(snake.AllModes))
	for i, m := range snake.AllModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// loadRules validates the global config flags and returns the rules with
// the difficulty preset applied.
func loadRules() (config.SnakeConfig, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.SnakeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if preset != "" {
		config.ApplySnakePreset(&cfg, preset)
	}
	return cfg, nil
}

// runGame plays the registered game id once.
func runGame(id string, start ...core.Command) error {
	s, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer.Close()
	defer s.close()

	return s.play(id, start...)
}
