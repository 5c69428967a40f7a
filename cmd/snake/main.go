// snake is a terminal snake arcade with Classic, Wrap, Obstacle, Bonus and
// Rogue modes.
//
// Usage:
//
//	snake                    - Same as 'snake menu'
//	snake menu               - Pick Snake or Rogue Snake from a launcher
//	snake play [mode]        - Open the mode menu, or start a mode directly
//	snake rogue              - Play Rogue (enemy, health, potions)
//	snake list               - List available games
//	snake rules [mode]       - Print the effective rules
//
// Global flags:
//
//	--fps <rate>            - Display refresh rate (default: 30)
//	--seed <value>          - RNG seed for reproducible placement
//	--config <path>         - Custom rules YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--mute                  - Disable the pickup sound
//	--log-file <path>       - Write logs to a file
//	--debug                 - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the arcade classic in your terminal",
	Long: `Snake is a terminal snake game with five rule sets.

Available commands:
  menu     - Pick a game from the launcher (default)
  play     - Pick a mode from the menu (or name one) and play
  rogue    - Play the Rogue variant
  list     - Show all available games
  rules    - Print the effective rules of each mode

Examples:
  snake
  snake play
  snake play wrap --difficulty hard
  snake rogue --seed 42
  snake rules bonus
  snake rules --defaults > ~/.snake/configs/snake.yaml`,
	Args:         cobra.NoArgs,
	RunE:         runMenu,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the pickup sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rogueCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rulesCmd)
}

// newLogger builds the process logger. The terminal belongs to the game, so
// logs go to --log-file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
