package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagRulesDefaults bool
	flagRulesYAML     bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules [mode]",
	Short: "Print the effective rules",
	Long: `Print the rules after applying --config and --difficulty.

Examples:
  snake rules
  snake rules rogue --difficulty hard
  snake rules --yaml --config ./my-snake.yaml
  snake rules --defaults`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagRulesDefaults, "defaults", false, "Print the built-in default config YAML")
	rulesCmd.Flags().BoolVar(&flagRulesYAML, "yaml", false, "Print the effective config as YAML")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagRulesDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadRules()
	if err != nil {
		return err
	}

	if flagRulesYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	catalog, err := snake.Catalog(cfg)
	if err != nil {
		return err
	}

	modes := snake.AllModes
	if len(args) == 1 {
		mode := snake.ModeID(strings.ToLower(args[0]))
		if _, ok := catalog[mode]; !ok {
			return fmt.Errorf("unknown mode %q (want one of %s)", args[0], modeNames())
		}
		modes = []snake.ModeID{mode}
	}

	fmt.Fprintf(out, "Grid: %dx%d\n", cfg.Grid.Width, cfg.Grid.Height)
	fmt.Fprintln(out, rulesTable(catalog, modes).Render())
	return nil
}

func rulesTable(catalog map[snake.ModeID]snake.Rules, modes []snake.ModeID) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Mode", "Edges", "Obstacles", "Bonus", "Shield", "Enemy", "Health", "Speed").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, id := range modes {
		r := catalog[id]
		t.Row(
			r.Name,
			edges(r),
			onOff(r.Obstacles.Enabled, strconv.Itoa(r.Obstacles.Count)),
			onOff(r.Bonus.Enabled, fmt.Sprintf("+%d every %d pts, %d ticks", r.Bonus.Score, r.Bonus.EveryNScore, r.Bonus.Duration)),
			onOff(r.Shield.Enabled, fmt.Sprintf("every %d apples", r.Shield.EveryNApples)),
			onOff(r.Enemy.Enabled, fmt.Sprintf("speed %d", r.Enemy.ChaseSpeed)),
			onOff(r.HasHealth(), fmt.Sprintf("%d/%d", r.InitialHealth, r.MaxHealth)),
			speed(r),
		)
	}
	return t
}

func edges(r snake.Rules) string {
	if r.Wrap {
		return "wrap"
	}
	return "wall"
}

func speed(r snake.Rules) string {
	if r.SpeedRampEveryNApples == 0 || r.SpeedRampStep == 0 {
		return r.InitialTickInterval.String() + " fixed"
	}
	return fmt.Sprintf("%s -%s/%d apples, min %s",
		r.InitialTickInterval, r.SpeedRampStep, r.SpeedRampEveryNApples, r.MinTickInterval)
}

func onOff(enabled bool, detail string) string {
	if !enabled {
		return "-"
	}
	return detail
}
