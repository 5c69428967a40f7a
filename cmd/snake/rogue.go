package main

import (
	"github.com/spf13/cobra"
)

var rogueCmd = &cobra.Command{
	Use:   "rogue",
	Short: "Play Rogue snake",
	Long: `Rogue snake has no menu: a round starts immediately.

An enemy chases the head one cell per tick on each axis. Every hit costs a
point of health and moves the enemy elsewhere; at zero health the round is
over. A potion appears every 7th apple and heals one point.

Examples:
  snake rogue
  snake rogue --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame("rogue")
	},
}
