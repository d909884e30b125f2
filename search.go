package main

import (
	"fmt"

	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/maze"
	"pacman/search"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [layout]",
	Short: "Solve a layout with graph search",
	Long: `Finds a path to the only food of the layout, or a path that eats all of
its food when there is more than one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "tinyMaze"
		if len(args) > 0 {
			name = args[0]
		}
		strategy, _ := cmd.Flags().GetString("strategy")

		kind, err := search.ParseKind(strategy)
		if err != nil {
			return err
		}
		layout, err := maze.LoadLayout(name)
		if err != nil {
			return err
		}

		record := experiments.Solve(layout, kind, metrics.NewCollector())
		if !record.Found {
			return fmt.Errorf("%s found no solution on %s", kind, name)
		}
		fmt.Printf("%s on %s: cost %.0f, %d actions, %d expansions in %s\n",
			kind, name, record.Cost, record.Length, record.Expansions, record.Duration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("strategy", "s", "bfs", "Search strategy: dfs, bfs, ucs or astar")
}
