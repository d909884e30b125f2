package main

import (
	"fmt"

	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/maze"
	"pacman/search"
	"pacman/searcher"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play one game against random ghosts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "smallGame"
		if len(args) > 0 {
			name = args[0]
		}
		agentName, _ := cmd.Flags().GetString("agent")
		depth, _ := cmd.Flags().GetInt("depth")
		seed, _ := cmd.Flags().GetUint64("seed")
		maxMoves, _ := cmd.Flags().GetInt("max-moves")
		show, _ := cmd.Flags().GetBool("show")

		if maxMoves <= 0 {
			return fmt.Errorf("max-moves must be positive, got %d", maxMoves)
		}

		layout, err := maze.LoadLayout(name)
		if err != nil {
			return err
		}
		state := maze.NewState(layout)
		pacman, err := newPacman(agentName, depth, seed)
		if err != nil {
			return err
		}
		agents := []engine.Agent{pacman}
		for i := 1; i < state.NumAgents(); i++ {
			agents = append(agents, engine.NewRandomGhost(seed+uint64(i)))
		}

		local := engine.NewLocal(state, agents, engine.WithMaxMoves(maxMoves))
		gameMetric, _ := local.Run()
		if show {
			fmt.Print(local.State)
		}
		fmt.Printf("win=%t score=%.0f moves=%d duration=%s\n", gameMetric.Win, gameMetric.Score, gameMetric.Moves, gameMetric.Duration)
		return nil
	},
}

// newPacman builds the agent named by the --agent flag.
func newPacman(name string, depth int, seed uint64) (engine.Agent, error) {
	switch name {
	case "reflex":
		return engine.NewReflexAgent(seed), nil
	case "plan":
		graph := search.NewGraph(search.AStarStrategy[maze.FoodState, maze.Direction](maze.FoodHeuristic), search.WithMetrics(metrics.NewCollector()))
		return engine.NewPlanAgent(graph, engine.EatAllFood), nil
	}
	variant, err := searcher.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, fmt.Errorf("depth must not be negative, got %d", depth)
	}
	s := searcher.NewSearcher(variant, game.NewWeightedEvaluation[maze.Direction](game.DefaultWeights),
		searcher.WithDepth(depth), searcher.WithMetrics(metrics.NewCollector()))
	return engine.NewSearchAgent(s), nil
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("agent", "a", "alphabeta", "Pacman agent: minimax, alphabeta, expectimax, reflex or plan")
	playCmd.Flags().IntP("depth", "d", searcher.DefaultDepth, "Search depth in rounds of agent turns")
	playCmd.Flags().Uint64("seed", 1, "Seed for random ghosts and tie-breaks")
	playCmd.Flags().Int("max-moves", engine.MaxMoves, "Stop the game after this many moves")
	playCmd.Flags().Bool("show", false, "Print the final board")
}
