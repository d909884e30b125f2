package engine

import (
	"testing"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/maze"
	"pacman/search"
	"pacman/searcher"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *maze.State {
	t.Helper()
	layout, err := maze.ParseLayout("test", text)
	require.NoError(t, err)
	return maze.NewState(layout)
}

func load(t *testing.T, name string) *maze.State {
	t.Helper()
	layout, err := maze.LoadLayout(name)
	require.NoError(t, err)
	return maze.NewState(layout)
}

// stubborn always plays the same action.
type stubborn struct {
	action maze.Direction
}

func (a stubborn) FindMove(*maze.State, int) (maze.Direction, metrics.SearchMetric) {
	return a.action, metrics.SearchMetric{}
}

func TestSearchAgent(t *testing.T) {
	for _, variant := range []searcher.Variant{searcher.Minimax, searcher.AlphaBeta, searcher.Expectimax} {
		t.Run(variant.String(), func(t *testing.T) {
			state := parse(t, "%%%%%%%\n%.P  G%\n%%%%%%%")
			s := searcher.NewSearcher[maze.Direction](variant, nil, searcher.WithMetrics(metrics.NewCollector()))

			gameMetric, moveMetrics := NewLocal(state, []Agent{NewSearchAgent(s), NewRandomGhost(1)}).Run()

			require.True(t, gameMetric.Win, "Pacman should eat the only food right away")
			require.Equal(t, 509.0, gameMetric.Score)
			require.Equal(t, 1, gameMetric.Moves)
			require.Len(t, moveMetrics, 1)
			require.Equal(t, variant.String(), moveMetrics[0].Label)
			require.Positive(t, moveMetrics[0].Visits)
		})
	}

	t.Run("depth zero without ghosts", func(t *testing.T) {
		state := parse(t, "%%%%%\n%P .%\n%%%%%")
		s := searcher.NewSearcher(searcher.Minimax, game.EvaluateBetter[maze.Direction], searcher.WithDepth(0))

		gameMetric, _ := NewLocal(state, []Agent{NewSearchAgent(s)}, WithMaxMoves(10)).Run()

		require.True(t, gameMetric.Win)
		require.Equal(t, 2, gameMetric.Moves)
	})

	t.Run("only plays pacman", func(t *testing.T) {
		state := parse(t, "%%%%%%%\n%.P  G%\n%%%%%%%")
		agent := NewSearchAgent(searcher.NewSearcher[maze.Direction](searcher.Minimax, nil))

		require.Panics(t, func() { agent.FindMove(state, 1) })
	})
}

func TestReflexAgent(t *testing.T) {
	t.Run("eats its way along a corridor", func(t *testing.T) {
		state := parse(t, "%%%%%%\n%P...%\n%%%%%%")

		gameMetric, moveMetrics := NewLocal(state, []Agent{NewReflexAgent(1)}).Run()

		require.True(t, gameMetric.Win)
		require.Equal(t, 3, gameMetric.Moves)
		require.Equal(t, 527.0, gameMetric.Score)
		require.Equal(t, "test", gameMetric.Layout)
		for i, moveMetric := range moveMetrics {
			require.Equal(t, i+1, moveMetric.Step)
			require.Equal(t, "reflex", moveMetric.Label)
		}
	})

	t.Run("breaks ties between equally good actions", func(t *testing.T) {
		state := parse(t, "%%%%%\n%.P.%\n%%%%%")

		for seed := uint64(0); seed < 10; seed++ {
			action, _ := NewReflexAgent(seed).FindMove(state, 0)

			require.Contains(t, []maze.Direction{maze.East, maze.West}, action)
		}
	})

	t.Run("prefers the action scored best", func(t *testing.T) {
		state := parse(t, "%%%%%%\n%P. G%\n%%%%%%")

		action, _ := NewReflexAgent(3).FindMove(state, 0)

		require.Equal(t, maze.East, action)
		require.Greater(t, game.EvaluateReflex[maze.Direction](state, maze.East), game.EvaluateReflex[maze.Direction](state, maze.Stop))
	})
}

func TestPlanAgent(t *testing.T) {
	t.Run("A* plan clears tinyFood", func(t *testing.T) {
		graph := search.NewGraph(search.AStarStrategy[maze.FoodState, maze.Direction](maze.FoodHeuristic), search.WithMetrics(metrics.NewCollector()))
		agent := NewPlanAgent(graph, EatAllFood)

		gameMetric, moveMetrics := NewLocal(load(t, "tinyFood"), []Agent{agent}).Run()

		require.True(t, gameMetric.Win)
		require.Equal(t, 16, gameMetric.Moves)
		require.Equal(t, 524.0, gameMetric.Score, "Sixteen moves, four food and the win bonus")
		require.Positive(t, moveMetrics[0].Expansions, "The plan is searched on the first move")
		require.Zero(t, moveMetrics[1].Expansions, "Later moves follow the plan")
	})

	t.Run("path to a position", func(t *testing.T) {
		state := load(t, "tinyMaze")
		layout := state.Layout()
		toFood := func(s *maze.State) search.Problem[game.Position, maze.Direction] {
			return maze.NewPositionProblem(layout, s.PacmanPosition(), layout.Food[0], nil)
		}
		agent := NewPlanAgent(search.NewGraph(search.BreadthFirstStrategy[game.Position, maze.Direction]()), toFood)

		gameMetric, _ := NewLocal(state, []Agent{agent}).Run()

		require.True(t, gameMetric.Win)
		require.Equal(t, 8, gameMetric.Moves)
	})

	t.Run("stands still without a plan", func(t *testing.T) {
		state := parse(t, "%%%%%\n%P%.%\n%%%%%")
		agent := NewPlanAgent(search.NewGraph(search.BreadthFirstStrategy[maze.FoodState, maze.Direction]()), EatAllFood)

		gameMetric, moveMetrics := NewLocal(state, []Agent{agent}, WithMaxMoves(10)).Run()

		require.False(t, gameMetric.Win)
		require.Equal(t, 10, gameMetric.Moves)
		require.Equal(t, -10.0, gameMetric.Score)
		require.Len(t, moveMetrics, 10)
	})
}

func TestRandomGhost(t *testing.T) {
	state := load(t, "smallGame")
	first := NewRandomGhost(42)
	second := NewRandomGhost(42)

	for i := 0; i < 50; i++ {
		action, _ := first.FindMove(state, 1)
		same, _ := second.FindMove(state, 1)

		require.Contains(t, state.LegalActions(1), action)
		require.Equal(t, action, same, "Ghosts with the same seed should move alike")
	}
}

func TestLocal(t *testing.T) {
	t.Run("agents take turns", func(t *testing.T) {
		state := load(t, "smallGame")
		agents := []Agent{NewReflexAgent(7), NewRandomGhost(8), NewRandomGhost(9)}

		gameMetric, moveMetrics := NewLocal(state, agents, WithMaxMoves(300)).Run()

		require.LessOrEqual(t, gameMetric.Moves, 300)
		require.Len(t, moveMetrics, gameMetric.Moves)
		for i, moveMetric := range moveMetrics {
			require.Equal(t, i%3, moveMetric.Agent)
		}
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("illegal actions are replaced by the first legal one", func(t *testing.T) {
		state := load(t, "tinyMaze")
		engine := NewLocal(state, []Agent{stubborn{action: maze.North}}, WithMaxMoves(3))

		gameMetric, _ := engine.Run()

		require.Equal(t, 3, gameMetric.Moves)
		require.Equal(t, -3.0, gameMetric.Score, "Pacman stops in place")
		require.Equal(t, state.PacmanPosition(), engine.State.PacmanPosition())
	})

	t.Run("misconfiguration panics", func(t *testing.T) {
		state := load(t, "smallGame")

		require.Panics(t, func() { NewLocal(state, []Agent{NewReflexAgent(1)}) })
		require.Panics(t, func() { NewLocal(load(t, "tinyMaze"), []Agent{NewReflexAgent(1)}, WithMaxMoves(0)) })
	})
}
