package engine

import (
	"pacman/experiments/metrics"
	"pacman/maze"
)

const MaxMoves = 1000

type Engine interface {
	// Run plays a game until it is won, lost or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Agent interface {
	// FindMove returns the action for the agent with the given index and
	// the metrics of the search behind it (if collected)
	FindMove(state *maze.State, agent int) (maze.Direction, metrics.SearchMetric)
}
