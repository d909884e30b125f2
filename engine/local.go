package engine

import (
	"fmt"
	"slices"
	"time"

	"pacman/experiments/metrics"
	"pacman/maze"

	"github.com/rs/zerolog/log"
)

type Option func(*Local)

func WithMaxMoves(moves int) Option {
	return func(l *Local) {
		if moves <= 0 {
			panic(fmt.Sprintf("max moves %d must be positive", moves))
		}
		l.maxMoves = moves
	}
}

// Local plays a maze game in process. Agents[i] moves for agent index i.
type Local struct {
	State    *maze.State
	Agents   []Agent
	maxMoves int
}

func NewLocal(state *maze.State, agents []Agent, options ...Option) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("%d agents given for a game of %d agents", len(agents), state.NumAgents()))
	}
	l := &Local{State: state, Agents: agents, maxMoves: MaxMoves}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run executes the game loop. Every agent action counts as one move.
func (l *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    l.State.Layout().Name,
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("starting game on %s with %d agents", gameMetric.Layout, len(l.Agents))

	agent := 0
	for !l.State.IsWin() && !l.State.IsLose() && gameMetric.Moves < l.maxMoves {
		action, searchMetric := l.Agents[agent].FindMove(l.State, agent)
		legal := l.State.LegalActions(agent)
		if !slices.Contains(legal, action) {
			log.Warn().Msgf("agent %d chose illegal action %s, playing %s instead", agent, action, legal[0])
			action = legal[0]
		}

		gameMetric.Moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         gameMetric.Moves,
			Agent:        agent,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: agent %d plays %s", gameMetric.Moves, agent, action)

		l.State = l.State.Successor(agent, action)
		agent = (agent + 1) % l.State.NumAgents()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Win = l.State.IsWin()
	gameMetric.Score = l.State.Score()

	if l.State.IsWin() || l.State.IsLose() {
		log.Info().Msgf("game over after %d moves: win=%t score=%.0f", gameMetric.Moves, gameMetric.Win, gameMetric.Score)
	} else {
		log.Info().Msgf("stopped after %d moves without a result, score=%.0f", gameMetric.Moves, gameMetric.Score)
	}

	return gameMetric, moveMetrics
}
