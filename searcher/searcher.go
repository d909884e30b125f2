package searcher

import (
	"math"

	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *settings)

type settings struct {
	depth   int
	metrics metrics.Collector
}

// WithDepth sets how many full rounds of agent turns are searched.
func WithDepth(depth int) Option {
	return func(s *settings) {
		s.depth = depth
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type Decision[A any] struct {
	Action A
	Value  float64
	Metric metrics.SearchMetric
}

// Searcher picks agent 0's action by depth-limited search over the turn
// order 0, 1, ..., NumAgents-1. Depth drops by one each time the turn
// returns to agent 0.
type Searcher[A any] struct {
	variant  Variant
	evaluate game.Evaluate[A]
	settings
}

// NewSearcher creates a searcher that scores states at the depth limit
// with evaluate, or by game score when evaluate is nil.
func NewSearcher[A any](variant Variant, evaluate game.Evaluate[A], options ...Option) *Searcher[A] {
	if _, ok := variantNames[variant]; !ok {
		panic(violation("unexpected variant %d", int(variant)))
	}
	if evaluate == nil {
		evaluate = game.EvaluateScore[A]
	}
	s := &Searcher[A]{ // Default values
		variant:  variant,
		evaluate: evaluate,
		settings: settings{
			depth:   DefaultDepth,
			metrics: metrics.NewDummyCollector(),
		},
	}
	for _, option := range options {
		option(&s.settings)
	}
	if s.depth < 0 {
		panic(violation("negative search depth %d", s.depth))
	}
	return s
}

func (s *Searcher[A]) Variant() Variant {
	return s.variant
}

func (s *Searcher[A]) Depth() int {
	return s.depth
}

// FindNextMove returns agent 0's best action from state.
func (s *Searcher[A]) FindNextMove(state game.State[A]) A {
	return s.Decide(state).Action
}

// Decide evaluates every legal action of agent 0 and returns the one with
// the strictly greatest value, keeping the earliest on ties.
func (s *Searcher[A]) Decide(state game.State[A]) Decision[A] {
	numAgents := state.NumAgents()
	if numAgents < 1 {
		panic(violation("number of agents %d is below 1", numAgents))
	}
	if game.IsTerminal(state) {
		panic(violation("cannot search from a terminal state"))
	}
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		panic(violation("agent 0 has no legal actions in a non-terminal state"))
	}

	s.metrics.Start(s.variant.String())
	s.metrics.AddVisit()

	agent, depth := next(0, s.depth, numAgents)
	alpha := math.Inf(-1)
	best := Decision[A]{Action: actions[0], Value: math.Inf(-1)}
	for i, action := range actions {
		v := s.value(state.GenerateSuccessor(0, action), depth, agent, alpha, math.Inf(1))
		if i == 0 || v > best.Value {
			best.Action, best.Value = action, v
		}
		alpha = math.Max(alpha, best.Value)
	}
	best.Metric = s.metrics.Complete()

	log.Debug().Msgf("%s chose %v with value %.3f", s.variant, best.Action, best.Value)
	return best
}

// value is the backed-up value of state when it is agent's turn with
// depth rounds left. alpha and beta only narrow for AlphaBeta.
func (s *Searcher[A]) value(state game.State[A], depth, agent int, alpha, beta float64) float64 {
	s.metrics.AddVisit()
	if depth <= 0 || game.IsTerminal(state) {
		return s.evaluate(state)
	}

	numAgents := state.NumAgents()
	if agent < 0 || agent >= numAgents {
		panic(violation("agent index %d out of range for %d agents", agent, numAgents))
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		panic(violation("agent %d has no legal actions in a non-terminal state", agent))
	}

	nextAgent, nextDepth := next(agent, depth, numAgents)
	switch {
	case agent == 0:
		return s.maxValue(state, actions, nextDepth, nextAgent, alpha, beta)
	case s.variant == Expectimax:
		return s.expectedValue(state, agent, actions, nextDepth, nextAgent)
	default:
		return s.minValue(state, agent, actions, nextDepth, nextAgent, alpha, beta)
	}
}

func (s *Searcher[A]) maxValue(state game.State[A], actions []A, depth, nextAgent int, alpha, beta float64) float64 {
	v := math.Inf(-1)
	for _, action := range actions {
		v = math.Max(v, s.value(state.GenerateSuccessor(0, action), depth, nextAgent, alpha, beta))
		if s.variant == AlphaBeta {
			if v > beta {
				return v
			}
			alpha = math.Max(alpha, v)
		}
	}
	return v
}

func (s *Searcher[A]) minValue(state game.State[A], agent int, actions []A, depth, nextAgent int, alpha, beta float64) float64 {
	v := math.Inf(1)
	for _, action := range actions {
		v = math.Min(v, s.value(state.GenerateSuccessor(agent, action), depth, nextAgent, alpha, beta))
		if s.variant == AlphaBeta {
			if v < alpha {
				return v
			}
			beta = math.Min(beta, v)
		}
	}
	return v
}

// expectedValue averages over the agent's actions, each equally likely.
func (s *Searcher[A]) expectedValue(state game.State[A], agent int, actions []A, depth, nextAgent int) float64 {
	total := 0.0
	for _, action := range actions {
		total += s.value(state.GenerateSuccessor(agent, action), depth, nextAgent, math.Inf(-1), math.Inf(1))
	}
	return total / float64(len(actions))
}

// next returns whose turn follows agent, and the depth left once they move.
func next(agent, depth, numAgents int) (int, int) {
	agent++
	if agent == numAgents {
		return 0, depth - 1
	}
	return agent, depth
}
