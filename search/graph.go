package search

import (
	"pacman/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(settings *settings)

type settings struct {
	metrics metrics.Collector
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Solution is a successful search result.
type Solution[A any] struct {
	Actions []A
	Cost    float64
	Metric  metrics.SearchMetric
}

// Graph runs graph search with the frontier ordering of its strategy.
// A Graph keeps no state between searches.
type Graph[S comparable, A any] struct {
	strategy Strategy[S, A]
	settings
}

func NewGraph[S comparable, A any](strategy Strategy[S, A], options ...Option) *Graph[S, A] {
	g := &Graph[S, A]{
		strategy: strategy,
		settings: settings{metrics: metrics.NewDummyCollector()},
	}
	for _, option := range options {
		option(&g.settings)
	}
	return g
}

func (g *Graph[S, A]) Strategy() Strategy[S, A] {
	return g.strategy
}

// Search returns the actions of the first goal path popped from the
// frontier, or false when the frontier is exhausted without reaching a
// goal.
func (g *Graph[S, A]) Search(problem Problem[S, A]) ([]A, bool) {
	solution, found := g.Solve(problem)
	return solution.Actions, found
}

// Solve is Search with the path cost and search metrics attached.
//
// The goal test and the explored check both happen when a node is popped,
// so a state can sit in the frontier several times but is expanded at
// most once.
func (g *Graph[S, A]) Solve(problem Problem[S, A]) (Solution[A], bool) {
	g.metrics.Start(g.strategy.Kind.String())

	explored := make(map[S]struct{})
	frontier := g.strategy.frontier(problem)
	frontier.Push(newRoot[S, A](problem.StartState()))

	for frontier.Len() > 0 {
		node := frontier.Pop()
		if problem.IsGoalState(node.State) {
			return Solution[A]{
				Actions: node.Actions,
				Cost:    node.TotalCost,
				Metric:  g.metrics.Complete(),
			}, true
		}
		if _, ok := explored[node.State]; ok {
			continue
		}
		explored[node.State] = struct{}{}
		g.metrics.AddExpansion()
		for _, successor := range problem.Successors(node.State) {
			frontier.Push(node.branch(successor))
		}
	}

	metric := g.metrics.Complete()
	log.Debug().Msgf("%s search exhausted the frontier after %d expansions", g.strategy.Kind, len(explored))
	return Solution[A]{Metric: metric}, false
}

// DepthFirstSearch searches the deepest nodes first.
func DepthFirstSearch[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	return NewGraph(DepthFirstStrategy[S, A]()).Search(problem)
}

// BreadthFirstSearch searches the shallowest nodes first.
func BreadthFirstSearch[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	return NewGraph(BreadthFirstStrategy[S, A]()).Search(problem)
}

// UniformCostSearch searches the node of least total cost first.
func UniformCostSearch[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	return NewGraph(UniformCostStrategy[S, A]()).Search(problem)
}

// AStarSearch searches the node with the lowest total cost plus
// heuristic estimate first.
func AStarSearch[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) ([]A, bool) {
	return NewGraph(AStarStrategy(heuristic)).Search(problem)
}
