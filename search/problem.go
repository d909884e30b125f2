// Package search implements graph search over an abstract state space.
// Depth-first, breadth-first, uniform-cost and A* share one engine and
// differ only in how the frontier orders candidate paths.
package search

// Successor is one transition out of a state.
type Successor[S comparable, A any] struct {
	State    S
	Action   A
	StepCost float64 // Non-negative
}

// Problem is a state space to search. States must be comparable so the
// engine can track which ones have been expanded.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoalState(state S) bool
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a legal action sequence
	// applied from the start state.
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// Estimates must be non-negative.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic estimates zero for every state, which turns A* into
// uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}
