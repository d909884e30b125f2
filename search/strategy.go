package search

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown search strategy")

// Kind selects how the frontier orders candidate paths.
type Kind int

const (
	DepthFirst Kind = iota
	BreadthFirst
	UniformCost
	AStar
)

var kindNames = map[Kind]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	AStar:        "astar",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a strategy name such as "bfs" or "astar".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategy is a frontier ordering together with the heuristic it scores
// nodes with. Only AStar consults the heuristic.
type Strategy[S comparable, A any] struct {
	Kind      Kind
	Heuristic Heuristic[S, A]
}

func DepthFirstStrategy[S comparable, A any]() Strategy[S, A] {
	return Strategy[S, A]{Kind: DepthFirst}
}

func BreadthFirstStrategy[S comparable, A any]() Strategy[S, A] {
	return Strategy[S, A]{Kind: BreadthFirst}
}

func UniformCostStrategy[S comparable, A any]() Strategy[S, A] {
	return Strategy[S, A]{Kind: UniformCost}
}

// AStarStrategy orders by heuristic estimate plus path cost. A nil
// heuristic falls back to NullHeuristic.
func AStarStrategy[S comparable, A any](heuristic Heuristic[S, A]) Strategy[S, A] {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	return Strategy[S, A]{Kind: AStar, Heuristic: heuristic}
}

// NewStrategy builds the strategy for kind, attaching heuristic when the
// kind is AStar.
func NewStrategy[S comparable, A any](kind Kind, heuristic Heuristic[S, A]) (Strategy[S, A], error) {
	switch kind {
	case DepthFirst:
		return DepthFirstStrategy[S, A](), nil
	case BreadthFirst:
		return BreadthFirstStrategy[S, A](), nil
	case UniformCost:
		return UniformCostStrategy[S, A](), nil
	case AStar:
		return AStarStrategy(heuristic), nil
	}
	return Strategy[S, A]{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
}

func (s Strategy[S, A]) frontier(problem Problem[S, A]) Frontier[S, A] {
	switch s.Kind {
	case DepthFirst:
		return NewStack[S, A]()
	case BreadthFirst:
		return NewQueue[S, A]()
	case UniformCost:
		return NewPriorityQueue(func(n *Node[S, A]) float64 {
			return n.TotalCost
		})
	case AStar:
		heuristic := s.Heuristic
		if heuristic == nil {
			heuristic = NullHeuristic[S, A]
		}
		return NewPriorityQueue(func(n *Node[S, A]) float64 {
			return heuristic(n.State, problem) + n.TotalCost
		})
	}
	panic(fmt.Sprintf("unexpected strategy kind %d", int(s.Kind)))
}
