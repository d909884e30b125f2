package search

// Node is a candidate path: the state it reaches, the actions taken from
// the start state, and their accumulated cost. Nodes are never mutated
// once created since sibling branches share their parent in the frontier.
type Node[S comparable, A any] struct {
	State     S
	Actions   []A
	TotalCost float64
}

func newRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state, Actions: []A{}}
}

// branch extends the path by one successor into a new node with its own
// copy of the action sequence.
func (n *Node[S, A]) branch(successor Successor[S, A]) *Node[S, A] {
	actions := make([]A, len(n.Actions), len(n.Actions)+1)
	copy(actions, n.Actions)
	return &Node[S, A]{
		State:     successor.State,
		Actions:   append(actions, successor.Action),
		TotalCost: n.TotalCost + successor.StepCost,
	}
}
