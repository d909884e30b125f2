package searcher

import (
	"pacman/game"
)

// tree is a game where every node lists its children per action; every
// agent sees the same actions. Leaves carry the evaluation value.
type tree struct {
	id       string
	value    float64
	agents   int
	children []*tree
	win      bool
	lose     bool
}

func (t *tree) LegalActions(agent int) []int {
	actions := make([]int, len(t.children))
	for i := range t.children {
		actions[i] = i
	}
	return actions
}

func (t *tree) GenerateSuccessor(agent int, action int) game.State[int] {
	if t.win || t.lose {
		panic("successor of terminal state")
	}
	return t.children[action]
}

func (t *tree) NumAgents() int { return t.agents }
func (t *tree) IsWin() bool    { return t.win }
func (t *tree) IsLose() bool   { return t.lose }
func (t *tree) Score() float64 { return t.value }

// leaf returns a leaf node with the given value.
func leaf(id string, value float64) *tree {
	return &tree{id: id, value: value}
}

// node returns an inner node whose children inherit the agent count.
func node(id string, children ...*tree) *tree {
	return &tree{id: id, children: children}
}

// withAgents sets the agent count on every node of the tree.
func withAgents(root *tree, agents int) *tree {
	root.agents = agents
	for _, child := range root.children {
		withAgents(child, agents)
	}
	return root
}

// recorder evaluates a tree node by its value and records its id.
type recorder struct {
	seen []string
}

func (r *recorder) evaluate(s game.State[int]) float64 {
	t := s.(*tree)
	r.seen = append(r.seen, t.id)
	return t.value
}

// textbook is the classic three-by-three minimax example: two agents,
// depth one, root value 3 via the first action.
func textbook() *tree {
	return withAgents(node("root",
		node("a", leaf("a1", 3), leaf("a2", 12), leaf("a3", 8)),
		node("b", leaf("b1", 2), leaf("b2", 4), leaf("b3", 6)),
		node("c", leaf("c1", 14), leaf("c2", 5), leaf("c3", 2)),
	), 2)
}
