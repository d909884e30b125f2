package search

type edge struct {
	to   string
	cost float64
}

// mockProblem is a weighted directed graph over named states. Actions are
// named "from->to".
type mockProblem struct {
	start    string
	goals    map[string]bool
	edges    map[string][]edge
	expanded map[string]int
}

func newMockProblem(start string, goals ...string) *mockProblem {
	p := &mockProblem{
		start:    start,
		goals:    map[string]bool{},
		edges:    map[string][]edge{},
		expanded: map[string]int{},
	}
	for _, goal := range goals {
		p.goals[goal] = true
	}
	return p
}

func (p *mockProblem) addEdge(from, to string, cost float64) *mockProblem {
	p.edges[from] = append(p.edges[from], edge{to: to, cost: cost})
	return p
}

func (p *mockProblem) StartState() string {
	return p.start
}

func (p *mockProblem) IsGoalState(state string) bool {
	return p.goals[state]
}

func (p *mockProblem) Successors(state string) []Successor[string, string] {
	p.expanded[state]++
	successors := []Successor[string, string]{}
	for _, e := range p.edges[state] {
		successors = append(successors, Successor[string, string]{
			State:    e.to,
			Action:   state + "->" + e.to,
			StepCost: e.cost,
		})
	}
	return successors
}

func (p *mockProblem) CostOfActions(actions []string) float64 {
	state := p.start
	total := 0.0
	for _, action := range actions {
		found := false
		for _, e := range p.edges[state] {
			if state+"->"+e.to == action {
				total += e.cost
				state = e.to
				found = true
				break
			}
		}
		if !found {
			panic("illegal action " + action)
		}
	}
	return total
}

// diamond is the four-state graph A->B(1), A->C(5), B->G(1), C->G(1).
func diamond() *mockProblem {
	return newMockProblem("A", "G").
		addEdge("A", "B", 1).
		addEdge("A", "C", 5).
		addEdge("B", "G", 1).
		addEdge("C", "G", 1)
}

// weighted has a cheap long route and an expensive short route to G,
// plus a dead end and a cycle.
func weighted() *mockProblem {
	return newMockProblem("S", "G").
		addEdge("S", "A", 1).
		addEdge("S", "G", 10).
		addEdge("A", "B", 2).
		addEdge("A", "D", 1).
		addEdge("B", "C", 1).
		addEdge("B", "A", 1).
		addEdge("C", "G", 1).
		addEdge("D", "E", 4)
}

// oracle returns an admissible heuristic from exact remaining costs with
// the given slack subtracted.
func oracle(remaining map[string]float64, slack float64) Heuristic[string, string] {
	return func(state string, _ Problem[string, string]) float64 {
		return max(0, remaining[state]-slack)
	}
}
