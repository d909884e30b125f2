package game

// State is an immutable multi-agent game snapshot. Agent 0 is the
// maximizing agent; agents 1 and above are its adversaries. Operations
// on a State always return a new copy.
type State[A any] interface {
	// LegalActions is empty only for terminal states.
	LegalActions(agent int) []A
	GenerateSuccessor(agent int, action A) State[A]
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
}

// IsTerminal reports whether the game has ended in a win or a loss.
func IsTerminal[A any](s State[A]) bool {
	return s.IsWin() || s.IsLose()
}

// Evaluate scores a state from agent 0's perspective, higher is better.
type Evaluate[A any] func(State[A]) float64

type Position struct {
	X, Y int
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Ghost struct {
	Position    Position
	ScaredTimer int // Moves left before the ghost is harmful again
}

func (g Ghost) IsScared() bool {
	return g.ScaredTimer > 0
}

// Observation exposes the board features evaluation functions read.
type Observation interface {
	PacmanPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
	HasWall(p Position) bool
	Score() float64
}
