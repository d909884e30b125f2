package maze

import (
	"fmt"
	"strings"

	"pacman/game"
)

const (
	TimePenalty = 1.0
	FoodReward  = 10.0
	GhostReward = 200.0
	WinReward   = 500.0
	LosePenalty = 500.0
	ScaredTime  = 40 // Moves a ghost stays scared after a capsule is eaten
)

// State is an immutable maze game snapshot. Agent 0 is pacman and agent
// i >= 1 is the ghost that started at GhostStarts[i-1].
type State struct {
	layout   *Layout
	pacman   game.Position
	ghosts   []game.Ghost
	food     []bool // Indexed like layout cells
	foodLeft int
	capsules []game.Position
	score    float64
	win      bool
	lose     bool
}

func NewState(layout *Layout) *State {
	food := make([]bool, layout.Cells())
	for _, p := range layout.Food {
		food[layout.index(p)] = true
	}
	ghosts := make([]game.Ghost, len(layout.GhostStarts))
	for i, start := range layout.GhostStarts {
		ghosts[i] = game.Ghost{Position: start}
	}
	return &State{
		layout:   layout,
		pacman:   layout.PacmanStart,
		ghosts:   ghosts,
		food:     food,
		foodLeft: len(layout.Food),
		capsules: append([]game.Position(nil), layout.Capsules...),
		win:      len(layout.Food) == 0,
	}
}

func (s *State) Layout() *Layout {
	return s.layout
}

// LegalActions lets pacman stop or move into any open cell. Ghosts must
// keep moving and may only stop when boxed in.
func (s *State) LegalActions(agent int) []Direction {
	s.checkAgent(agent)
	if s.win || s.lose {
		return nil
	}
	if agent == 0 {
		return append([]Direction{Stop}, s.layout.moves(s.pacman)...)
	}
	moves := s.layout.moves(s.ghosts[agent-1].Position)
	if len(moves) == 0 {
		return []Direction{Stop}
	}
	return moves
}

func (s *State) GenerateSuccessor(agent int, action Direction) game.State[Direction] {
	return s.Successor(agent, action)
}

// Successor is GenerateSuccessor with the concrete state type.
func (s *State) Successor(agent int, action Direction) *State {
	s.checkAgent(agent)
	if s.win || s.lose {
		panic("cannot generate successor of a terminal state")
	}
	if !s.isLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := *s
	next.ghosts = append([]game.Ghost(nil), s.ghosts...)
	if agent == 0 {
		next.movePacman(action)
	} else {
		next.moveGhost(agent-1, action)
	}
	return &next
}

func (s *State) movePacman(action Direction) {
	s.pacman = action.Apply(s.pacman)
	s.score -= TimePenalty

	if i := s.layout.index(s.pacman); s.food[i] {
		s.food = append([]bool(nil), s.food...)
		s.food[i] = false
		s.foodLeft--
		s.score += FoodReward
		if s.foodLeft == 0 {
			s.score += WinReward
			s.win = true
			return
		}
	}

	for i, capsule := range s.capsules {
		if capsule == s.pacman {
			s.capsules = append(append([]game.Position(nil), s.capsules[:i]...), s.capsules[i+1:]...)
			for g := range s.ghosts {
				s.ghosts[g].ScaredTimer = ScaredTime
			}
			break
		}
	}

	for g := range s.ghosts {
		s.collide(g)
	}
}

func (s *State) moveGhost(index int, action Direction) {
	ghost := &s.ghosts[index]
	ghost.Position = action.Apply(ghost.Position)
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	s.collide(index)
}

// collide resolves pacman and a ghost sharing a cell.
func (s *State) collide(index int) {
	if s.lose {
		return
	}
	ghost := &s.ghosts[index]
	if ghost.Position != s.pacman {
		return
	}
	if ghost.IsScared() {
		s.score += GhostReward
		ghost.Position = s.layout.GhostStarts[index]
		ghost.ScaredTimer = 0
		return
	}
	s.score -= LosePenalty
	s.lose = true
}

func (s *State) isLegal(agent int, action Direction) bool {
	for _, legal := range s.LegalActions(agent) {
		if legal == action {
			return true
		}
	}
	return false
}

func (s *State) checkAgent(agent int) {
	if agent < 0 || agent >= s.NumAgents() {
		panic(fmt.Sprintf("agent index %d out of range for %d agents", agent, s.NumAgents()))
	}
}

func (s *State) NumAgents() int {
	return 1 + len(s.ghosts)
}

func (s *State) IsWin() bool {
	return s.win
}

func (s *State) IsLose() bool {
	return s.lose
}

func (s *State) Score() float64 {
	return s.score
}

func (s *State) PacmanPosition() game.Position {
	return s.pacman
}

// Food lists the remaining food in row-major order.
func (s *State) Food() []game.Position {
	food := make([]game.Position, 0, s.foodLeft)
	for i, present := range s.food {
		if present {
			food = append(food, game.Position{X: i % s.layout.Width, Y: i / s.layout.Width})
		}
	}
	return food
}

func (s *State) FoodLeft() int {
	return s.foodLeft
}

func (s *State) Capsules() []game.Position {
	return append([]game.Position(nil), s.capsules...)
}

func (s *State) Ghosts() []game.Ghost {
	return append([]game.Ghost(nil), s.ghosts...)
}

func (s *State) HasWall(p game.Position) bool {
	return s.layout.HasWall(p)
}

// String draws the maze in layout notation.
func (s *State) String() string {
	var b strings.Builder
	for y := 0; y < s.layout.Height; y++ {
		for x := 0; x < s.layout.Width; x++ {
			b.WriteByte(s.cell(game.Position{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *State) cell(p game.Position) byte {
	if p == s.pacman {
		return 'P'
	}
	for _, ghost := range s.ghosts {
		if ghost.Position == p {
			return 'G'
		}
	}
	switch {
	case s.layout.HasWall(p):
		return '%'
	case s.food[s.layout.index(p)]:
		return '.'
	}
	for _, capsule := range s.capsules {
		if capsule == p {
			return 'o'
		}
	}
	return ' '
}
