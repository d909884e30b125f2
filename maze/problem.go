package maze

import (
	"math"
	"strings"

	"pacman/game"
	"pacman/search"
)

// CostFn prices stepping into a cell.
type CostFn func(p game.Position) float64

func unitCost(game.Position) float64 {
	return 1
}

// PositionProblem asks for a path from a start cell to a goal cell.
type PositionProblem struct {
	layout *Layout
	start  game.Position
	goal   game.Position
	cost   CostFn
}

// NewPositionProblem builds a path-finding problem. A nil cost charges one
// per step.
func NewPositionProblem(layout *Layout, start, goal game.Position, cost CostFn) *PositionProblem {
	if cost == nil {
		cost = unitCost
	}
	return &PositionProblem{layout: layout, start: start, goal: goal, cost: cost}
}

func (p *PositionProblem) Goal() game.Position {
	return p.goal
}

func (p *PositionProblem) StartState() game.Position {
	return p.start
}

func (p *PositionProblem) IsGoalState(state game.Position) bool {
	return state == p.goal
}

func (p *PositionProblem) Successors(state game.Position) []search.Successor[game.Position, Direction] {
	moves := p.layout.moves(state)
	successors := make([]search.Successor[game.Position, Direction], 0, len(moves))
	for _, d := range moves {
		next := d.Apply(state)
		successors = append(successors, search.Successor[game.Position, Direction]{
			State:    next,
			Action:   d,
			StepCost: p.cost(next),
		})
	}
	return successors
}

// CostOfActions returns +Inf for a sequence that walks into a wall.
func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	position := p.start
	total := 0.0
	for _, d := range actions {
		position = d.Apply(position)
		if p.layout.HasWall(position) {
			return math.Inf(1)
		}
		total += p.cost(position)
	}
	return total
}

// ManhattanHeuristic estimates the grid distance to goal, ignoring walls.
func ManhattanHeuristic(goal game.Position) search.Heuristic[game.Position, Direction] {
	return func(state game.Position, _ search.Problem[game.Position, Direction]) float64 {
		return float64(game.ManhattanDistance(state, goal))
	}
}

// FoodState is a position plus the remaining food, one byte per cell.
type FoodState struct {
	Position game.Position
	Food     string
}

func (s FoodState) remaining() int {
	return strings.Count(s.Food, "1")
}

// FoodProblem asks for a path that eats every remaining food. Every step
// costs one.
type FoodProblem struct {
	layout *Layout
	start  FoodState
}

func NewFoodProblem(state *State) *FoodProblem {
	food := make([]byte, len(state.food))
	for i, present := range state.food {
		food[i] = '0'
		if present {
			food[i] = '1'
		}
	}
	return &FoodProblem{
		layout: state.layout,
		start:  FoodState{Position: state.pacman, Food: string(food)},
	}
}

func (p *FoodProblem) StartState() FoodState {
	return p.start
}

func (p *FoodProblem) IsGoalState(state FoodState) bool {
	return state.remaining() == 0
}

func (p *FoodProblem) Successors(state FoodState) []search.Successor[FoodState, Direction] {
	moves := p.layout.moves(state.Position)
	successors := make([]search.Successor[FoodState, Direction], 0, len(moves))
	for _, d := range moves {
		successors = append(successors, search.Successor[FoodState, Direction]{
			State:    p.step(state, d),
			Action:   d,
			StepCost: 1,
		})
	}
	return successors
}

func (p *FoodProblem) step(state FoodState, d Direction) FoodState {
	next := FoodState{Position: d.Apply(state.Position), Food: state.Food}
	if i := p.layout.index(next.Position); next.Food[i] == '1' {
		food := []byte(next.Food)
		food[i] = '0'
		next.Food = string(food)
	}
	return next
}

// CostOfActions returns +Inf for a sequence that walks into a wall.
func (p *FoodProblem) CostOfActions(actions []Direction) float64 {
	position := p.start.Position
	for _, d := range actions {
		position = d.Apply(position)
		if p.layout.HasWall(position) {
			return math.Inf(1)
		}
	}
	return float64(len(actions))
}

// FoodHeuristic estimates the distance to the farthest remaining food.
// It requires the problem to be a *FoodProblem.
func FoodHeuristic(state FoodState, problem search.Problem[FoodState, Direction]) float64 {
	width := problem.(*FoodProblem).layout.Width
	farthest := 0
	for i := 0; i < len(state.Food); i++ {
		if state.Food[i] != '1' {
			continue
		}
		food := game.Position{X: i % width, Y: i / width}
		farthest = max(farthest, game.ManhattanDistance(state.Position, food))
	}
	return float64(farthest)
}
