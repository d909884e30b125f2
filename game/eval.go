package game

import "math"

// Weights for the features combined by NewWeightedEvaluation.
type Weights struct {
	Score     float64 `yaml:"score"`
	Food      float64 `yaml:"food"`
	FoodCount float64 `yaml:"food_count"`
	Ghost     float64 `yaml:"ghost"`
	Capsule   float64 `yaml:"capsule"`
	Wall      float64 `yaml:"wall"`
}

var DefaultWeights = Weights{
	Score:     1.0,
	Food:      10.0,
	FoodCount: 4.0,
	Ghost:     20.0,
	Capsule:   5.0,
	Wall:      1.0,
}

// EvaluateScore scores a state by its game score alone.
func EvaluateScore[A any](s State[A]) float64 {
	return s.Score()
}

// EvaluateBetter is the weighted evaluation with DefaultWeights.
func EvaluateBetter[A any](s State[A]) float64 {
	return weighted(observe(s), DefaultWeights)
}

// NewWeightedEvaluation combines the game score with proximity to the
// nearest food, capsule and ghost. Closer food and capsules raise the
// score, as does distance from active ghosts. Scared ghosts flip sign and
// count double, so closing in on them raises the score too.
func NewWeightedEvaluation[A any](w Weights) Evaluate[A] {
	return func(s State[A]) float64 {
		return weighted(observe(s), w)
	}
}

// EvaluateReflex scores the action agent 0 takes from current by the
// resulting score delta, the nearest food and the nearest ghost.
func EvaluateReflex[A any](current State[A], action A) float64 {
	successor := current.GenerateSuccessor(0, action)
	obs := observe(successor)
	pos := obs.PacmanPosition()

	ghostScore := 0.0
	if _, d, ok := nearest(pos, ghostPositions(obs.Ghosts())); ok {
		ghostScore = -inverse(d)
	}
	foodScore := 1.0
	if _, d, ok := nearest(pos, obs.Food()); ok {
		foodScore = inverse(d)
	}
	return successor.Score() - current.Score() + ghostScore + foodScore
}

func observe[A any](s State[A]) Observation {
	obs, ok := s.(Observation)
	if !ok {
		panic("unexpected state type")
	}
	return obs
}

func weighted(obs Observation, w Weights) float64 {
	pos := obs.PacmanPosition()
	value := w.Score * obs.Score()

	food := obs.Food()
	if target, d, ok := nearest(pos, food); ok {
		value += w.Food * inverse(d)
		value -= w.FoodCount * float64(len(food))
		if blocked(obs, pos, target) {
			value -= w.Wall
		}
	}

	if ghost, d, ok := nearestGhost(pos, obs.Ghosts()); ok {
		if ghost.IsScared() {
			value += 2 * w.Ghost * inverse(d)
		} else {
			value -= w.Ghost * inverse(d)
		}
	}

	if _, d, ok := nearest(pos, obs.Capsules()); ok {
		value += w.Capsule * inverse(d)
	}

	return value
}

func inverse(distance int) float64 {
	return 1.0 / float64(distance+1)
}

func nearest(from Position, targets []Position) (Position, int, bool) {
	best := Position{}
	bestDistance := math.MaxInt
	for _, target := range targets {
		if d := ManhattanDistance(from, target); d < bestDistance {
			best, bestDistance = target, d
		}
	}
	return best, bestDistance, len(targets) > 0
}

func nearestGhost(from Position, ghosts []Ghost) (Ghost, int, bool) {
	_, d, ok := nearest(from, ghostPositions(ghosts))
	for _, ghost := range ghosts {
		if ManhattanDistance(from, ghost.Position) == d {
			return ghost, d, true
		}
	}
	return Ghost{}, d, ok
}

func ghostPositions(ghosts []Ghost) []Position {
	positions := make([]Position, len(ghosts))
	for i, ghost := range ghosts {
		positions[i] = ghost.Position
	}
	return positions
}

// blocked reports whether every single step from pos towards target runs
// into a wall.
func blocked(obs Observation, pos, target Position) bool {
	steps := []Position{}
	if dx := sign(target.X - pos.X); dx != 0 {
		steps = append(steps, pos.Add(dx, 0))
	}
	if dy := sign(target.Y - pos.Y); dy != 0 {
		steps = append(steps, pos.Add(0, dy))
	}
	if len(steps) == 0 {
		return false
	}
	for _, step := range steps {
		if !obs.HasWall(step) {
			return false
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
