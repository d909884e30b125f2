package engine

import (
	"time"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/maze"
	"pacman/search"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type searchAgent struct {
	searcher *searcher.Searcher[maze.Direction]
}

// NewSearchAgent returns a pacman agent that looks ahead with adversarial
// search. It can only play agent 0.
func NewSearchAgent(s *searcher.Searcher[maze.Direction]) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state *maze.State, agent int) (maze.Direction, metrics.SearchMetric) {
	if agent != 0 {
		panic("search agent can only play pacman")
	}
	decision := a.searcher.Decide(state)
	return decision.Action, decision.Metric
}

// ReflexAgent picks the action with the best one-step evaluation, breaking
// ties at random.
type ReflexAgent struct {
	rng *rand.Rand
}

func NewReflexAgent(seed uint64) *ReflexAgent {
	return &ReflexAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *ReflexAgent) FindMove(state *maze.State, agent int) (maze.Direction, metrics.SearchMetric) {
	if agent != 0 {
		panic("reflex agent can only play pacman")
	}
	start := time.Now()
	actions := state.LegalActions(agent)

	best := []maze.Direction{}
	bestScore := 0.0
	for _, action := range actions {
		score := game.EvaluateReflex[maze.Direction](state, action)
		switch {
		case len(best) == 0 || score > bestScore:
			best, bestScore = []maze.Direction{action}, score
		case score == bestScore:
			best = append(best, action)
		}
	}

	return best[a.rng.Intn(len(best))], metrics.SearchMetric{
		Label:      "reflex",
		Duration:   time.Since(start),
		Expansions: len(actions),
	}
}

// PlanAgent plans a complete path with graph search on its first move and
// then follows it. It stops once the plan runs out or when no plan exists.
type PlanAgent[S comparable] struct {
	graph   *search.Graph[S, maze.Direction]
	problem func(*maze.State) search.Problem[S, maze.Direction]
	plan    []maze.Direction
	planned bool
}

func NewPlanAgent[S comparable](graph *search.Graph[S, maze.Direction], problem func(*maze.State) search.Problem[S, maze.Direction]) *PlanAgent[S] {
	return &PlanAgent[S]{graph: graph, problem: problem}
}

// EatAllFood is the problem of clearing the maze of food.
func EatAllFood(state *maze.State) search.Problem[maze.FoodState, maze.Direction] {
	return maze.NewFoodProblem(state)
}

func (a *PlanAgent[S]) FindMove(state *maze.State, agent int) (maze.Direction, metrics.SearchMetric) {
	if agent != 0 {
		panic("plan agent can only play pacman")
	}
	metric := metrics.SearchMetric{Label: a.graph.Strategy().Kind.String()}
	if !a.planned {
		solution, found := a.graph.Solve(a.problem(state))
		if !found {
			log.Warn().Msgf("%s search found no plan, standing still", metric.Label)
		}
		a.plan, a.planned, metric = solution.Actions, true, solution.Metric
		log.Info().Msgf("planned %d moves with cost %.0f", len(a.plan), solution.Cost)
	}
	if len(a.plan) == 0 {
		return maze.Stop, metric
	}
	action := a.plan[0]
	a.plan = a.plan[1:]
	return action, metric
}

// RandomGhost moves uniformly at random among its legal actions, the
// adversary expectimax assumes.
type RandomGhost struct {
	rng *rand.Rand
}

func NewRandomGhost(seed uint64) *RandomGhost {
	return &RandomGhost{rng: rand.New(rand.NewSource(seed))}
}

func (g *RandomGhost) FindMove(state *maze.State, agent int) (maze.Direction, metrics.SearchMetric) {
	actions := state.LegalActions(agent)
	return actions[g.rng.Intn(len(actions))], metrics.SearchMetric{Label: "random"}
}
