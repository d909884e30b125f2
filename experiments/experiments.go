package experiments

import (
	"fmt"

	"pacman/config"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/maze"
	"pacman/search"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(*settings)

type settings struct {
	writer    *metrics.Writer
	collector metrics.Collector
}

// WithWriter stores the experiment records as CSV files.
func WithWriter(writer *metrics.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// WithCollector replaces the default counting collector, e.g. with one
// that also exports Prometheus counters.
func WithCollector(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.collector = collector
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{collector: metrics.NewCollector()}
	for _, option := range options {
		option(&s)
	}
	return s
}

// RunSearchExperiment solves every layout with every strategy. A layout
// with a single food is a path finding problem, any other layout asks for
// all of its food to be eaten.
func RunSearchExperiment(cfg config.SearchExperiment, options ...Option) ([]metrics.SearchRecord, error) {
	s := newSettings(options)
	records := []metrics.SearchRecord{}

	log.Info().Msgf("starting search experiment with %d layouts and %d strategies...", len(cfg.Layouts), len(cfg.Strategies))

	for _, name := range cfg.Layouts {
		layout, err := maze.LoadLayout(name)
		if err != nil {
			return nil, err
		}
		for _, strategy := range cfg.Strategies {
			kind, err := search.ParseKind(strategy)
			if err != nil {
				return nil, err
			}

			record := Solve(layout, kind, s.collector)
			records = append(records, record)

			log.Info().Msgf("%s on %s: found=%t cost=%.0f expansions=%d", kind, name, record.Found, record.Cost, record.Expansions)
		}
	}

	log.Info().Msg("completed search experiment")

	if s.writer != nil {
		if err := s.writer.WriteSearchRecords(records); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored search records in %s", s.writer.Dir())
	}
	return records, nil
}

// Solve runs one graph search on layout.
func Solve(layout *maze.Layout, kind search.Kind, collector metrics.Collector) metrics.SearchRecord {
	state := maze.NewState(layout)
	if len(layout.Food) == 1 {
		problem := maze.NewPositionProblem(layout, layout.PacmanStart, layout.Food[0], nil)
		return solve[game.Position](layout.Name, problem, kind, maze.ManhattanHeuristic(problem.Goal()), collector)
	}
	return solve[maze.FoodState](layout.Name, maze.NewFoodProblem(state), kind, maze.FoodHeuristic, collector)
}

func solve[S comparable](layout string, problem search.Problem[S, maze.Direction], kind search.Kind, heuristic search.Heuristic[S, maze.Direction], collector metrics.Collector) metrics.SearchRecord {
	strategy, err := search.NewStrategy(kind, heuristic)
	if err != nil {
		panic(fmt.Sprintf("unexpected strategy kind %d", int(kind)))
	}
	solution, found := search.NewGraph(strategy, search.WithMetrics(collector)).Solve(problem)
	return metrics.SearchRecord{
		Layout:       layout,
		Found:        found,
		Cost:         solution.Cost,
		Length:       len(solution.Actions),
		SearchMetric: solution.Metric,
	}
}

// RunAdversarialExperiment plays every configured agent against random
// ghosts on every layout. Game i of every agent uses the same ghost seeds.
func RunAdversarialExperiment(cfg config.AdversarialExperiment, options ...Option) ([]metrics.GameRecord, error) {
	s := newSettings(options)
	configs := make([]metrics.AgentConfig, len(cfg.Agents))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting adversarial experiment with %d agents...", len(cfg.Agents))

	count := 0
	for ai, agent := range cfg.Agents {
		variant, err := searcher.ParseVariant(agent.Variant)
		if err != nil {
			return nil, err
		}
		configs[ai] = metrics.AgentConfig{ID: ai + 1, Variant: variant.String(), Depth: agent.Depth, Evaluation: agent.Evaluation}
		adversary := searcher.NewSearcher(variant, cfg.Evaluation(agent), searcher.WithDepth(agent.Depth), searcher.WithMetrics(s.collector))

		for _, name := range cfg.Layouts {
			layout, err := maze.LoadLayout(name)
			if err != nil {
				return nil, err
			}
			for i := 0; i < cfg.Games; i++ {
				log.Info().Msgf("starting agent %d of %d (%s depth %d) on %s game %d of %d...", ai+1, len(cfg.Agents), variant, agent.Depth, name, i+1, cfg.Games)

				count++
				gameMetric, moveMetrics := playGame(layout, adversary, cfg.Seed+uint64(i), cfg.MaxMoves)
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent:      ai + 1,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed game %d with win=%t score=%.0f", count, gameMetric.Win, gameMetric.Score)
			}
		}
	}

	log.Info().Msg("completed adversarial experiment")

	if s.writer != nil {
		if err := s.writer.WriteAgentConfigs(configs); err != nil {
			return nil, err
		}
		if err := s.writer.WriteGameRecords(gameRecords); err != nil {
			return nil, err
		}
		if err := s.writer.WriteMoveRecords(moveRecords); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored game and move records in %s", s.writer.Dir())
	}
	return gameRecords, nil
}

// playGame runs a single game of the searcher against random ghosts
// seeded from seed.
func playGame(layout *maze.Layout, s *searcher.Searcher[maze.Direction], seed uint64, maxMoves int) (metrics.GameMetric, []metrics.MoveMetric) {
	state := maze.NewState(layout)
	agents := []engine.Agent{engine.NewSearchAgent(s)}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, engine.NewRandomGhost(seed*uint64(state.NumAgents())+uint64(i)))
	}
	return engine.NewLocal(state, agents, engine.WithMaxMoves(maxMoves)).Run()
}

// Summarize reports the share of games won and the mean score per agent.
func Summarize(records []metrics.GameRecord) map[int]Summary {
	summaries := map[int]Summary{}
	for _, record := range records {
		summary := summaries[record.Agent]
		summary.Games++
		if record.Win {
			summary.Wins++
		}
		summary.TotalScore += record.Score
		summaries[record.Agent] = summary
	}
	return summaries
}

type Summary struct {
	Games      int
	Wins       int
	TotalScore float64
}

func (s Summary) MeanScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.TotalScore / float64(s.Games)
}
