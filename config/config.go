package config

import (
	"fmt"
	"os"

	"pacman/game"
	"pacman/maze"
	"pacman/search"
	"pacman/searcher"

	"gopkg.in/yaml.v3"
)

const (
	EvaluationScore    = "score"
	EvaluationWeighted = "weighted"
)

// Config describes a batch of experiments.
type Config struct {
	Output      string                `yaml:"output"` // Directory results are written under
	Search      SearchExperiment      `yaml:"search"`
	Adversarial AdversarialExperiment `yaml:"adversarial"`
}

// SearchExperiment solves every layout with every strategy.
type SearchExperiment struct {
	Layouts    []string `yaml:"layouts"`
	Strategies []string `yaml:"strategies"`
}

// AdversarialExperiment plays Games games per agent and layout against
// random ghosts.
type AdversarialExperiment struct {
	Layouts  []string     `yaml:"layouts"`
	Agents   []Agent      `yaml:"agents"`
	Games    int          `yaml:"games"`
	MaxMoves int          `yaml:"max_moves"`
	Seed     uint64       `yaml:"seed"`
	Weights  game.Weights `yaml:"weights"`
}

type Agent struct {
	Variant    string `yaml:"variant"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
}

func Default() *Config {
	return &Config{
		Output: "results",
		Search: SearchExperiment{
			Layouts:    []string{"tinyMaze", "smallMaze", "tinyFood"},
			Strategies: []string{"dfs", "bfs", "ucs", "astar"},
		},
		Adversarial: AdversarialExperiment{
			Layouts: []string{"smallGame"},
			Agents: []Agent{
				{Variant: "minimax", Depth: 2, Evaluation: EvaluationWeighted},
				{Variant: "alphabeta", Depth: 2, Evaluation: EvaluationWeighted},
				{Variant: "expectimax", Depth: 2, Evaluation: EvaluationWeighted},
			},
			Games:    5,
			MaxMoves: 500,
			Seed:     1,
			Weights:  game.DefaultWeights,
		},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every name in the config resolves.
func (c *Config) Validate() error {
	for _, name := range append(append([]string{}, c.Search.Layouts...), c.Adversarial.Layouts...) {
		if _, err := maze.LoadLayout(name); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	for _, name := range c.Search.Strategies {
		if _, err := search.ParseKind(name); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	for _, agent := range c.Adversarial.Agents {
		if _, err := searcher.ParseVariant(agent.Variant); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if agent.Depth < 0 {
			return fmt.Errorf("invalid config: negative depth %d for %s", agent.Depth, agent.Variant)
		}
		if agent.Evaluation != EvaluationScore && agent.Evaluation != EvaluationWeighted {
			return fmt.Errorf("invalid config: unknown evaluation %q", agent.Evaluation)
		}
	}
	if c.Adversarial.Games <= 0 {
		return fmt.Errorf("invalid config: games must be positive, got %d", c.Adversarial.Games)
	}
	if c.Adversarial.MaxMoves <= 0 {
		return fmt.Errorf("invalid config: max_moves must be positive, got %d", c.Adversarial.MaxMoves)
	}
	return nil
}

// Evaluation returns the evaluation function the agent scores states with.
func (c *AdversarialExperiment) Evaluation(agent Agent) game.Evaluate[maze.Direction] {
	if agent.Evaluation == EvaluationWeighted {
		return game.NewWeightedEvaluation[maze.Direction](c.Weights)
	}
	return game.EvaluateScore[maze.Direction]
}
