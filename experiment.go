package main

import (
	"pacman/config"
	"pacman/experiments"
	"pacman/experiments/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the search and adversarial experiments of a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		skipSearch, _ := cmd.Flags().GetBool("skip-search")
		skipGames, _ := cmd.Flags().GetBool("skip-games")

		cfg := config.Default()
		if path != "" {
			var err error
			if cfg, err = config.Load(path); err != nil {
				return err
			}
		}

		reg := prometheus.NewRegistry()
		registry, err := metrics.NewRegistry(reg)
		if err != nil {
			return err
		}
		collector := registry.Collector()

		if !skipSearch {
			writer, err := metrics.NewWriter(cfg.Output, "search")
			if err != nil {
				return err
			}
			if _, err := experiments.RunSearchExperiment(cfg.Search, experiments.WithWriter(writer), experiments.WithCollector(collector)); err != nil {
				return err
			}
		}

		if !skipGames {
			writer, err := metrics.NewWriter(cfg.Output, "adversarial")
			if err != nil {
				return err
			}
			records, err := experiments.RunAdversarialExperiment(cfg.Adversarial, experiments.WithWriter(writer), experiments.WithCollector(collector))
			if err != nil {
				return err
			}
			for id, summary := range experiments.Summarize(records) {
				agent := cfg.Adversarial.Agents[id-1]
				log.Info().Msgf("agent %d (%s depth %d): won %d of %d, mean score %.1f",
					id, agent.Variant, agent.Depth, summary.Wins, summary.Games, summary.MeanScore())
			}
		}

		return logTotals(reg)
	},
}

// logTotals logs the summed value of every registered counter.
func logTotals(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			label := ""
			for _, pair := range metric.GetLabel() {
				label = pair.GetValue()
			}
			log.Info().Msgf("%s{%s} = %.0f", family.GetName(), label, metric.GetCounter().GetValue())
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(experimentCmd)

	experimentCmd.Flags().StringP("config", "c", "", "YAML experiment config, defaults are used when empty")
	experimentCmd.Flags().Bool("skip-search", false, "Skip the graph search experiment")
	experimentCmd.Flags().Bool("skip-games", false, "Skip the adversarial experiment")
}
