package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.Start("bfs")
	c.AddExpansion()
	c.AddExpansion()
	c.AddVisit()
	metric := c.Complete()

	require.Equal(t, "bfs", metric.Label)
	require.Equal(t, 2, metric.Expansions)
	require.Equal(t, 1, metric.Visits)

	c.Start("ucs")
	require.Equal(t, SearchMetric{Label: "ucs"}, withoutDuration(c.Complete()), "Start should reset the counts")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()

	c.Start("bfs")
	c.AddExpansion()
	c.AddVisit()

	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry, err := NewRegistry(reg)
	require.NoError(t, err)

	c := registry.Collector()
	c.Start("astar")
	c.AddExpansion()
	c.AddExpansion()
	c.AddExpansion()
	metric := c.Complete()
	c.Start("minimax")
	c.AddVisit()
	c.Complete()

	require.Equal(t, 3, metric.Expansions, "Per-search counts are kept as well")
	require.Equal(t, 3.0, testutil.ToFloat64(registry.expansions.WithLabelValues("astar")))
	require.Equal(t, 1.0, testutil.ToFloat64(registry.visits.WithLabelValues("minimax")))
	require.Equal(t, 1.0, testutil.ToFloat64(registry.searches.WithLabelValues("astar")))
	require.Equal(t, 2, testutil.CollectAndCount(registry.searches))

	_, err = NewRegistry(reg)
	require.Error(t, err, "Counters can only be registered once")
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "search")
	require.NoError(t, err)

	err = w.WriteSearchRecords([]SearchRecord{
		{Layout: "tinyMaze", Found: true, Cost: 8, Length: 8, SearchMetric: SearchMetric{Label: "bfs", Expansions: 15}},
		{Layout: "tinyMaze", Found: true, Cost: 8, Length: 8, SearchMetric: SearchMetric{Label: "astar", Expansions: 14}},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "search_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"layout", "strategy", "found", "cost", "length", "expansions", "duration"}, rows[0])
	require.Equal(t, []string{"tinyMaze", "astar", "true", "8", "8", "14", "0s"}, rows[2])

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Variant: "alphabeta", Depth: 2, Evaluation: "weighted"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 1, GameMetric: GameMetric{
		Layout: "smallGame", Win: true, Score: 1234.5, Moves: 90, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
	}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Agent: 0, SearchMetric: SearchMetric{Label: "alphabeta", Visits: 42}}}}))

	require.Equal(t, []string{"1", "alphabeta", "2", "weighted"}, readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))[1])
	require.Equal(t,
		[]string{"1", "1", "smallGame", "true", "1234.5", "90", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"},
		readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))[1])
	require.Equal(t, []string{"1", "1", "0", "alphabeta", "0s", "0", "42"}, readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func withoutDuration(m SearchMetric) SearchMetric {
	m.Duration = 0
	return m
}
