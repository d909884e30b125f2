package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counters shared by every collector created from the same Registry.
type Registry struct {
	expansions *prometheus.CounterVec
	visits     *prometheus.CounterVec
	searches   *prometheus.CounterVec
}

// NewRegistry registers the search counters with reg.
func NewRegistry(reg prometheus.Registerer) (*Registry, error) {
	r := &Registry{
		expansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacman_search_expansions_total",
			Help: "Total number of states expanded by graph search",
		}, []string{"label"}),
		visits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacman_search_visits_total",
			Help: "Total number of states visited by adversarial search",
		}, []string{"label"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacman_searches_total",
			Help: "Total number of completed searches",
		}, []string{"label"}),
	}
	for _, c := range []prometheus.Collector{r.expansions, r.visits, r.searches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Collector returns a collector that forwards to the registry counters
// while also keeping its own per-search tallies.
func (r *Registry) Collector() Collector {
	return &promCollector{registry: r}
}

type promCollector struct {
	collector
	registry *Registry
}

func (m *promCollector) AddExpansion() {
	m.collector.AddExpansion()
	m.registry.expansions.WithLabelValues(m.label).Inc()
}

func (m *promCollector) AddVisit() {
	m.collector.AddVisit()
	m.registry.visits.WithLabelValues(m.label).Inc()
}

func (m *promCollector) Complete() SearchMetric {
	m.registry.searches.WithLabelValues(m.label).Inc()
	return m.collector.Complete()
}
