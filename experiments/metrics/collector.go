package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Label      string // Strategy or variant name
	Duration   time.Duration
	Expansions int // States whose successors were generated
	Visits     int // States entered by the adversarial recursion
}

type MoveMetric struct {
	Step  int
	Agent int // Agent index
	SearchMetric
}

type GameMetric struct {
	Layout    string
	Win       bool
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Moves     int
}

type Collector interface {
	Start(label string)
	AddExpansion()
	AddVisit()
	Complete() SearchMetric
}

type collector struct {
	label      string
	startTime  time.Time
	expansions atomic.Int64
	visits     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(label string) {
	m.label = label
	m.startTime = time.Now()
	m.expansions.Store(0)
	m.visits.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddVisit() {
	m.visits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Label:      m.label,
		Duration:   time.Since(m.startTime),
		Expansions: int(m.expansions.Load()),
		Visits:     int(m.visits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(label string)     {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddVisit()              {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
