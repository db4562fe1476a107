package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Depth     int
	Duration  time.Duration
	Nodes     int // Nodes whose children were examined
	Leaves    int // Leaf evaluations
	Cutoffs   int // Sibling subtrees skipped by pruning
	Value     float64
}

type MoveMetric struct {
	Step  int
	Agent int // Agent index
	Move  string
	Hash  uint64 // Hash of the state the move was chosen in
	SearchMetric
}

type GameMetric struct {
	Layout    string
	Win       bool
	Lose      bool
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start() {}
func (m *dummyCollector) AddNode() {}
func (m *dummyCollector) AddLeaf() {}
func (m *dummyCollector) AddCutoff() {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
