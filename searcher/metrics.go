package searcher

import (
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Iterations   int
	FullPlayouts int // Rollouts that did not start on a known terminal node
	TreeSize     int
}

type Collector interface {
	Start()
	AddIteration()
	AddFullPlayout()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	startTime    time.Time
	iterations   int
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.fullPlayouts = 0
}

func (m *collector) AddIteration() {
	m.iterations++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		FullPlayouts: m.fullPlayouts,
		TreeSize:     treeSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                             {}
func (m *dummyCollector) AddIteration()                      {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{TreeSize: treeSize} }
