package searcher

import (
	"time"
)

// SearchMetrics describes one completed Search call.
type SearchMetrics struct {
	Duration     time.Duration
	Iterations   int64
	RolloutMoves int64
	TreeSize     int
}

// MetricsCollector observes a Search. The engine drives it from the
// search goroutine only, so implementations need no locking.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddRolloutMoves(count int)
	SetTreeSize(size int)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	iterations   int64
	rolloutMoves int64
	treeSize     int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start opens a new collection window, discarding prior counts.
func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddRolloutMoves(count int) {
	m.rolloutMoves += int64(count)
}

func (m *metricsCollector) SetTreeSize(size int) {
	m.treeSize = size
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		RolloutMoves: m.rolloutMoves,
		TreeSize:     m.treeSize,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddIteration()           {}
func (noMetricsCollector) AddRolloutMoves(int)     {}
func (noMetricsCollector) SetTreeSize(int)         {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
