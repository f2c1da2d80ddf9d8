package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int
	Expanded    int
	Terminal    int
	MaxDepth    int
	DeadlineHit bool
}

type MetricsCollector interface {
	Start()
	AddExpanded()
	AddTerminal()
	DeadlineHit()
	Complete(tree *Tree) SearchMetrics
}

type metricsCollector struct {
	startTime   time.Time
	expanded    int
	terminal    int
	deadlineHit bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddExpanded() {
	m.expanded++
}

func (m *metricsCollector) AddTerminal() {
	m.terminal++
}

func (m *metricsCollector) DeadlineHit() {
	m.deadlineHit = true
}

func (m *metricsCollector) Complete(tree *Tree) SearchMetrics {
	return SearchMetrics{
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       tree.Len(),
		Expanded:    m.expanded,
		Terminal:    m.terminal,
		MaxDepth:    tree.MaxDepth(),
		DeadlineHit: m.deadlineHit,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                            {}
func (m *noMetricsCollector) AddExpanded()                      {}
func (m *noMetricsCollector) AddTerminal()                      {}
func (m *noMetricsCollector) DeadlineHit()                      {}
func (m *noMetricsCollector) Complete(tree *Tree) SearchMetrics { return SearchMetrics{} }
