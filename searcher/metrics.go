package searcher

import (
	"sync/atomic"
	"time"
)

// Metrics summarizes one search: how many candidate turns were generated,
// how many leaf evaluations ran, and how long it all took.
type Metrics struct {
	Turns       int64
	Evaluations int64
	Duration    time.Duration
}

// collector gathers metrics with atomics so parallel branches can report
// without coordination.
type collector struct {
	startTime   time.Time
	turns       atomic.Int64
	evaluations atomic.Int64
}

func newCollector() *collector {
	return &collector{startTime: time.Now()}
}

func (c *collector) addTurn() {
	c.turns.Add(1)
}

func (c *collector) addEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) complete() Metrics {
	return Metrics{
		Turns:       c.turns.Load(),
		Evaluations: c.evaluations.Load(),
		Duration:    time.Since(c.startTime),
	}
}
