package metrics

import (
	"sync"

	"github.com/microshop/payment-service/internal/port/output"
)

// Counters is a named counter registry implementing the MetricsSink output
// port. Safe for concurrent increments.
type Counters struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewCounters creates an empty counter registry
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int64)}
}

var _ output.MetricsSink = (*Counters)(nil)

// Inc increments the named counter by one
func (c *Counters) Inc(name string) {
	c.mu.Lock()
	c.counts[name]++
	c.mu.Unlock()
}

// Value returns the current value of the named counter
func (c *Counters) Value(name string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[name]
}

// Snapshot returns a copy of all counters
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
