// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for buffer benchmarks and counters.
// Exposes values in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Metrics = (*MetricsRegistry)(nil)

// MetricsRegistry holds named measurements.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments an integer counter, creating it at zero.
// A key holding a non-integer value is overwritten.
func (mr *MetricsRegistry) Add(key string, delta int64) int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	cur, _ := mr.metrics[key].(int64)
	cur += delta
	mr.metrics[key] = cur
	mr.updated = time.Now()
	return cur
}

// ObserveRun records total time, op count and ns/op under prefix.
func (mr *MetricsRegistry) ObserveRun(prefix string, elapsed time.Duration, ops int) {
	var perOp float64
	if ops > 0 {
		perOp = float64(elapsed.Nanoseconds()) / float64(ops)
	}
	mr.mu.Lock()
	mr.metrics[prefix+".elapsed"] = elapsed
	mr.metrics[prefix+".ops"] = ops
	mr.metrics[prefix+".ns_per_op"] = perOp
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated reports when a metric last changed; zero if never.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
