// Package telemetry provides minimal structured counter/histogram
// emission for spellguard's core operations, trimmed from the fuller
// schema-validated metrics system this stack otherwise uses: a query
// path that must stay wait-free (spec §5) cannot afford to validate
// every emitted event against a JSON Schema, so this package drops that
// layer and keeps only the emission interface and a default no-op
// implementation.
package telemetry

import (
	"sync"
	"sync/atomic"
	"time"
)

// Emitter is the interface a host application can implement to route
// spellguard's counters and histograms into its own metrics system
// (Prometheus, StatsD, OpenTelemetry, ...).
type Emitter interface {
	Counter(name string, value float64, tags map[string]string)
	Histogram(name string, d time.Duration, tags map[string]string)
}

var (
	mu      sync.RWMutex
	emitter Emitter // nil means disabled; all emission calls are no-ops
)

// SetGlobalEmitter installs the process-wide telemetry sink. Passing nil
// disables emission. Safe to call concurrently with EmitCounter/
// EmitHistogram.
func SetGlobalEmitter(e Emitter) {
	mu.Lock()
	defer mu.Unlock()
	emitter = e
}

// EmitCounter increments a named counter by value, tagged with the
// given key/value pairs. No-op when no emitter is installed.
func EmitCounter(name string, value float64, tags map[string]string) {
	mu.RLock()
	e := emitter
	mu.RUnlock()
	if e == nil {
		return
	}
	e.Counter(name, value, tags)
}

// EmitHistogram records a duration sample under name. No-op when no
// emitter is installed.
func EmitHistogram(name string, d time.Duration, tags map[string]string) {
	mu.RLock()
	e := emitter
	mu.RUnlock()
	if e == nil {
		return
	}
	e.Histogram(name, d, tags)
}

// CountingEmitter is a dependency-free Emitter that keeps running totals
// in memory, useful for tests and for small deployments that want basic
// counters without wiring an external metrics backend.
type CountingEmitter struct {
	counters sync.Map // name -> *int64 (tag-less aggregate)
}

// NewCountingEmitter returns a ready-to-use in-memory Emitter.
func NewCountingEmitter() *CountingEmitter {
	return &CountingEmitter{}
}

func (c *CountingEmitter) Counter(name string, value float64, _ map[string]string) {
	v, _ := c.counters.LoadOrStore(name, new(int64))
	atomic.AddInt64(v.(*int64), int64(value))
}

func (c *CountingEmitter) Histogram(name string, d time.Duration, tags map[string]string) {
	// Aggregated as a counter of total milliseconds; a real backend
	// would bucket this, but spellguard only needs to prove the
	// instrumentation point exists and is cheap.
	c.Counter(name+"_ms_total", float64(d.Milliseconds()), tags)
}

// Value returns the current aggregate for name (0 if never emitted).
func (c *CountingEmitter) Value(name string) int64 {
	v, ok := c.counters.Load(name)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(v.(*int64))
}
