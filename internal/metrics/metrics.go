package metrics

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a counter or histogram slot.
type MetricID uint16

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricLoginRateLimited
	MetricLoginSilentNoMatch
	MetricLoginInactive
	MetricDirectoryUnavailable
	MetricTokenDecodeFailure
	MetricTokenReissued
	MetricSessionPartialWrite
	MetricSessionAuthorizedWrite
	MetricSessionCleared
	MetricRecoveryRequest
	MetricRecoveryMismatch
	MetricRecoveryRateLimited
	MetricRecoveryDispatched
	MetricDispatchFailure
	MetricRegistrationSuccess
	MetricRegistrationConflict
	MetricRegistrationValidation
	MetricLoginLatency

	MetricIDCount
)

// HistogramBuckets is the number of fixed latency buckets.
const HistogramBuckets = 8

// bucketBounds are the upper bounds of the first seven buckets; the eighth
// is +Inf.
var bucketBounds = [HistogramBuckets - 1]time.Duration{
	5 * time.Millisecond,
	10 * time.Millisecond,
	25 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
}

// BucketBoundsMillis exposes the bucket upper bounds for exporters.
func BucketBoundsMillis() [HistogramBuckets - 1]int64 {
	var out [HistogramBuckets - 1]int64
	for i, b := range bucketBounds {
		out[i] = b.Milliseconds()
	}
	return out
}

// Config controls metric collection.
type Config struct {
	Enabled       bool
	EnableLatency bool
}

// paddedCounter occupies a full cache line to avoid false sharing between
// adjacent slots.
type paddedCounter struct {
	value uint64
	_     [56]byte
}

type histogram struct {
	buckets [HistogramBuckets]uint64
}

func (h *histogram) observe(d time.Duration) {
	for i, bound := range bucketBounds {
		if d <= bound {
			atomic.AddUint64(&h.buckets[i], 1)
			return
		}
	}
	atomic.AddUint64(&h.buckets[HistogramBuckets-1], 1)
}

// Metrics holds atomic counters and optional latency histograms. The zero
// value is unusable; construct with [New]. All methods are safe for
// concurrent use and are no-ops when collection is disabled.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [MetricIDCount]paddedCounter
	histograms    [MetricIDCount]*histogram
}

// New creates a Metrics instance. When cfg.Enabled is false every operation
// is a no-op.
func New(cfg Config) *Metrics {
	m := &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatency,
	}
	if m.enableLatency {
		m.histograms[MetricLoginLatency] = &histogram{}
	}
	return m
}

// Inc increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a latency sample for id. No-op unless latency histograms
// are enabled and id has a histogram slot.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enableLatency || id >= MetricIDCount {
		return
	}
	h := m.histograms[id]
	if h == nil {
		return
	}
	h.observe(d)
}

// Snapshot is a point-in-time deep copy of all metrics. Counters holds only
// nonzero counters; Histograms maps each active histogram to its 8 bucket
// counts.
type Snapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// Snapshot copies the current metric values. Reads are atomic per slot but
// not mutually consistent across slots, which is acceptable for export.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters:   map[MetricID]uint64{},
		Histograms: map[MetricID][]uint64{},
	}
	if m == nil || !m.enabled {
		return snap
	}

	for id := MetricID(0); id < MetricIDCount; id++ {
		if v := atomic.LoadUint64(&m.counters[id].value); v > 0 {
			snap.Counters[id] = v
		}
		if h := m.histograms[id]; h != nil {
			buckets := make([]uint64, HistogramBuckets)
			for i := range h.buckets {
				buckets[i] = atomic.LoadUint64(&h.buckets[i])
			}
			snap.Histograms[id] = buckets
		}
	}
	return snap
}
