package goPortalAuth

import (
	"time"

	"github.com/MrEthical07/goPortalAuth/authapi"
	"github.com/MrEthical07/goPortalAuth/directory"
	internalaudit "github.com/MrEthical07/goPortalAuth/internal/audit"
	internalmetrics "github.com/MrEthical07/goPortalAuth/internal/metrics"
	"github.com/MrEthical07/goPortalAuth/internal/rate"
	"github.com/MrEthical07/goPortalAuth/notify"
	"github.com/MrEthical07/goPortalAuth/session"
	"github.com/MrEthical07/goPortalAuth/token"
)

// Engine defines a public type used by goPortalAuth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config Config

	api       *authapi.Client
	directory *directory.Client
	codec     *token.Codec
	sessions  *session.Store

	loginLimiter    *rate.Limiter
	recoveryLimiter *rate.Limiter

	audit    *internalaudit.Dispatcher
	metrics  *internalmetrics.Metrics
	notifier *notify.AsyncDispatcher
}

// Close describes the close operation and its observable behavior.
//
// Close drains the audit and notification queues before returning.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.notifier != nil {
		e.notifier.Close()
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// NotifyDropped describes the notifydropped operation and its observable behavior.
//
// NotifyDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) NotifyDropped() uint64 {
	if e == nil || e.notifier == nil {
		return 0
	}
	return e.notifier.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) observeLatency(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}
