package goPortalAuth

import (
	internalmetrics "github.com/MrEthical07/goPortalAuth/internal/metrics"
)

// MetricID defines a public type used by goPortalAuth APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLoginRateLimited is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginRateLimited = internalmetrics.MetricLoginRateLimited
	// MetricLoginSilentNoMatch is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginSilentNoMatch = internalmetrics.MetricLoginSilentNoMatch
	// MetricLoginInactive is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginInactive = internalmetrics.MetricLoginInactive
	// MetricDirectoryUnavailable is an exported constant or variable used by the portal bootstrap engine.
	MetricDirectoryUnavailable = internalmetrics.MetricDirectoryUnavailable
	// MetricTokenDecodeFailure is an exported constant or variable used by the portal bootstrap engine.
	MetricTokenDecodeFailure = internalmetrics.MetricTokenDecodeFailure
	// MetricTokenReissued is an exported constant or variable used by the portal bootstrap engine.
	MetricTokenReissued = internalmetrics.MetricTokenReissued
	// MetricSessionPartialWrite is an exported constant or variable used by the portal bootstrap engine.
	MetricSessionPartialWrite = internalmetrics.MetricSessionPartialWrite
	// MetricSessionAuthorizedWrite is an exported constant or variable used by the portal bootstrap engine.
	MetricSessionAuthorizedWrite = internalmetrics.MetricSessionAuthorizedWrite
	// MetricSessionCleared is an exported constant or variable used by the portal bootstrap engine.
	MetricSessionCleared = internalmetrics.MetricSessionCleared
	// MetricRecoveryRequest is an exported constant or variable used by the portal bootstrap engine.
	MetricRecoveryRequest = internalmetrics.MetricRecoveryRequest
	// MetricRecoveryMismatch is an exported constant or variable used by the portal bootstrap engine.
	MetricRecoveryMismatch = internalmetrics.MetricRecoveryMismatch
	// MetricRecoveryRateLimited is an exported constant or variable used by the portal bootstrap engine.
	MetricRecoveryRateLimited = internalmetrics.MetricRecoveryRateLimited
	// MetricRecoveryDispatched is an exported constant or variable used by the portal bootstrap engine.
	MetricRecoveryDispatched = internalmetrics.MetricRecoveryDispatched
	// MetricDispatchFailure is an exported constant or variable used by the portal bootstrap engine.
	MetricDispatchFailure = internalmetrics.MetricDispatchFailure
	// MetricRegistrationSuccess is an exported constant or variable used by the portal bootstrap engine.
	MetricRegistrationSuccess = internalmetrics.MetricRegistrationSuccess
	// MetricRegistrationConflict is an exported constant or variable used by the portal bootstrap engine.
	MetricRegistrationConflict = internalmetrics.MetricRegistrationConflict
	// MetricRegistrationValidation is an exported constant or variable used by the portal bootstrap engine.
	MetricRegistrationValidation = internalmetrics.MetricRegistrationValidation
	// MetricLoginLatency is an exported constant or variable used by the portal bootstrap engine.
	MetricLoginLatency = internalmetrics.MetricLoginLatency
)

// Metrics defines a public type used by goPortalAuth APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot defines a public type used by goPortalAuth APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
