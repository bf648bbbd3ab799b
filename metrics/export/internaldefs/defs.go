package internaldefs

import (
	goPortalAuth "github.com/MrEthical07/goPortalAuth"
)

// CounterDef defines a public type used by goPortalAuth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goPortalAuth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goPortalAuth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goPortalAuth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the portal bootstrap engine.
var CounterDefs = []CounterDef{
	{ID: goPortalAuth.MetricLoginSuccess, Name: "goportalauth_login_success_total", Help: "Successful login bootstraps."},
	{ID: goPortalAuth.MetricLoginFailure, Name: "goportalauth_login_failure_total", Help: "Failed login bootstraps."},
	{ID: goPortalAuth.MetricLoginRateLimited, Name: "goportalauth_login_rate_limited_total", Help: "Rate-limited login attempts."},
	{ID: goPortalAuth.MetricLoginSilentNoMatch, Name: "goportalauth_login_silent_no_match_total", Help: "Logins that found no directory record and stopped silently."},
	{ID: goPortalAuth.MetricLoginInactive, Name: "goportalauth_login_inactive_total", Help: "Logins blocked on inactive accounts."},
	{ID: goPortalAuth.MetricDirectoryUnavailable, Name: "goportalauth_directory_unavailable_total", Help: "Directory fetch failures."},
	{ID: goPortalAuth.MetricTokenDecodeFailure, Name: "goportalauth_token_decode_failure_total", Help: "Bearer tokens rejected as malformed."},
	{ID: goPortalAuth.MetricTokenReissued, Name: "goportalauth_token_reissued_total", Help: "Bearer tokens re-signed with the directory role."},
	{ID: goPortalAuth.MetricSessionPartialWrite, Name: "goportalauth_session_partial_write_total", Help: "Partial session writes before directory verification."},
	{ID: goPortalAuth.MetricSessionAuthorizedWrite, Name: "goportalauth_session_authorized_write_total", Help: "Authorized session writes after verification."},
	{ID: goPortalAuth.MetricSessionCleared, Name: "goportalauth_session_cleared_total", Help: "Session clear operations."},
	{ID: goPortalAuth.MetricRecoveryRequest, Name: "goportalauth_recovery_request_total", Help: "Password recovery requests."},
	{ID: goPortalAuth.MetricRecoveryMismatch, Name: "goportalauth_recovery_mismatch_total", Help: "Recovery challenges that matched no directory record."},
	{ID: goPortalAuth.MetricRecoveryRateLimited, Name: "goportalauth_recovery_rate_limited_total", Help: "Rate-limited recovery attempts."},
	{ID: goPortalAuth.MetricRecoveryDispatched, Name: "goportalauth_recovery_dispatched_total", Help: "Recovery notifications handed to the dispatcher."},
	{ID: goPortalAuth.MetricDispatchFailure, Name: "goportalauth_dispatch_failure_total", Help: "Notification deliveries that failed."},
	{ID: goPortalAuth.MetricRegistrationSuccess, Name: "goportalauth_registration_success_total", Help: "Successful registrations."},
	{ID: goPortalAuth.MetricRegistrationConflict, Name: "goportalauth_registration_conflict_total", Help: "Registrations rejected for an existing account."},
	{ID: goPortalAuth.MetricRegistrationValidation, Name: "goportalauth_registration_validation_total", Help: "Registrations rejected by validation."},
}

// HistogramDefs is an exported constant or variable used by the portal bootstrap engine.
var HistogramDefs = []HistogramDef{
	{ID: goPortalAuth.MetricLoginLatency, Name: "goportalauth_login_latency_seconds", Help: "Login bootstrap latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the portal bootstrap engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the portal bootstrap engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
