// Package rate provides the local token-bucket throttles that guard
// user-triggered resubmission paths (login, recovery).
//
// # Window semantics
//
// One [golang.org/x/time/rate.Limiter] per identifier, created on first use.
// This is a purely local throttle: the bootstrap runs client-side and only
// needs to pace its own resubmissions, so no shared counter store is
// involved.
//
// # What this package must NOT do
//
//   - Implement domain-specific policies (those live in the engine config).
//   - Be imported outside the goPortalAuth module.
package rate
