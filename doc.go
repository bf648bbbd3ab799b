// Package goPortalAuth is the server-side rendition of a hospital portal's
// authentication bootstrap: credential submission, directory-backed account
// verification, client-style bearer token re-signing, Redis-backed session
// persistence, role-based route resolution, magic-word password recovery,
// and registration.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goPortalAuth is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (LoginResult, SessionState, MetricsSnapshot,
// etc.). Flow orchestration, rate limiting, audit dispatch, and metric
// collection live under internal/ and are never exported. The wire-facing
// pieces — portal API client, directory client, token codec, session store,
// notification dispatch — live in their own sub-packages so they can be used
// standalone.
//
// # Fidelity contract
//
// The bootstrap reproduces the portal frontend it replaces, including its
// rough edges: the partial session write lands before directory
// verification, a missing directory record is a silent no-op unless
// StrictMatch is set, and the recovery flow mails the stored password as-is.
// Changing any of these changes observable behavior that downstream portal
// pages depend on.
package goPortalAuth
