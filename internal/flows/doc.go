// Package flows contains the orchestration logic for the bootstrap
// operations: login, password recovery, and registration.
//
// # Design
//
// Each flow is a pure function over a Deps struct of function fields. The
// engine wires concrete collaborators (endpoint clients, token codec, session
// store, notifier, limiters, metrics, audit) into Deps; the flow owns only
// ordering, classification, and emission. This keeps every branch unit-
// testable without network or Redis.
//
// # What this package must NOT do
//
//   - Hold state between calls.
//   - Be imported outside the goPortalAuth module.
package flows
