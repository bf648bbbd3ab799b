// Package audit provides the structured audit event model and asynchronous
// dispatch machinery for the bootstrap engine.
//
// # Delivery guarantees
//
// Events are forwarded to a single [Sink] by one dispatcher goroutine. With
// DropIfFull the engine never blocks on a slow sink; dropped events are
// counted and reported through the root API. Close drains whatever is queued.
//
// # What this package must NOT do
//
//   - Perform network I/O itself; sinks own transport.
//   - Import the root goPortalAuth package.
package audit
