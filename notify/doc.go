// Package notify defines the out-of-band notification contract used by the
// recovery and registration flows, plus an EmailJS-compatible dispatcher.
//
// # Delivery model
//
// Flows dispatch through [AsyncDispatcher]: fire-and-forget with an observable
// completion callback. Dispatch outcome never feeds back into flow decisions;
// a failed send is reported but not retried.
//
// # Compatibility contract
//
// The recovery template carries the matched directory record's stored
// plaintext password. That is the contract the portal's mail templates
// expect; a reset-token flow would be a template change, not a silent swap.
//
// # What this package must NOT do
//
//   - Block a flow on delivery.
//   - Import goPortalAuth or any sibling package.
package notify
