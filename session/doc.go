// Package session persists the portal session state in Redis as a flat
// key-value mapping.
//
// # Key layout
//
// Four keys under a configurable prefix, matching the portal's persisted
// session contract:
//
//	<prefix>:token             — current bearer token
//	<prefix>:loggedInUserEmail — email submitted at login
//	<prefix>:loggedInUserRole  — role claim resolved from the directory
//	<prefix>:loggedInDoctorId  — matched directory record id
//
// # Write ordering
//
// Within one login, the partial write (token + email) always precedes the
// authorized overwrite (token + role + id). The store is a single-writer
// resource: concurrent logins are not guarded and the last write wins.
//
// # What this package must NOT do
//
//   - Interpret token contents.
//   - Import goPortalAuth or any sibling package.
package session
