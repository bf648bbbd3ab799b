// Package directory reads the portal's user directory and performs the
// in-memory lookups that drive login routing and password recovery.
//
// # Fetch semantics
//
// Every call to [Client.FetchAll] re-fetches the full directory; there is no
// caching layer. The reference deployment's directory is small enough that
// this is acceptable, and callers that need caching must add it themselves.
//
// # What this package must NOT do
//
//   - Mutate directory records; the directory service owns them.
//   - Import goPortalAuth or any sibling package.
package directory
