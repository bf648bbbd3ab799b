// Package authapi talks to the portal's authentication endpoints: credential
// submission and account registration.
//
// # Error mapping
//
// Login maps HTTP 400 to [ErrInvalidCredentials] and every other non-success
// to [ErrService]. Register maps a 400 body containing "Account already
// exists" to [ErrConflict], any other 400 to [ErrValidation] wrapping the
// verbatim body, and any other non-success to [ErrService]. Nothing here
// retries; every retry is a caller resubmission.
//
// # What this package must NOT do
//
//   - Persist or log credentials.
//   - Import goPortalAuth or any sibling package.
package authapi
