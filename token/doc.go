// Package token encodes and decodes the three-segment bearer tokens exchanged
// with the portal authentication endpoint.
//
// # Compatibility contract
//
// The codec reproduces the portal client's observable token handling exactly.
// Decode reads the second segment as unpadded URL-safe base64 (the alphabet the
// issuing endpoint emits) and never verifies the signature. Encode re-signs
// locally with HMAC-SHA256 over a shared secret and emits padded
// standard-alphabet base64 for all three segments. The two alphabets do not
// agree: a re-encoded token whose payload segment contains '+', '/', or '='
// cannot be decoded again. Callers that need round-trip stability must keep
// the original issued token.
//
// # What this package must NOT do
//
//   - Verify signatures or expiry; the token is a claims container here, not
//     a trust boundary.
//   - Import goPortalAuth or any sibling package.
package token
