package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the open claims mapping carried by a bearer token. Whatever the
// issuing endpoint embeds survives a Decode/Encode cycle untouched except for
// claims the caller sets explicitly.
type Payload = jwt.MapClaims

// ErrMalformed is returned by [Codec.Decode] when the token has fewer than two
// dot-separated segments or the payload segment is not a base64url-encoded
// JSON object.
var ErrMalformed = errors.New("malformed bearer token")

// defaultSecret is the shared signing secret embedded in the portal client.
// It provides no trust guarantee and is kept only for wire compatibility.
const defaultSecret = "Secret"

// Codec encodes and decodes portal bearer tokens.
//
// Codec instances are intended to be configured during initialization and then
// treated as immutable.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec signing with the given shared secret. An empty
// secret falls back to the portal's built-in one.
func NewCodec(secret []byte) *Codec {
	if len(secret) == 0 {
		secret = []byte(defaultSecret)
	}
	out := make([]byte, len(secret))
	copy(out, secret)
	return &Codec{secret: out}
}

// Decode splits the token on '.', base64url-decodes the second segment, and
// parses it as a JSON claims object. The signature segment, when present, is
// ignored entirely.
func (c *Codec) Decode(tokenStr string) (Payload, error) {
	segments := strings.Split(tokenStr, ".")
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrMalformed, len(segments))
	}

	raw, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment: %v", ErrMalformed, err)
	}

	payload := Payload{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object: %v", ErrMalformed, err)
	}

	return payload, nil
}

// Encode builds a fixed HS256 header, standard-base64-encodes header and
// payload, signs "header.payload" with HMAC-SHA256 over the shared secret,
// and returns "header.payload.signature" with a standard-base64 signature.
func (c *Codec) Encode(payload Payload) (string, error) {
	headerJSON, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	signingInput := base64.StdEncoding.EncodeToString(headerJSON) +
		"." + base64.StdEncoding.EncodeToString(payloadJSON)

	digest, err := jwt.SigningMethodHS256.Sign(signingInput, c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signingInput + "." + base64.StdEncoding.EncodeToString(digest), nil
}
