package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func issuedToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header failed: %v", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}

	// The issuing endpoint emits unpadded base64url segments.
	return base64.RawURLEncoding.EncodeToString(header) +
		"." + base64.RawURLEncoding.EncodeToString(payload) +
		"." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestDecodeIssuedToken(t *testing.T) {
	codec := NewCodec(nil)

	payload, err := codec.Decode(issuedToken(t, map[string]any{
		"sub":   "42",
		"email": "a@x.com",
	}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if payload["sub"] != "42" || payload["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestDecodeIgnoresSignature(t *testing.T) {
	codec := NewCodec(nil)

	tok := issuedToken(t, map[string]any{"sub": "42"})
	tampered := tok[:strings.LastIndex(tok, ".")] + ".garbage-not-even-base64!!!"

	if _, err := codec.Decode(tampered); err != nil {
		t.Fatalf("Decode must not inspect the signature segment, got %v", err)
	}

	// Two segments are enough.
	headerAndPayload := tok[:strings.LastIndex(tok, ".")]
	if _, err := codec.Decode(headerAndPayload); err != nil {
		t.Fatalf("Decode of two-segment token failed: %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	codec := NewCodec(nil)

	cases := map[string]string{
		"empty":         "",
		"one segment":   "justonesegment",
		"bad base64":    "h." + "%%%not-base64%%%",
		"not an object": "h." + base64.RawURLEncoding.EncodeToString([]byte(`"just a string"`)),
		"not json":      "h." + base64.RawURLEncoding.EncodeToString([]byte("{broken")),
	}

	for name, tok := range cases {
		if _, err := codec.Decode(tok); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestEncodeShape(t *testing.T) {
	codec := NewCodec(nil)

	tok, err := codec.Encode(Payload{"sub": "42", "role": "DOCTOR"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	segments := strings.Split(tok, ".")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	header, err := base64.StdEncoding.DecodeString(segments[0])
	if err != nil {
		t.Fatalf("header is not standard base64: %v", err)
	}
	if string(header) != `{"alg":"HS256","typ":"JWT"}` {
		t.Fatalf("unexpected header: %s", header)
	}

	mac := hmac.New(sha256.New, []byte("Secret"))
	mac.Write([]byte(segments[0] + "." + segments[1]))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if segments[2] != want {
		t.Fatalf("signature mismatch: got %s want %s", segments[2], want)
	}
}

func TestEncodeCustomSecret(t *testing.T) {
	codec := NewCodec([]byte("other"))

	tok, err := codec.Encode(Payload{"sub": "1"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	segments := strings.Split(tok, ".")

	mac := hmac.New(sha256.New, []byte("other"))
	mac.Write([]byte(segments[0] + "." + segments[1]))
	if segments[2] != base64.StdEncoding.EncodeToString(mac.Sum(nil)) {
		t.Fatal("expected signature under the configured secret")
	}
}

// The decode and encode alphabets disagree on purpose: decode expects
// unpadded base64url, encode emits padded standard base64. A re-encoded
// token whose payload segment carries '+', '/', or '=' is therefore not
// decodable again.
func TestAlphabetAsymmetry(t *testing.T) {
	codec := NewCodec(nil)

	// `{"sub":"x"}` is 11 bytes, so its standard encoding is padded with '='.
	tok, err := codec.Encode(Payload{"sub": "x"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(strings.Split(tok, ".")[1], "=") {
		t.Fatal("expected padded payload segment for this fixture")
	}
	if _, err := codec.Decode(tok); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for padded payload segment, got %v", err)
	}

	// `{"a":"b"}` is 9 bytes: unpadded, and its encoding contains no '+'
	// or '/', so the alphabets coincide and the round trip survives.
	tok, err = codec.Encode(Payload{"a": "b"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	payload, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode of alphabet-neutral token failed: %v", err)
	}
	if payload["a"] != "b" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
