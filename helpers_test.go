package goPortalAuth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MrEthical07/goPortalAuth/notify"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

// issueBearer builds the kind of token the portal API hands out: url-safe
// base64 segments without padding, signature never checked by the client.
func issueBearer(payload map[string]any) string {
	headerJSON, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payloadJSON, _ := json.Marshal(payload)
	return base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(payloadJSON) +
		".sig"
}

// decodeBearerPayload decodes a re-signed token, whose segments use padded
// standard-alphabet base64.
func decodeBearerPayload(t *testing.T, tokenStr string) map[string]any {
	t.Helper()

	segments := strings.Split(tokenStr, ".")
	if len(segments) < 2 {
		t.Fatalf("expected at least 2 token segments, got %d", len(segments))
	}
	raw, err := base64.StdEncoding.DecodeString(segments[1])
	if err != nil {
		t.Fatalf("decode payload segment failed: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload failed: %v", err)
	}
	return payload
}

// portalFixture stubs the portal backend: login, user directory, and
// registration endpoints.
type portalFixture struct {
	server *httptest.Server

	mu           sync.Mutex
	creds        map[string]string
	records      []DirectoryRecord
	existing     map[string]bool
	usersStatus  int
	loginHits    int
	usersHits    int
	registerHits int
}

func newPortalFixture(t *testing.T) *portalFixture {
	t.Helper()

	f := &portalFixture{
		creds:       map[string]string{},
		existing:    map[string]bool{},
		usersStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/login", f.handleLogin)
	mux.HandleFunc("/api/Auth/users", f.handleUsers)
	mux.HandleFunc("/api/Auth/register", f.handleRegister)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *portalFixture) addAccount(rec DirectoryRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds[rec.Email] = rec.Password
	f.records = append(f.records, rec)
}

func (f *portalFixture) handleLogin(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.loginHits++
	creds := f.creds
	f.mu.Unlock()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if password, ok := creds[body.Email]; !ok || password != body.Password {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tokenStr := issueBearer(map[string]any{"sub": body.Email})
	_ = json.NewEncoder(w).Encode(map[string]string{"token": tokenStr})
}

func (f *portalFixture) handleUsers(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	f.usersHits++
	status := f.usersStatus
	records := f.records
	f.mu.Unlock()

	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}
	_ = json.NewEncoder(w).Encode(records)
}

func (f *portalFixture) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registrationPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.registerHits++
	conflict := f.existing[body.Email]
	f.mu.Unlock()

	if conflict {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "Error: Account already exists for this email")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func newMuxServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func (f *portalFixture) hits() (login, users, register int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginHits, f.usersHits, f.registerHits
}

func testConfig(baseURL string) Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = baseURL
	cfg.Recovery.TemplateID = "template_recovery"
	cfg.Account.WelcomeTemplateID = "template_welcome"
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, opts ...func(*Builder)) (*Engine, *miniredis.Miniredis) {
	t.Helper()

	mr, rdb := newTestRedis(t)
	t.Cleanup(mr.Close)

	builder := New().WithConfig(cfg).WithRedis(rdb)
	for _, opt := range opts {
		opt(builder)
	}

	engine, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine, mr
}

// captureDispatcher records every message handed to the notifier.
type captureDispatcher struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (d *captureDispatcher) Send(_ context.Context, msg notify.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
	return nil
}

func (d *captureDispatcher) messages() []notify.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]notify.Message, len(d.sent))
	copy(out, d.sent)
	return out
}
