package goPortalAuth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.addAccount(DirectoryRecord{
		ID:       "9",
		Email:    "user@example.com",
		Password: "pw",
		Role:     RoleAdmin,
		Status:   StatusActive,
	})

	engine, _ := newTestEngine(t, testConfig(fixture.server.URL))
	ctx := context.Background()

	if _, err := engine.Session(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession before login, got %v", err)
	}

	result, err := engine.Login(ctx, Credentials{Email: "user@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	state, err := engine.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if state.Partial() {
		t.Fatalf("expected authorized session, got %+v", state)
	}
	if state.Token != result.Token || state.UserEmail != "user@example.com" {
		t.Fatalf("unexpected session state: %+v", state)
	}

	if err := engine.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	if _, err := engine.Session(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.addAccount(DirectoryRecord{
		ID:       "9",
		Email:    "user@example.com",
		Password: "pw",
		Role:     RoleAdmin,
		Status:   StatusActive,
	})

	cfg := testConfig(fixture.server.URL)
	cfg.Session.TTL = time.Minute
	engine, mr := newTestEngine(t, cfg)
	ctx := context.Background()

	if _, err := engine.Login(ctx, Credentials{Email: "user@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := engine.Session(ctx); err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := engine.Session(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after TTL, got %v", err)
	}
}

func TestClearSessionCountsMetric(t *testing.T) {
	fixture := newPortalFixture(t)

	engine, _ := newTestEngine(t, testConfig(fixture.server.URL), func(b *Builder) {
		b.WithMetricsEnabled(true)
	})

	if err := engine.ClearSession(context.Background()); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	if got := engine.MetricsSnapshot().Counters[MetricSessionCleared]; got != 1 {
		t.Fatalf("expected one cleared session counted, got %d", got)
	}
}
