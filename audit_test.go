package goPortalAuth

import (
	"context"
	"testing"
)

func collectAuditEvents(sink *ChannelSink) []AuditEvent {
	var out []AuditEvent
	for {
		select {
		case event := <-sink.Events():
			out = append(out, event)
		default:
			return out
		}
	}
}

func findAuditEvent(events []AuditEvent, eventType string) (AuditEvent, bool) {
	for _, event := range events {
		if event.EventType == eventType {
			return event, true
		}
	}
	return AuditEvent{}, false
}

func TestAuditLoginSuccessEvent(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.addAccount(DirectoryRecord{
		ID:       "7",
		Email:    "user@example.com",
		Password: "pw",
		Role:     RoleDoctor,
		Status:   StatusActive,
	})

	sink := NewChannelSink(64)
	cfg := testConfig(fixture.server.URL)
	cfg.Audit.Enabled = true
	engine, _ := newTestEngine(t, cfg, func(b *Builder) {
		b.WithAuditSink(sink)
	})

	if _, err := engine.Login(context.Background(), Credentials{Email: "user@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	engine.Close()

	events := collectAuditEvents(sink)
	event, ok := findAuditEvent(events, "login_success")
	if !ok {
		t.Fatalf("expected login_success event, got %+v", events)
	}
	if !event.Success {
		t.Fatal("expected success flag")
	}
	if event.Email != "user@example.com" || event.Role != RoleDoctor || event.Redirect != RouteDoctor {
		t.Fatalf("unexpected event fields: %+v", event)
	}
	if event.RequestID == "" {
		t.Fatal("expected a request id")
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected a timestamp")
	}
}

func TestAuditLoginFailureCarriesErrorCode(t *testing.T) {
	fixture := newPortalFixture(t)

	sink := NewChannelSink(64)
	cfg := testConfig(fixture.server.URL)
	cfg.Audit.Enabled = true
	engine, _ := newTestEngine(t, cfg, func(b *Builder) {
		b.WithAuditSink(sink)
	})

	if _, err := engine.Login(context.Background(), Credentials{Email: "nobody@example.com", Password: "pw"}); err == nil {
		t.Fatal("expected login failure")
	}
	engine.Close()

	events := collectAuditEvents(sink)
	event, ok := findAuditEvent(events, "login_failure")
	if !ok {
		t.Fatalf("expected login_failure event, got %+v", events)
	}
	if event.Success {
		t.Fatal("expected failure flag")
	}
	if event.Error != string(auditErrInvalidCredentials) {
		t.Fatalf("expected invalid_credentials error code, got %q", event.Error)
	}
}

func TestAuditSilentNoMatchEvent(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.mu.Lock()
	fixture.creds["ghost@example.com"] = "pw"
	fixture.mu.Unlock()

	sink := NewChannelSink(64)
	cfg := testConfig(fixture.server.URL)
	cfg.Audit.Enabled = true
	engine, _ := newTestEngine(t, cfg, func(b *Builder) {
		b.WithAuditSink(sink)
	})

	if _, err := engine.Login(context.Background(), Credentials{Email: "ghost@example.com", Password: "pw"}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	engine.Close()

	events := collectAuditEvents(sink)
	if _, ok := findAuditEvent(events, "login_silent_no_match"); !ok {
		t.Fatalf("expected login_silent_no_match event, got %+v", events)
	}
}

func TestAuditDisabledEmitsNothing(t *testing.T) {
	fixture := newPortalFixture(t)

	sink := NewChannelSink(64)
	engine, _ := newTestEngine(t, testConfig(fixture.server.URL), func(b *Builder) {
		b.WithAuditSink(sink)
	})

	_, _ = engine.Login(context.Background(), Credentials{Email: "nobody@example.com", Password: "pw"})
	engine.Close()

	if events := collectAuditEvents(sink); len(events) != 0 {
		t.Fatalf("expected no events with audit disabled, got %+v", events)
	}
}
