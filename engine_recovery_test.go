package goPortalAuth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrEthical07/goPortalAuth/notify"
)

func TestRecoverPasswordChallengeMismatch(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.addAccount(DirectoryRecord{
		ID:           "1",
		Email:        "owner@example.com",
		Password:     "stored-pw",
		MobileNumber: "555-0100",
		MagicWord:    "swordfish",
		Role:         RolePatient,
		Status:       StatusActive,
	})

	capture := &captureDispatcher{}
	engine, _ := newTestEngine(t, testConfig(fixture.server.URL), func(b *Builder) {
		b.WithDispatcher(capture)
	})

	_, err := engine.RecoverPassword(context.Background(), RecoveryRequest{
		Email:        "owner@example.com",
		MobileNumber: "555-0100",
		MagicWord:    "wrong-word",
	})
	if !errors.Is(err, ErrChallengeMismatch) {
		t.Fatalf("expected ErrChallengeMismatch, got %v", err)
	}

	engine.Close()
	if got := capture.messages(); len(got) != 0 {
		t.Fatalf("expected zero dispatches on mismatch, got %d", len(got))
	}
}

func TestRecoverPasswordDispatchesStoredPassword(t *testing.T) {
	fixture := newPortalFixture(t)
	fixture.addAccount(DirectoryRecord{
		ID:           "1",
		Email:        "owner@example.com",
		Password:     "stored-pw",
		MobileNumber: "555-0100",
		MagicWord:    "swordfish",
		Role:         RolePatient,
		Status:       StatusActive,
	})

	capture := &captureDispatcher{}
	engine, _ := newTestEngine(t, testConfig(fixture.server.URL), func(b *Builder) {
		b.WithDispatcher(capture)
	})

	result, err := engine.RecoverPassword(context.Background(), RecoveryRequest{
		Email:        "requester@example.com",
		MobileNumber: "555-0100",
		MagicWord:    "swordfish",
	})
	if err != nil {
		t.Fatalf("RecoverPassword failed: %v", err)
	}
	if result.MessageID == "" {
		t.Fatal("expected a message id")
	}

	engine.Close()

	got := capture.messages()
	if len(got) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", len(got))
	}
	msg := got[0]
	if msg.ID != result.MessageID {
		t.Fatalf("expected message id %s, got %s", result.MessageID, msg.ID)
	}
	if msg.TemplateID != "template_recovery" {
		t.Fatalf("unexpected template: %s", msg.TemplateID)
	}
	if msg.Recipient != "requester@example.com" {
		t.Fatalf("expected delivery to the requester address, got %s", msg.Recipient)
	}
	if msg.Params[notify.ParamPassword] != "stored-pw" {
		t.Fatalf("expected stored password in params, got %q", msg.Params[notify.ParamPassword])
	}
	if msg.Params[notify.ParamReceiverEmail] != "owner@example.com" {
		t.Fatalf("expected matched record email in params, got %q", msg.Params[notify.ParamReceiverEmail])
	}
	if msg.Params[notify.ParamMobileNumber] != "555-0100" {
		t.Fatalf("expected mobile number in params, got %q", msg.Params[notify.ParamMobileNumber])
	}
}

func TestRecoverPasswordDisabled(t *testing.T) {
	fixture := newPortalFixture(t)

	cfg := testConfig(fixture.server.URL)
	cfg.Recovery.Enabled = false
	engine, _ := newTestEngine(t, cfg)

	_, err := engine.RecoverPassword(context.Background(), RecoveryRequest{
		Email:        "requester@example.com",
		MobileNumber: "555-0100",
		MagicWord:    "swordfish",
	})
	if !errors.Is(err, ErrRecoveryDisabled) {
		t.Fatalf("expected ErrRecoveryDisabled, got %v", err)
	}
}

func TestRecoverPasswordRateLimited(t *testing.T) {
	fixture := newPortalFixture(t)

	cfg := testConfig(fixture.server.URL)
	cfg.Recovery.MaxAttempts = 2
	cfg.Recovery.CooldownDuration = time.Hour
	engine, _ := newTestEngine(t, cfg)

	req := RecoveryRequest{
		Email:        "requester@example.com",
		MobileNumber: "555-0100",
		MagicWord:    "wrong",
	}
	for i := 0; i < 2; i++ {
		if _, err := engine.RecoverPassword(context.Background(), req); !errors.Is(err, ErrChallengeMismatch) {
			t.Fatalf("attempt %d: expected ErrChallengeMismatch, got %v", i, err)
		}
	}

	if _, err := engine.RecoverPassword(context.Background(), req); !errors.Is(err, ErrRecoveryRateLimited) {
		t.Fatalf("expected ErrRecoveryRateLimited, got %v", err)
	}
}
