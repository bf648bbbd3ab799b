package flows

import (
	"context"

	"github.com/MrEthical07/goPortalAuth/notify"
)

// RecoveryResult is the flow-local recovery response shape. The flow
// returning at all — with or without an error — is the completion signal
// callers use to reset form state.
type RecoveryResult struct {
	MessageID string
}

// RecoveryMetrics carries metric IDs needed by the recovery flow.
type RecoveryMetrics struct {
	Request              int
	Mismatch             int
	RateLimited          int
	Dispatched           int
	DirectoryUnavailable int
}

// RecoveryEvents carries audit event names used by the recovery flow.
type RecoveryEvents struct {
	Request     string
	Mismatch    string
	RateLimited string
	Dispatched  string
}

// RecoveryErrors carries host-level sentinel errors used by the recovery
// flow.
type RecoveryErrors struct {
	EngineNotReady    error
	RateLimited       error
	ChallengeMismatch error
}

// RecoveryDeps captures recovery flow dependencies.
type RecoveryDeps struct {
	RecoveryTemplateID string

	CheckRate      func(identifier string) error
	FetchDirectory func(ctx context.Context) ([]Record, error)
	Dispatch       func(msg notify.Message) string

	MetricInc func(int)
	EmitAudit AuditFunc

	Metrics RecoveryMetrics
	Events  RecoveryEvents
	Errors  RecoveryErrors
}

// RunRecovery verifies the (mobile number, magic word) challenge against the
// directory and, on a match, dispatches the recovery notification carrying
// the matched record's stored password to the requester-supplied address.
// Dispatch is fire-and-forget: its outcome never affects the flow result.
func RunRecovery(ctx context.Context, magicWord, email, mobileNumber string, deps RecoveryDeps) (*RecoveryResult, error) {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, string, string, string, error, func() map[string]string) {}
	}
	if deps.FetchDirectory == nil || deps.Dispatch == nil {
		return nil, deps.Errors.EngineNotReady
	}

	if deps.CheckRate != nil {
		if err := deps.CheckRate(mobileNumber); err != nil {
			deps.MetricInc(deps.Metrics.RateLimited)
			deps.EmitAudit(ctx, deps.Events.RateLimited, false, email, "", "", "", deps.Errors.RateLimited, nil)
			return nil, deps.Errors.RateLimited
		}
	}

	deps.MetricInc(deps.Metrics.Request)
	deps.EmitAudit(ctx, deps.Events.Request, true, email, "", "", "", nil, nil)

	records, err := deps.FetchDirectory(ctx)
	if err != nil {
		deps.MetricInc(deps.Metrics.DirectoryUnavailable)
		deps.EmitAudit(ctx, deps.Events.Mismatch, false, email, "", "", "", err, func() map[string]string {
			return map[string]string{"stage": "directory_fetch"}
		})
		return nil, err
	}

	var matched *Record
	for i := range records {
		if records[i].MobileNumber == mobileNumber && records[i].MagicWord == magicWord {
			matched = &records[i]
			break
		}
	}

	if matched == nil {
		deps.MetricInc(deps.Metrics.Mismatch)
		deps.EmitAudit(ctx, deps.Events.Mismatch, false, email, "", "", "", deps.Errors.ChallengeMismatch, nil)
		return nil, deps.Errors.ChallengeMismatch
	}

	// The matched record's own email travels as sender context; delivery
	// goes to the address the requester supplied.
	id := deps.Dispatch(notify.Message{
		TemplateID: deps.RecoveryTemplateID,
		Recipient:  email,
		Params: map[string]string{
			notify.ParamPassword:      matched.Password,
			notify.ParamReceiverEmail: matched.Email,
			notify.ParamMobileNumber:  mobileNumber,
		},
	})

	deps.MetricInc(deps.Metrics.Dispatched)
	deps.EmitAudit(ctx, deps.Events.Dispatched, true, email, matched.ID, "", "", nil, func() map[string]string {
		return map[string]string{"message_id": id}
	})

	return &RecoveryResult{MessageID: id}, nil
}
