package goPortalAuth

import (
	"context"

	"github.com/MrEthical07/goPortalAuth/internal/flows"
)

// RecoverPassword describes the recoverpassword operation and its observable behavior.
//
// RecoverPassword verifies the mobile number and magic word against the
// directory and, on a match, dispatches the stored password to the address
// given in the request. The returned result is the completion signal;
// delivery happens asynchronously.
// RecoverPassword may return an error when input validation, dependency calls, or security checks fail.
// RecoverPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RecoverPassword(ctx context.Context, req RecoveryRequest) (*RecoveryResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	if !e.config.Recovery.Enabled {
		return nil, ErrRecoveryDisabled
	}

	result, err := flows.RunRecovery(ctx, req.MagicWord, req.Email, req.MobileNumber, e.recoveryDeps())
	if err != nil {
		return nil, err
	}

	return &RecoveryResult{MessageID: result.MessageID}, nil
}

func (e *Engine) recoveryDeps() flows.RecoveryDeps {
	return flows.RecoveryDeps{
		RecoveryTemplateID: e.config.Recovery.TemplateID,

		CheckRate:      e.recoveryLimiter.Allow,
		FetchDirectory: e.fetchDirectory,
		Dispatch:       e.notifier.Dispatch,

		MetricInc: e.metricIncByIndex,
		EmitAudit: e.emitAudit,

		Metrics: flows.RecoveryMetrics{
			Request:              int(MetricRecoveryRequest),
			Mismatch:             int(MetricRecoveryMismatch),
			RateLimited:          int(MetricRecoveryRateLimited),
			Dispatched:           int(MetricRecoveryDispatched),
			DirectoryUnavailable: int(MetricDirectoryUnavailable),
		},
		Events: flows.RecoveryEvents{
			Request:     auditEventRecoveryRequest,
			Mismatch:    auditEventRecoveryMismatch,
			RateLimited: auditEventRecoveryRateLimited,
			Dispatched:  auditEventRecoveryDispatched,
		},
		Errors: flows.RecoveryErrors{
			EngineNotReady:    ErrEngineNotReady,
			RateLimited:       ErrRecoveryRateLimited,
			ChallengeMismatch: ErrChallengeMismatch,
		},
	}
}
