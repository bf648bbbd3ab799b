package goPortalAuth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	auditEventLoginSuccess        = "login_success"
	auditEventLoginFailure        = "login_failure"
	auditEventLoginRateLimited    = "login_rate_limited"
	auditEventLoginSilentNoMatch  = "login_silent_no_match"
	auditEventLoginInactive       = "login_inactive"
	auditEventRecoveryRequest     = "recovery_request"
	auditEventRecoveryMismatch    = "recovery_mismatch"
	auditEventRecoveryRateLimited = "recovery_rate_limited"
	auditEventRecoveryDispatched  = "recovery_dispatched"
	auditEventRegistrationSuccess = "registration_success"
	auditEventRegistrationFailure = "registration_failure"
	auditEventSessionCleared      = "session_cleared"
	auditEventNotificationFailure = "notification_dispatch_failure"
)

// AuditErrorCode defines a public type used by goPortalAuth APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrInvalidCredentials AuditErrorCode = "invalid_credentials"
	auditErrRateLimited        AuditErrorCode = "rate_limited"
	auditErrAccountInactive    AuditErrorCode = "account_inactive"
	auditErrUserNotFound       AuditErrorCode = "user_not_found"
	auditErrChallengeMismatch  AuditErrorCode = "challenge_mismatch"
	auditErrTokenMalformed     AuditErrorCode = "token_malformed"
	auditErrDuplicate          AuditErrorCode = "duplicate"
	auditErrValidation         AuditErrorCode = "validation"
	auditErrDispatchFailed     AuditErrorCode = "dispatch_failed"
	auditErrUnavailable        AuditErrorCode = "backend_unavailable"
	auditErrFeatureDisabled    AuditErrorCode = "feature_disabled"
	auditErrEngineNotReady     AuditErrorCode = "engine_not_ready"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email string,
	subjectID string,
	role string,
	redirect string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		RequestID: uuid.NewString(),
		Email:     email,
		SubjectID: subjectID,
		Role:      role,
		Redirect:  redirect,
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return auditErrInvalidCredentials
	case errors.Is(err, ErrLoginRateLimited),
		errors.Is(err, ErrRecoveryRateLimited):
		return auditErrRateLimited
	case errors.Is(err, ErrAccountInactive):
		return auditErrAccountInactive
	case errors.Is(err, ErrUserNotFound):
		return auditErrUserNotFound
	case errors.Is(err, ErrChallengeMismatch):
		return auditErrChallengeMismatch
	case errors.Is(err, ErrTokenMalformed):
		return auditErrTokenMalformed
	case errors.Is(err, ErrRegistrationConflict):
		return auditErrDuplicate
	case errors.Is(err, ErrRegistrationValidation):
		return auditErrValidation
	case errors.Is(err, ErrDispatch):
		return auditErrDispatchFailed
	case errors.Is(err, ErrAuthService),
		errors.Is(err, ErrDirectoryUnavailable),
		errors.Is(err, ErrSessionUnavailable):
		return auditErrUnavailable
	case errors.Is(err, ErrRecoveryDisabled),
		errors.Is(err, ErrRegistrationDisabled):
		return auditErrFeatureDisabled
	case errors.Is(err, ErrEngineNotReady):
		return auditErrEngineNotReady
	default:
		return auditErrInternal
	}
}
