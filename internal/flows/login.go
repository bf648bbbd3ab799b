package flows

import (
	"context"
)

// Record is the flow-local view of a directory record.
type Record struct {
	ID           string
	Email        string
	Password     string
	MobileNumber string
	MagicWord    string
	Role         string
	Status       string
}

// statusInactive is the only status value that blocks login; any other
// status passes through.
const statusInactive = "Inactive"

// LoginResult is the flow-local login response shape.
type LoginResult struct {
	Matched        bool
	RedirectTarget string
	Token          string
	Role           string
	SubjectID      string
}

// LoginMetrics carries metric IDs needed by the login flow.
type LoginMetrics struct {
	Success              int
	Failure              int
	RateLimited          int
	SilentNoMatch        int
	Inactive             int
	DirectoryUnavailable int
	TokenDecodeFailure   int
	TokenReissued        int
	PartialWrite         int
	AuthorizedWrite      int
}

// LoginEvents carries audit event names used by the login flow.
type LoginEvents struct {
	Success       string
	Failure       string
	RateLimited   string
	SilentNoMatch string
	Inactive      string
}

// LoginErrors carries host-level sentinel errors used by the login flow.
type LoginErrors struct {
	EngineNotReady  error
	RateLimited     error
	AccountInactive error
	UserNotFound    error
}

// AuditFunc emits one audit event; meta is evaluated lazily so the success
// path pays nothing when auditing is disabled.
type AuditFunc func(ctx context.Context, event string, success bool, email, subjectID, role, redirect string, failure error, meta func() map[string]string)

// LoginDeps captures login flow dependencies.
type LoginDeps struct {
	StrictMatch bool

	CheckRate         func(identifier string) error
	SubmitCredentials func(ctx context.Context, email, password string) (string, error)
	SavePartial       func(ctx context.Context, tokenStr, email string) error
	FetchDirectory    func(ctx context.Context) ([]Record, error)
	DecodeToken       func(tokenStr string) (map[string]any, error)
	EncodeToken       func(payload map[string]any) (string, error)
	SaveAuthorized    func(ctx context.Context, tokenStr, role, subjectID string) error
	RouteForRole      func(role string) string

	MetricInc func(int)
	EmitAudit AuditFunc

	Metrics LoginMetrics
	Events  LoginEvents
	Errors  LoginErrors
}

// RunLogin executes the login bootstrap: submit credentials, persist the
// partial session, verify against the directory, re-sign the token with the
// role claim, persist the authorized session, and resolve the redirect.
//
// The partial-session write deliberately precedes directory verification;
// any later failure leaves it persisted. A missing directory match is a
// silent no-op unless StrictMatch is set.
func RunLogin(ctx context.Context, email, password string, deps LoginDeps) (*LoginResult, error) {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, string, string, string, error, func() map[string]string) {}
	}
	if deps.SubmitCredentials == nil ||
		deps.SavePartial == nil ||
		deps.FetchDirectory == nil ||
		deps.DecodeToken == nil ||
		deps.EncodeToken == nil ||
		deps.SaveAuthorized == nil ||
		deps.RouteForRole == nil {
		return nil, deps.Errors.EngineNotReady
	}

	if deps.CheckRate != nil {
		if err := deps.CheckRate(email); err != nil {
			deps.MetricInc(deps.Metrics.RateLimited)
			deps.EmitAudit(ctx, deps.Events.RateLimited, false, email, "", "", "", deps.Errors.RateLimited, nil)
			return nil, deps.Errors.RateLimited
		}
	}

	tokenStr, err := deps.SubmitCredentials(ctx, email, password)
	if err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, "", "", "", err, func() map[string]string {
			return map[string]string{"stage": "submit"}
		})
		return nil, err
	}

	if err := deps.SavePartial(ctx, tokenStr, email); err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, "", "", "", err, func() map[string]string {
			return map[string]string{"stage": "persist_partial"}
		})
		return nil, err
	}
	deps.MetricInc(deps.Metrics.PartialWrite)

	records, err := deps.FetchDirectory(ctx)
	if err != nil {
		deps.MetricInc(deps.Metrics.DirectoryUnavailable)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, "", "", "", err, func() map[string]string {
			return map[string]string{"stage": "directory_fetch"}
		})
		return nil, err
	}

	var matched *Record
	for i := range records {
		if records[i].Email == email {
			matched = &records[i]
			break
		}
	}

	if matched == nil {
		if deps.StrictMatch {
			deps.MetricInc(deps.Metrics.Failure)
			deps.EmitAudit(ctx, deps.Events.Failure, false, email, "", "", "", deps.Errors.UserNotFound, func() map[string]string {
				return map[string]string{"stage": "directory_match"}
			})
			return nil, deps.Errors.UserNotFound
		}
		// A login that succeeds upstream but has no directory record
		// raises no error and routes nowhere. The partial session
		// stays persisted.
		deps.MetricInc(deps.Metrics.SilentNoMatch)
		deps.EmitAudit(ctx, deps.Events.SilentNoMatch, true, email, "", "", "", nil, nil)
		return &LoginResult{Matched: false}, nil
	}

	if matched.Status == statusInactive {
		deps.MetricInc(deps.Metrics.Inactive)
		deps.EmitAudit(ctx, deps.Events.Inactive, false, email, matched.ID, matched.Role, "", deps.Errors.AccountInactive, nil)
		return nil, deps.Errors.AccountInactive
	}

	payload, err := deps.DecodeToken(tokenStr)
	if err != nil {
		deps.MetricInc(deps.Metrics.TokenDecodeFailure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, matched.ID, matched.Role, "", err, func() map[string]string {
			return map[string]string{"stage": "token_decode"}
		})
		return nil, err
	}

	payload["role"] = matched.Role
	signed, err := deps.EncodeToken(payload)
	if err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, matched.ID, matched.Role, "", err, func() map[string]string {
			return map[string]string{"stage": "token_encode"}
		})
		return nil, err
	}
	deps.MetricInc(deps.Metrics.TokenReissued)

	if err := deps.SaveAuthorized(ctx, signed, matched.Role, matched.ID); err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, matched.ID, matched.Role, "", err, func() map[string]string {
			return map[string]string{"stage": "persist_authorized"}
		})
		return nil, err
	}
	deps.MetricInc(deps.Metrics.AuthorizedWrite)

	redirect := deps.RouteForRole(matched.Role)
	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, email, matched.ID, matched.Role, redirect, nil, nil)

	return &LoginResult{
		Matched:        true,
		RedirectTarget: redirect,
		Token:          signed,
		Role:           matched.Role,
		SubjectID:      matched.ID,
	}, nil
}
