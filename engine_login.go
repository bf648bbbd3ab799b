package goPortalAuth

import (
	"context"
	"time"

	"github.com/MrEthical07/goPortalAuth/internal/flows"
	internalmetrics "github.com/MrEthical07/goPortalAuth/internal/metrics"
	"github.com/MrEthical07/goPortalAuth/token"
)

// Login describes the login operation and its observable behavior.
//
// Login submits the credentials, persists the partial session, verifies the
// account against the directory, re-signs the bearer token with the account
// role, persists the authorized session, and resolves the landing route.
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	start := time.Now()
	result, err := flows.RunLogin(ctx, creds.Email, creds.Password, e.loginDeps())
	e.observeLatency(MetricLoginLatency, time.Since(start))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Matched:        result.Matched,
		RedirectTarget: result.RedirectTarget,
		Token:          result.Token,
		Role:           result.Role,
		SubjectID:      result.SubjectID,
	}, nil
}

func (e *Engine) loginDeps() flows.LoginDeps {
	return flows.LoginDeps{
		StrictMatch: e.config.Directory.StrictMatch,

		CheckRate:         e.loginLimiter.Allow,
		SubmitCredentials: e.api.Login,
		SavePartial:       e.sessions.SavePartial,
		FetchDirectory:    e.fetchDirectory,
		DecodeToken: func(tokenStr string) (map[string]any, error) {
			payload, err := e.codec.Decode(tokenStr)
			if err != nil {
				return nil, err
			}
			return map[string]any(payload), nil
		},
		EncodeToken: func(payload map[string]any) (string, error) {
			return e.codec.Encode(token.Payload(payload))
		},
		SaveAuthorized: e.sessions.SaveAuthorized,
		RouteForRole:   RouteForRole,

		MetricInc: e.metricIncByIndex,
		EmitAudit: e.emitAudit,

		Metrics: flows.LoginMetrics{
			Success:              int(MetricLoginSuccess),
			Failure:              int(MetricLoginFailure),
			RateLimited:          int(MetricLoginRateLimited),
			SilentNoMatch:        int(MetricLoginSilentNoMatch),
			Inactive:             int(MetricLoginInactive),
			DirectoryUnavailable: int(MetricDirectoryUnavailable),
			TokenDecodeFailure:   int(MetricTokenDecodeFailure),
			TokenReissued:        int(MetricTokenReissued),
			PartialWrite:         int(MetricSessionPartialWrite),
			AuthorizedWrite:      int(MetricSessionAuthorizedWrite),
		},
		Events: flows.LoginEvents{
			Success:       auditEventLoginSuccess,
			Failure:       auditEventLoginFailure,
			RateLimited:   auditEventLoginRateLimited,
			SilentNoMatch: auditEventLoginSilentNoMatch,
			Inactive:      auditEventLoginInactive,
		},
		Errors: flows.LoginErrors{
			EngineNotReady:  ErrEngineNotReady,
			RateLimited:     ErrLoginRateLimited,
			AccountInactive: ErrAccountInactive,
			UserNotFound:    ErrUserNotFound,
		},
	}
}

func (e *Engine) fetchDirectory(ctx context.Context) ([]flows.Record, error) {
	records, err := e.directory.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]flows.Record, len(records))
	for i, r := range records {
		out[i] = flows.Record{
			ID:           r.ID,
			Email:        r.Email,
			Password:     r.Password,
			MobileNumber: r.MobileNumber,
			MagicWord:    r.MagicWord,
			Role:         r.Role,
			Status:       r.Status,
		}
	}
	return out, nil
}

func (e *Engine) metricIncByIndex(id int) {
	e.metricInc(internalmetrics.MetricID(id))
}
