package goPortalAuth

import (
	"context"

	"github.com/MrEthical07/goPortalAuth/internal/flows"
)

// registrationPayload is the wire shape of the registration endpoint.
type registrationPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber"`
	MagicWord    string `json:"magicWord"`
	Role         string `json:"role"`
}

// Register describes the register operation and its observable behavior.
//
// Register rejects mismatched password confirmation locally, submits the
// form to the portal API, and on success dispatches the welcome notification
// when one is configured.
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Register(ctx context.Context, form RegistrationForm) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if !e.config.Account.Enabled {
		return ErrRegistrationDisabled
	}

	return flows.RunRegister(ctx, flows.RegisterForm{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		MobileNumber:    form.MobileNumber,
		MagicWord:       form.MagicWord,
		Role:            form.Role,
	}, e.registerDeps())
}

func (e *Engine) registerDeps() flows.RegisterDeps {
	return flows.RegisterDeps{
		WelcomeTemplateID: e.config.Account.WelcomeTemplateID,

		Submit: func(ctx context.Context, form flows.RegisterForm) error {
			return e.api.Register(ctx, registrationPayload{
				FirstName:    form.FirstName,
				LastName:     form.LastName,
				Email:        form.Email,
				Password:     form.Password,
				MobileNumber: form.MobileNumber,
				MagicWord:    form.MagicWord,
				Role:         form.Role,
			})
		},
		Dispatch: e.notifier.Dispatch,

		MetricInc: e.metricIncByIndex,
		EmitAudit: e.emitAudit,

		Metrics: flows.RegisterMetrics{
			Success:    int(MetricRegistrationSuccess),
			Conflict:   int(MetricRegistrationConflict),
			Validation: int(MetricRegistrationValidation),
		},
		Events: flows.RegisterEvents{
			Success: auditEventRegistrationSuccess,
			Failure: auditEventRegistrationFailure,
		},
		Errors: flows.RegisterErrors{
			EngineNotReady: ErrEngineNotReady,
			Conflict:       ErrRegistrationConflict,
			Validation:     ErrRegistrationValidation,
		},
	}
}
