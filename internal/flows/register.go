package flows

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrEthical07/goPortalAuth/notify"
)

// RegisterForm is the flow-local registration payload. Password equality
// with ConfirmPassword is checked here, before anything touches the wire.
type RegisterForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	MobileNumber    string
	MagicWord       string
	Role            string
}

// RegisterMetrics carries metric IDs needed by the registration flow.
type RegisterMetrics struct {
	Success    int
	Conflict   int
	Validation int
}

// RegisterEvents carries audit event names used by the registration flow.
type RegisterEvents struct {
	Success string
	Failure string
}

// RegisterErrors carries classification sentinels and host-level errors
// used by the registration flow.
type RegisterErrors struct {
	EngineNotReady error
	Conflict       error
	Validation     error
}

// RegisterDeps captures registration flow dependencies.
type RegisterDeps struct {
	WelcomeTemplateID string

	Submit   func(ctx context.Context, form RegisterForm) error
	Dispatch func(msg notify.Message) string

	MetricInc func(int)
	EmitAudit AuditFunc

	Metrics RegisterMetrics
	Events  RegisterEvents
	Errors  RegisterErrors
}

// RunRegister validates and submits a registration. On success, a welcome
// notification is dispatched fire-and-forget when a dispatcher and template
// are configured.
func RunRegister(ctx context.Context, form RegisterForm, deps RegisterDeps) error {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, string, string, string, error, func() map[string]string) {}
	}
	if deps.Submit == nil {
		return deps.Errors.EngineNotReady
	}

	if form.Password != form.ConfirmPassword {
		err := fmt.Errorf("%w: passwords do not match", deps.Errors.Validation)
		deps.MetricInc(deps.Metrics.Validation)
		deps.EmitAudit(ctx, deps.Events.Failure, false, form.Email, "", form.Role, "", err, func() map[string]string {
			return map[string]string{"stage": "confirm_password"}
		})
		return err
	}

	if err := deps.Submit(ctx, form); err != nil {
		switch {
		case errors.Is(err, deps.Errors.Conflict):
			deps.MetricInc(deps.Metrics.Conflict)
		case errors.Is(err, deps.Errors.Validation):
			deps.MetricInc(deps.Metrics.Validation)
		}
		deps.EmitAudit(ctx, deps.Events.Failure, false, form.Email, "", form.Role, "", err, func() map[string]string {
			return map[string]string{"stage": "submit"}
		})
		return err
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, form.Email, "", form.Role, "", nil, nil)

	if deps.Dispatch != nil && deps.WelcomeTemplateID != "" {
		deps.Dispatch(notify.Message{
			TemplateID: deps.WelcomeTemplateID,
			Recipient:  form.Email,
			Params: map[string]string{
				notify.ParamToName:   form.FirstName,
				notify.ParamUsername: form.Email,
				notify.ParamPassword: form.Password,
				notify.ParamStatus:   "Active",
			},
		})
	}

	return nil
}
