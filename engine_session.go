package goPortalAuth

import "context"

// Session describes the session operation and its observable behavior.
//
// Session loads the persisted session snapshot. ErrNoSession is returned
// when no bootstrap has stored one yet.
// Session may return an error when input validation, dependency calls, or security checks fail.
// Session does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Session(ctx context.Context) (SessionState, error) {
	if e == nil || e.sessions == nil {
		return SessionState{}, ErrEngineNotReady
	}
	return e.sessions.Load(ctx)
}

// ClearSession describes the clearsession operation and its observable behavior.
//
// ClearSession may return an error when input validation, dependency calls, or security checks fail.
// ClearSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ClearSession(ctx context.Context) error {
	if e == nil || e.sessions == nil {
		return ErrEngineNotReady
	}

	if err := e.sessions.Clear(ctx); err != nil {
		return err
	}

	e.metricInc(MetricSessionCleared)
	e.emitAudit(ctx, auditEventSessionCleared, true, "", "", "", "", nil, nil)

	return nil
}
