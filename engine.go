package goTravel

import (
	"context"
	"errors"
	"time"

	"github.com/MrEthical07/goTravel/credential"
	"github.com/MrEthical07/goTravel/destination"
	"github.com/MrEthical07/goTravel/password"
	"github.com/MrEthical07/goTravel/session"
)

// Engine defines a public type used by goTravel APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config       Config
	credentials  *credential.Store
	sessions     session.Store
	destinations *destination.Store
	audit        *auditDispatcher
	metrics      *Metrics
	passwordHash *password.Argon2
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	if e == nil || e.passwordHash == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}

	// Empty fields take the same failure path as a wrong password so the
	// response never reveals which part of the credential pair was bad.
	if email == "" || pw == "" {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "empty_fields",
			}
		})
		return nil, ErrInvalidCredentials
	}

	user, ok := e.credentials.Lookup(email)
	if !ok {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "user_not_found",
			}
		})
		return nil, ErrInvalidCredentials
	}

	verified, err := e.passwordHash.Verify(pw, user.PasswordHash)
	if err != nil || !verified {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "password_mismatch",
			}
		})
		return nil, ErrInvalidCredentials
	}
	pw = ""

	token, err := e.sessions.Issue(ctx, session.Identity{
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		if errors.Is(err, session.ErrActiveSession) {
			e.metricInc(MetricLoginRejectedActive)
			e.emitAudit(ctx, auditEventLoginActiveSession, false, email, ErrAlreadyLoggedIn, nil)
			return nil, ErrAlreadyLoggedIn
		}
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"reason": "session_issue_failed",
			}
		})
		return nil, err
	}

	e.metricInc(MetricSessionCreated)
	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, email, nil, nil)

	return &LoginResult{
		Token: token,
		Role:  Role(user.Role),
	}, nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Validate(ctx context.Context, token string) (*Identity, error) {
	if e == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer e.metrics.Observe(MetricValidateLatency, time.Since(start))
	}

	if token == "" {
		e.metricInc(MetricAuthDenied)
		return nil, ErrUnauthorized
	}

	ident, err := e.sessions.Validate(ctx, token)
	if err != nil {
		e.metricInc(MetricAuthDenied)
		return nil, ErrUnauthorized
	}

	return &Identity{
		Email: ident.Email,
		Role:  Role(ident.Role),
	}, nil
}

// RequireRole describes the requirerole operation and its observable behavior.
//
// RequireRole may return an error when input validation, dependency calls, or security checks fail.
// RequireRole does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RequireRole(ctx context.Context, token string, role Role) (*Identity, error) {
	ident, err := e.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	if ident.Role != role {
		e.metricInc(MetricRoleForbidden)
		e.emitAudit(ctx, auditEventAccessDenied, false, ident.Email, ErrForbidden, func() map[string]string {
			return map[string]string{
				"required_role": role.String(),
				"actual_role":   ident.Role.String(),
			}
		})
		return nil, ErrForbidden
	}

	return ident, nil
}

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Logout(ctx context.Context, token string) error {
	if e == nil || e.sessions == nil {
		return ErrEngineNotReady
	}
	if token == "" {
		e.metricInc(MetricAuthDenied)
		return ErrUnauthorized
	}

	ident, err := e.sessions.Validate(ctx, token)
	if err != nil {
		e.metricInc(MetricAuthDenied)
		e.emitAudit(ctx, auditEventLogoutSession, false, "", ErrUnauthorized, nil)
		return ErrUnauthorized
	}

	if err := e.sessions.Revoke(ctx, token); err != nil {
		// The token can disappear between Validate and Revoke when two
		// logouts race; the session is gone either way.
		if !errors.Is(err, session.ErrTokenNotFound) {
			e.emitAudit(ctx, auditEventLogoutSession, false, ident.Email, err, nil)
			return err
		}
	}

	e.metricInc(MetricLogout)
	e.metricInc(MetricSessionInvalidated)
	e.emitAudit(ctx, auditEventLogoutSession, true, ident.Email, nil, nil)

	return nil
}
