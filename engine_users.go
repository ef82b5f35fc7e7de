package goTravel

import (
	"context"
	"errors"

	"github.com/MrEthical07/goTravel/credential"
)

// Users describes the users operation and its observable behavior.
//
// Users may return an error when input validation, dependency calls, or security checks fail.
// Users does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Users(ctx context.Context, token string) ([]AccountSummary, error) {
	if _, err := e.RequireRole(ctx, token, RoleAdmin); err != nil {
		return nil, err
	}

	records := e.credentials.All()
	summaries := make([]AccountSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, AccountSummary{
			Name:  r.Name,
			Email: r.Email,
			Role:  Role(r.Role),
		})
	}

	return summaries, nil
}

// DeleteUser describes the deleteuser operation and its observable behavior.
//
// DeleteUser may return an error when input validation, dependency calls, or security checks fail.
// DeleteUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteUser(ctx context.Context, token, email string) error {
	caller, err := e.RequireRole(ctx, token, RoleAdmin)
	if err != nil {
		return err
	}

	if email == "" {
		return ErrInvalidInput
	}

	if caller.Email == email {
		e.metricInc(MetricUserDeletionRejected)
		e.emitAudit(ctx, auditEventUserDeletionDenied, false, caller.Email, ErrSelfDeletion, func() map[string]string {
			return map[string]string{
				"target": email,
			}
		})
		return ErrSelfDeletion
	}

	// The peer-admin guard runs under the credential store's lock so the
	// target's role cannot change between the check and the delete.
	err = e.credentials.DeleteIf(email, func(u credential.User) error {
		if u.Role == string(RoleAdmin) {
			return ErrPeerAdminDeletion
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			e.emitAudit(ctx, auditEventUserDeletionDenied, false, caller.Email, ErrUserNotFound, func() map[string]string {
				return map[string]string{
					"target": email,
				}
			})
			return ErrUserNotFound
		}
		if errors.Is(err, ErrPeerAdminDeletion) {
			e.metricInc(MetricUserDeletionRejected)
			e.emitAudit(ctx, auditEventUserDeletionDenied, false, caller.Email, ErrPeerAdminDeletion, func() map[string]string {
				return map[string]string{
					"target": email,
				}
			})
		}
		return err
	}

	if err := e.sessions.RevokeAllFor(ctx, email); err != nil {
		e.emitAudit(ctx, auditEventUserDeleted, false, caller.Email, err, func() map[string]string {
			return map[string]string{
				"target": email,
				"reason": "session_revocation_failed",
			}
		})
		return err
	}

	e.metricInc(MetricUserDeleted)
	e.metricInc(MetricSessionInvalidated)
	e.emitAudit(ctx, auditEventUserDeleted, true, caller.Email, nil, func() map[string]string {
		return map[string]string{
			"target": email,
		}
	})

	return nil
}
