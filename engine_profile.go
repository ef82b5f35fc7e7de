package goTravel

import (
	"context"
	"errors"

	"github.com/MrEthical07/goTravel/credential"
)

// Profile describes the profile operation and its observable behavior.
//
// Profile may return an error when input validation, dependency calls, or security checks fail.
// Profile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Profile(ctx context.Context, token string) (*ProfileView, error) {
	ident, err := e.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, ok := e.credentials.Lookup(ident.Email)
	if !ok {
		return nil, ErrUserNotFound
	}

	return &ProfileView{
		Name:  user.Name,
		Email: user.Email,
		Role:  Role(user.Role),
	}, nil
}

// UpdateProfile describes the updateprofile operation and its observable behavior.
//
// UpdateProfile may return an error when input validation, dependency calls, or security checks fail.
// UpdateProfile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) error {
	ident, err := e.Validate(ctx, token)
	if err != nil {
		return err
	}
	if e.passwordHash == nil {
		return ErrEngineNotReady
	}

	if req.CurrentPassword == "" {
		e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"reason": "missing_current_password",
			}
		})
		return ErrInvalidInput
	}
	if req.Name != nil && *req.Name == "" {
		e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"reason": "empty_name",
			}
		})
		return ErrInvalidInput
	}
	if req.NewPassword != nil && *req.NewPassword == "" {
		e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"reason": "empty_new_password",
			}
		})
		return ErrInvalidInput
	}

	// Hash outside the store lock; only verification and the field writes
	// need to be atomic with the record.
	var newHash string
	if req.NewPassword != nil {
		newHash, err = e.passwordHash.Hash(*req.NewPassword)
		if err != nil {
			e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, err, nil)
			return err
		}
	}

	err = e.credentials.Update(ident.Email, func(u *credential.User) error {
		verified, verr := e.passwordHash.Verify(req.CurrentPassword, u.PasswordHash)
		if verr != nil || !verified {
			return ErrInvalidPassword
		}
		if req.Name != nil {
			u.Name = *req.Name
		}
		if newHash != "" {
			u.PasswordHash = newHash
		}
		return nil
	})
	req.CurrentPassword = ""
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrNotFound):
			e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, ErrUserNotFound, nil)
			return ErrUserNotFound
		case errors.Is(err, ErrInvalidPassword):
			e.metricInc(MetricProfileUpdateInvalidPassword)
			e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, ErrInvalidPassword, nil)
			return ErrInvalidPassword
		default:
			e.emitAudit(ctx, auditEventProfileUpdateFailed, false, ident.Email, err, nil)
			return err
		}
	}

	e.metricInc(MetricProfileUpdateSuccess)
	e.emitAudit(ctx, auditEventProfileUpdate, true, ident.Email, nil, func() map[string]string {
		meta := map[string]string{}
		if req.Name != nil {
			meta["name_changed"] = "true"
		}
		if req.NewPassword != nil {
			meta["password_changed"] = "true"
		}
		return meta
	})

	return nil
}

// DeleteAccount describes the deleteaccount operation and its observable behavior.
//
// DeleteAccount may return an error when input validation, dependency calls, or security checks fail.
// DeleteAccount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteAccount(ctx context.Context, token string) error {
	ident, err := e.Validate(ctx, token)
	if err != nil {
		return err
	}

	if err := e.credentials.Delete(ident.Email); err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			e.emitAudit(ctx, auditEventAccountDeleted, false, ident.Email, ErrUserNotFound, nil)
			return ErrUserNotFound
		}
		e.emitAudit(ctx, auditEventAccountDeleted, false, ident.Email, err, nil)
		return err
	}

	if err := e.sessions.RevokeAllFor(ctx, ident.Email); err != nil {
		e.emitAudit(ctx, auditEventAccountDeleted, false, ident.Email, err, func() map[string]string {
			return map[string]string{
				"reason": "session_revocation_failed",
			}
		})
		return err
	}

	e.metricInc(MetricAccountDeleted)
	e.metricInc(MetricSessionInvalidated)
	e.emitAudit(ctx, auditEventAccountDeleted, true, ident.Email, nil, nil)

	return nil
}
