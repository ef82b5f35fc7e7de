package goTravel

import (
	"context"
	"errors"

	"github.com/MrEthical07/goTravel/credential"
)

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	if e == nil || e.passwordHash == nil || e.credentials == nil {
		return nil, ErrEngineNotReady
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		e.metricInc(MetricRegisterInvalid)
		e.emitAudit(ctx, auditEventRegisterFailure, false, req.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"reason": "missing_fields",
			}
		})
		return nil, ErrInvalidInput
	}

	roleInput := req.Role
	if roleInput == "" {
		roleInput = e.config.Account.DefaultRole
	}
	role, err := ParseRole(roleInput)
	if err != nil {
		e.metricInc(MetricRegisterInvalid)
		e.emitAudit(ctx, auditEventRegisterFailure, false, req.Email, ErrRoleInvalid, func() map[string]string {
			return map[string]string{
				"reason": "unknown_role",
			}
		})
		return nil, ErrRoleInvalid
	}

	hash, err := e.passwordHash.Hash(req.Password)
	if err != nil {
		e.emitAudit(ctx, auditEventRegisterFailure, false, req.Email, err, func() map[string]string {
			return map[string]string{
				"reason": "hash_failed",
			}
		})
		return nil, err
	}
	req.Password = ""

	err = e.credentials.Create(credential.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         string(role),
	})
	if err != nil {
		if errors.Is(err, credential.ErrDuplicateEmail) {
			e.metricInc(MetricRegisterDuplicate)
			e.emitAudit(ctx, auditEventRegisterFailure, false, req.Email, ErrAccountExists, func() map[string]string {
				return map[string]string{
					"reason": "duplicate_email",
				}
			})
			return nil, ErrAccountExists
		}
		e.emitAudit(ctx, auditEventRegisterFailure, false, req.Email, err, nil)
		return nil, err
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, auditEventRegisterSuccess, true, req.Email, nil, func() map[string]string {
		return map[string]string{
			"role": role.String(),
		}
	})

	return &Account{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}, nil
}
