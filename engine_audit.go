package goTravel

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventLoginSuccess        = "login_success"
	auditEventLoginFailure        = "login_failure"
	auditEventLoginActiveSession  = "login_active_session"
	auditEventLogoutSession       = "logout_session"
	auditEventRegisterSuccess     = "register_success"
	auditEventRegisterFailure     = "register_failure"
	auditEventProfileUpdate       = "profile_update"
	auditEventProfileUpdateFailed = "profile_update_failed"
	auditEventAccountDeleted      = "account_deleted"
	auditEventUserDeleted         = "user_deleted"
	auditEventUserDeletionDenied  = "user_deletion_denied"
	auditEventDestinationCreated  = "destination_created"
	auditEventDestinationUpdated  = "destination_updated"
	auditEventDestinationDeleted  = "destination_deleted"
	auditEventAccessDenied        = "access_denied"
)

// AuditErrorCode defines a public type used by goTravel APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrUnauthorized       AuditErrorCode = "unauthorized"
	auditErrForbidden          AuditErrorCode = "forbidden"
	auditErrInvalidCredentials AuditErrorCode = "invalid_credentials"
	auditErrActiveSession      AuditErrorCode = "active_session"
	auditErrInvalidInput       AuditErrorCode = "invalid_input"
	auditErrInvalidRole        AuditErrorCode = "invalid_role"
	auditErrDuplicate          AuditErrorCode = "duplicate"
	auditErrUserNotFound       AuditErrorCode = "user_not_found"
	auditErrNotFound           AuditErrorCode = "not_found"
	auditErrInvalidPassword    AuditErrorCode = "invalid_password"
	auditErrSelfDeletion       AuditErrorCode = "self_deletion"
	auditErrPeerAdminDeletion  AuditErrorCode = "peer_admin_deletion"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email string,
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
		Email:     email,
		IP:        clientIPFromContext(ctx),
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
	case errors.Is(err, ErrUnauthorized):
		return auditErrUnauthorized
	case errors.Is(err, ErrForbidden):
		return auditErrForbidden
	case errors.Is(err, ErrInvalidCredentials):
		return auditErrInvalidCredentials
	case errors.Is(err, ErrAlreadyLoggedIn):
		return auditErrActiveSession
	case errors.Is(err, ErrInvalidInput):
		return auditErrInvalidInput
	case errors.Is(err, ErrRoleInvalid):
		return auditErrInvalidRole
	case errors.Is(err, ErrAccountExists):
		return auditErrDuplicate
	case errors.Is(err, ErrUserNotFound):
		return auditErrUserNotFound
	case errors.Is(err, ErrDestinationNotFound):
		return auditErrNotFound
	case errors.Is(err, ErrInvalidPassword):
		return auditErrInvalidPassword
	case errors.Is(err, ErrSelfDeletion):
		return auditErrSelfDeletion
	case errors.Is(err, ErrPeerAdminDeletion):
		return auditErrPeerAdminDeletion
	default:
		return auditErrInternal
	}
}
