package goTravel

import "errors"

var (
	// ErrInvalidInput is an exported constant or variable used by the travel engine.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAccountExists is an exported constant or variable used by the travel engine.
	ErrAccountExists = errors.New("account already exists")
	// ErrRoleInvalid is an exported constant or variable used by the travel engine.
	ErrRoleInvalid = errors.New("invalid account role")
	// ErrInvalidCredentials is an exported constant or variable used by the travel engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyLoggedIn is an exported constant or variable used by the travel engine.
	ErrAlreadyLoggedIn = errors.New("user already logged in")
	// ErrUnauthorized is an exported constant or variable used by the travel engine.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is an exported constant or variable used by the travel engine.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is an exported constant or variable used by the travel engine.
	ErrUserNotFound = errors.New("user not found")
	// ErrDestinationNotFound is an exported constant or variable used by the travel engine.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrInvalidPassword is an exported constant or variable used by the travel engine.
	ErrInvalidPassword = errors.New("invalid current password")
	// ErrSelfDeletion is an exported constant or variable used by the travel engine.
	ErrSelfDeletion = errors.New("admins cannot delete themselves")
	// ErrPeerAdminDeletion is an exported constant or variable used by the travel engine.
	ErrPeerAdminDeletion = errors.New("admins cannot delete other admins")
	// ErrEngineNotReady is an exported constant or variable used by the travel engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
