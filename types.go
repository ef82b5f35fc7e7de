package goTravel

// Role is the closed permission tier assigned to an account at registration.
// Only the two declared constants are valid; free-form role strings are rejected
// at the boundary so a typo can never widen privileges.
type Role string

const (
	// RoleUser is an exported constant or variable used by the travel engine.
	RoleUser Role = "User"
	// RoleAdmin is an exported constant or variable used by the travel engine.
	RoleAdmin Role = "Admin"
)

// ParseRole maps a wire-level role string onto the closed [Role] enumeration.
// The empty string selects [RoleUser]; anything else that is not an exact match
// fails with [ErrRoleInvalid].
func ParseRole(s string) (Role, error) {
	switch s {
	case "":
		return RoleUser, nil
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", ErrRoleInvalid
	}
}

// String describes the string operation and its observable behavior.
func (r Role) String() string {
	return string(r)
}

// Identity is the resolved caller identity returned by [Engine.Validate] and the
// authorization helpers. Role is the snapshot captured at login time, not a live
// read of the credential record.
type Identity struct {
	Email string
	Role  Role
}

// RegisterRequest is the input for [Engine.Register]. Role is optional and
// defaults to "User".
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Account is returned by [Engine.Register]. It never carries password material.
type Account struct {
	Name  string
	Email string
	Role  Role
}

// LoginResult is returned by [Engine.Login]. Token is the opaque session token
// exactly as the session store will compare it (no "Bearer " prefix).
type LoginResult struct {
	Token string
	Role  Role
}

// AccountSummary is one row of the admin-only [Engine.Users] listing.
type AccountSummary struct {
	Name  string
	Email string
	Role  Role
}

// ProfileView is returned by [Engine.Profile].
type ProfileView struct {
	Name  string
	Email string
	Role  Role
}

// UpdateProfileRequest is the input for [Engine.UpdateProfile]. CurrentPassword is
// always required: profile mutation re-proves the password even on a valid session,
// so a stolen token alone cannot change credentials. Nil pointer fields are left
// untouched.
type UpdateProfileRequest struct {
	Name            *string
	CurrentPassword string
	NewPassword     *string
}

// Destination is a travel destination record. CreatedBy records the admin who
// created it; it is informational and never consulted for access control.
type Destination struct {
	ID          string
	Name        string
	Description string
	Location    string
	CreatedBy   string
}

// DestinationInput is the input for [Engine.CreateDestination]. All three fields
// are required.
type DestinationInput struct {
	Name        string
	Description string
	Location    string
}

// DestinationPatch is the partial-update input for [Engine.UpdateDestination].
// Nil pointer fields retain their prior values.
type DestinationPatch struct {
	Name        *string
	Description *string
	Location    *string
}
