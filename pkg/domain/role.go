package domain

import (
	"fmt"
)

// Role is the authorization role carried by an identity. Roles are flat:
// an admin does not implicitly hold artist capabilities.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
)

// ParseRole accepts only the known roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleArtist:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// Principal is the authenticated caller resolved from a bearer token.
// Role always comes from the store, never from the token.
type Principal struct {
	ID    IdentityID
	Email string
	Role  Role
}
