package models

import (
	"time"

	id "oirla/pkg/domain"
)

// User is an authenticatable identity. The role never changes after creation.
type User struct {
	ID             id.IdentityID
	Email          string
	PasswordDigest string
	Role           id.Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser builds a user with a fresh ID.
func NewUser(email, passwordDigest string, role id.Role) *User {
	return &User{
		ID:             id.NewIdentityID(),
		Email:          email,
		PasswordDigest: passwordDigest,
		Role:           role,
	}
}

// Principal is the request-scoped view of the user.
func (u *User) Principal() id.Principal {
	return id.Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Account is a user joined with its artist profile, if any.
type Account struct {
	User
	ArtistID   *id.ArtistID
	ArtistName string
}
