package models

import (
	"strings"

	str "oirla/pkg/string"
	"oirla/pkg/validation"
)

// RegisterRequest creates an artist identity and its profile.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,notblank,max=200"`
	Phone    string `json:"phone" validate:"max=50"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	str.TrimStrings(&r.Name, &r.Phone)
}

func (r *RegisterRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validation.CheckStringLength("password", r.Password, validation.MaxPasswordLength)
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *LoginRequest) Validate() error {
	return validation.Validate(r)
}

// BootstrapRequest describes the first admin account. The name labels the
// admin's synthetic, pre-validated artist profile.
type BootstrapRequest struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required,notblank,max=200"`
}

func (r *BootstrapRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *BootstrapRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validation.CheckStringLength("password", r.Password, validation.MaxPasswordLength)
}

// normalizeEmail lower-cases and trims so lookups match registration.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
