package models

import id "oirla/pkg/domain"

// Response messages.
const (
	MsgRegistered = "Registro exitoso"
	MsgLoggedIn   = "Login exitoso"
)

// UserView is the client-facing summary of the authenticated user.
type UserView struct {
	ID       id.IdentityID `json:"id"`
	Email    string        `json:"email"`
	Role     id.Role       `json:"role"`
	ArtistID *id.ArtistID  `json:"artist_id"`
	Name     string        `json:"name"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string
	User  UserView
}

// AuthResponse is the JSON body of register and login.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}
