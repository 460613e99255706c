package jwttoken

import (
	"oirla/pkg/platform/middleware/auth"
)

func ToMiddlewareClaims(claims *SessionClaims) *auth.JWTClaims {
	return &auth.JWTClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		JTI:    claims.ID,
	}
}

// JWTServiceAdapter exposes JWTService as an auth.JWTValidator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*auth.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims), nil
}

var _ auth.JWTValidator = (*JWTServiceAdapter)(nil)
