package jwttoken

import (
	"context"
	"errors"
	"time"

	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the session token validity.
const DefaultTokenTTL = 24 * time.Hour

// SessionClaims are the claims carried by a session token. The role is
// informational only: authorization always re-reads the stored role.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles JWT creation and validation
type JWTService struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

func NewJWTService(signingKey string, issuer string, tokenTTL time.Duration) *JWTService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// GenerateToken signs a session token for the given principal.
func (s *JWTService) GenerateToken(ctx context.Context, principal id.Principal) (string, error) {
	if principal.ID.IsNil() {
		return "", dErrors.New(dErrors.CodeInternal, "token subject cannot be empty")
	}
	now := requestcontext.Now(ctx)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		UserID: principal.ID.String(),
		Email:  principal.Email,
		Role:   string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm, expiry and issuer.
func (s *JWTService) ValidateToken(tokenString string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithIssuedAt())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidToken, "token expired")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidToken, "invalid token")
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "invalid token claims")
	}
	return claims, nil
}
