package jwttoken

import (
	"context"
	"testing"
	"time"

	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var principal = id.Principal{ID: id.NewIdentityID(), Email: "a@x.com", Role: id.RoleArtist}

var jwtService = NewJWTService("test-signing-key", "test-issuer", time.Hour)

func Test_GenerateToken(t *testing.T) {
	token, err := jwtService.GenerateToken(context.Background(), principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, principal.ID.String(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "artist", claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_DefaultTTLIs24Hours(t *testing.T) {
	svc := NewJWTService("k", "iss", 0)
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	token, err := svc.GenerateToken(ctx, principal)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &SessionClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(*SessionClaims)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func Test_GenerateToken_RejectsNilSubject(t *testing.T) {
	_, err := jwtService.GenerateToken(context.Background(), id.Principal{})
	require.Error(t, err)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := jwtService.ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidToken))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	past := requestcontext.WithTime(context.Background(), time.Now().Add(-2*time.Hour))
	token, err := jwtService.GenerateToken(past, principal)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	require.ErrorContains(t, err, "token expired")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidToken))
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewJWTService("another-key", "test-issuer", time.Hour)
	token, err := other.GenerateToken(context.Background(), principal)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidToken))
}

func Test_ValidateToken_RejectsInvalidIssuer(t *testing.T) {
	other := NewJWTService("test-signing-key", "someone-else", time.Hour)
	token, err := other.GenerateToken(context.Background(), principal)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidToken))
}

func Test_ValidateToken_RejectsAlgorithmConfusion(t *testing.T) {
	claims := SessionClaims{
		UserID: principal.ID.String(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "test-issuer",
			ID:        uuid.NewString(),
		},
	}

	cases := []struct {
		name       string
		signMethod jwt.SigningMethod
		signKey    any
	}{
		{name: "hs512 header rejected", signMethod: jwt.SigningMethodHS512, signKey: []byte("test-signing-key")},
		{name: "alg none rejected", signMethod: jwt.SigningMethodNone, signKey: jwt.UnsafeAllowNoneSignatureType},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := jwt.NewWithClaims(tt.signMethod, claims).SignedString(tt.signKey)
			require.NoError(t, err)

			_, err = jwtService.ValidateToken(tokenString)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidToken))
		})
	}
}

func Test_AdapterMapsClaims(t *testing.T) {
	token, err := jwtService.GenerateToken(context.Background(), principal)
	require.NoError(t, err)

	claims, err := NewJWTServiceAdapter(jwtService).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, principal.ID.String(), claims.UserID)
	assert.Equal(t, "artist", claims.Role)
	assert.NotEmpty(t, claims.JTI)
}
