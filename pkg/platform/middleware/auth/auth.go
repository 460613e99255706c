package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/requestcontext"
)

// User-facing rejection messages.
const (
	MsgMissingToken = "No se proporcionó token"
	MsgInvalidToken = "Token no válido"
)

// Failure reasons reported to the FailureRecorder.
const (
	ReasonMissingToken = "missing_token"
	ReasonInvalidToken = "invalid_token"
	ReasonOrphanToken  = "orphan_token"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// IdentityResolver loads the current identity behind a verified token.
// FindPrincipal returns (nil, nil) when the identity no longer exists.
type IdentityResolver interface {
	FindPrincipal(ctx context.Context, identityID id.IdentityID) (*id.Principal, error)
}

// FailureRecorder counts rejected requests by reason.
type FailureRecorder interface {
	IncrementAuthFailures(reason string)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	UserID string
	Email  string
	Role   string
	JTI    string
}

// RequireAuth verifies the bearer token, resolves it against the identity
// store and attaches the resolved principal to the request context.
//
// The attached role is the one currently stored, not the one carried in the
// token. A token whose identity was deleted is rejected exactly like a
// request without a token.
func RequireAuth(validator JWTValidator, resolver IdentityResolver, failures FailureRecorder, logger *slog.Logger) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request, reason string, err error) {
		ctx := r.Context()
		logger.WarnContext(ctx, "unauthorized access",
			"reason", reason,
			"request_id", requestcontext.RequestID(ctx),
		)
		if failures != nil {
			failures.IncrementAuthFailures(reason)
		}
		httputil.WriteError(ctx, w, err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				reject(w, r, ReasonMissingToken, dErrors.New(dErrors.CodeUnauthenticated, MsgMissingToken))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				reject(w, r, ReasonInvalidToken, dErrors.Wrap(err, dErrors.CodeInvalidToken, MsgInvalidToken))
				return
			}

			identityID, err := id.ParseIdentityID(claims.UserID)
			if err != nil {
				reject(w, r, ReasonInvalidToken, dErrors.New(dErrors.CodeInvalidToken, MsgInvalidToken))
				return
			}

			principal, err := resolver.FindPrincipal(ctx, identityID)
			if err != nil {
				logger.ErrorContext(ctx, "failed to resolve token identity",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(ctx, w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve identity"))
				return
			}
			if principal == nil {
				reject(w, r, ReasonOrphanToken, dErrors.New(dErrors.CodeUnauthenticated, MsgMissingToken))
				return
			}

			ctx = requestcontext.WithPrincipal(ctx, *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
