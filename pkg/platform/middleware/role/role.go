// Package role gates authenticated routes by the caller's stored role.
package role

import (
	"log/slog"
	"net/http"

	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/platform/middleware/auth"
	"oirla/pkg/requestcontext"
)

// ReasonWrongRole is reported to the failure recorder on a role mismatch.
const ReasonWrongRole = "wrong_role"

// DeniedMessage returns the rejection text for a gate requiring r.
func DeniedMessage(r id.Role) string {
	switch r {
	case id.RoleAdmin:
		return "Acceso denegado. Se requiere rol de administrador."
	case id.RoleArtist:
		return "Acceso denegado. Se requiere rol de artista."
	default:
		return "Acceso denegado."
	}
}

// Require admits only principals whose role equals required. There is no
// hierarchy: an admin does not pass an artist gate. Must be mounted after
// auth.RequireAuth.
func Require(required id.Role, failures auth.FailureRecorder, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			principal, ok := requestcontext.Principal(ctx)
			if !ok {
				httputil.WriteError(ctx, w, dErrors.New(dErrors.CodeUnauthenticated, auth.MsgMissingToken))
				return
			}
			if principal.Role != required {
				logger.WarnContext(ctx, "forbidden - role mismatch",
					"required_role", string(required),
					"actual_role", string(principal.Role),
					"request_id", requestcontext.RequestID(ctx),
				)
				if failures != nil {
					failures.IncrementAuthFailures(ReasonWrongRole)
				}
				httputil.WriteError(ctx, w, dErrors.New(dErrors.CodeForbidden, DeniedMessage(required)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
