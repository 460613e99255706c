// Package httptransport assembles the HTTP surface: middleware, the /api
// route tree with its role gates, and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	id "oirla/pkg/domain"
	"oirla/pkg/platform/middleware/auth"
	"oirla/pkg/platform/middleware/metadata"
	request "oirla/pkg/platform/middleware/request"
	"oirla/pkg/platform/middleware/requesttime"
	"oirla/pkg/platform/middleware/role"
)

// RouteRegistrar mounts a feature's routes.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// Metrics is what the router reports to.
type Metrics interface {
	auth.FailureRecorder
	request.LatencyObserver
}

// Config carries the transport settings read from the environment.
type Config struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	DebugErrors    bool
	Metadata       *metadata.Config
}

// Deps groups the feature handlers and the collaborators the middleware needs.
type Deps struct {
	Auth    RouteRegistrar
	Artist  RouteRegistrar
	Admin   RouteRegistrar
	Public  RouteRegistrar
	Health  RouteRegistrar
	Metrics http.Handler

	// RateLimit guards /api. Nil disables it.
	RateLimit func(http.Handler) http.Handler

	Tokens     auth.JWTValidator
	Identities auth.IdentityResolver
	Recorder   Metrics
}

// NewRouter wires every endpoint behind the shared middleware stack.
//
// Role gates run after RequireAuth, so an unauthenticated request to a gated
// route is always rejected with 401 before any role is inspected.
func NewRouter(cfg Config, deps Deps, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.SecureHeaders)
	r.Use(metadata.NewMiddleware(cfg.Metadata).Handler)
	r.Use(requesttime.Middleware)
	r.Use(request.DebugErrors(cfg.DebugErrors))
	r.Use(request.Logger(logger))

	if deps.Health != nil {
		deps.Health.Register(r)
	}
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		r.Use(request.Latency(deps.Recorder))
		r.Use(request.Timeout(cfg.RequestTimeout))
		r.Use(request.BodyLimit(cfg.MaxBodyBytes))
		r.Use(request.ContentTypeJSON)

		deps.Auth.Register(r)
		deps.Public.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(deps.Tokens, deps.Identities, deps.Recorder, logger))

			r.Group(func(r chi.Router) {
				r.Use(role.Require(id.RoleArtist, deps.Recorder, logger))
				deps.Artist.Register(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(role.Require(id.RoleAdmin, deps.Recorder, logger))
				deps.Admin.Register(r)
			})
		})
	})

	return r
}
