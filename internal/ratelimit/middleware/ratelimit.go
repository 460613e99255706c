package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"oirla/internal/ratelimit/models"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/platform/privacy"
	"oirla/pkg/requestcontext"
)

// MsgTooManyRequests is the user-facing text of a 429.
const MsgTooManyRequests = "Demasiadas solicitudes desde esta IP, intenta de nuevo más tarde"

type RateLimiter interface {
	CheckIP(ctx context.Context, ip string) (*models.Result, error)
}

type Middleware struct {
	limiter RateLimiter
	logger  *slog.Logger
}

func New(limiter RateLimiter, logger *slog.Logger) *Middleware {
	return &Middleware{
		limiter: limiter,
		logger:  logger,
	}
}

// RateLimit charges every request to the client address resolved by the
// metadata middleware. A failing store lets the request through.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.limiter.CheckIP(ctx, ip)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to check IP rate limit",
				"error", err,
				"ip_prefix", privacy.AnonymizeIP(ip),
				"request_id", requestcontext.RequestID(ctx),
			)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)
		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			httputil.WriteJSON(w, http.StatusTooManyRequests,
				httputil.NewErrorResponse("rate_limit_exceeded", MsgTooManyRequests))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
