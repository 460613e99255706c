// Package requestcontext carries per-request values (request ID, client
// metadata, authenticated principal, clock) through context.Context.
package requestcontext

import (
	"context"
	"time"

	id "oirla/pkg/domain"
)

type (
	requestIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	principalKey   struct{}
	nowKey         struct{}
	debugErrorsKey struct{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the correlation ID set by the request middleware, or "".
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithClientMetadata stores the resolved client address and User-Agent.
func WithClientMetadata(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, ip)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

func ClientIP(ctx context.Context) string {
	if v, ok := ctx.Value(clientIPKey{}).(string); ok {
		return v
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if v, ok := ctx.Value(userAgentKey{}).(string); ok {
		return v
	}
	return ""
}

// WithPrincipal attaches the authenticated caller.
func WithPrincipal(ctx context.Context, p id.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// Principal returns the authenticated caller and whether one is present.
func Principal(ctx context.Context) (id.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(id.Principal)
	return p, ok
}

// WithTime pins the request clock. Used by tests and for consistent timestamps
// within a single request.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, t)
}

// Now returns the pinned request time or the wall clock in UTC.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return t
	}
	return time.Now().UTC()
}

// WithDebugErrors marks the request as allowed to expose internal error detail.
func WithDebugErrors(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugErrorsKey{}, enabled)
}

func DebugErrors(ctx context.Context) bool {
	v, _ := ctx.Value(debugErrorsKey{}).(bool)
	return v
}
