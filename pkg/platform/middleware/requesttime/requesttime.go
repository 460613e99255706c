// Package requesttime pins a single "now" per request so that the audit
// record and the row timestamps written by one request agree.
package requesttime

import (
	"net/http"
	"time"

	"oirla/pkg/requestcontext"
)

// Middleware captures the UTC time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
