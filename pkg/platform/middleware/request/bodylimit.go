package request

import (
	"net/http"

	"oirla/pkg/platform/httputil"
)

// MsgBodyTooLarge is returned when a declared Content-Length exceeds the limit.
const MsgBodyTooLarge = "El cuerpo de la solicitud es demasiado grande"

// BodyLimit caps request bodies at maxBytes. A declared Content-Length over
// the cap is refused with 413 before the handler runs; undeclared bodies are
// cut off by http.MaxBytesReader and surface as a decode error.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, httputil.NewErrorResponse("payload_too_large", MsgBodyTooLarge))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
