package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsizedReader hides its length so httptest cannot set Content-Length.
type unsizedReader struct{ io.Reader }

func TestBodyLimit(t *testing.T) {
	const maxBytes int64 = 100

	t.Run("bodies up to the limit reach the handler", func(t *testing.T) {
		for _, size := range []int{0, 50, 100} {
			var got []byte
			handler := BodyLimit(maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var err error
				got, err = io.ReadAll(r.Body)
				require.NoError(t, err)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/artist/events", strings.NewReader(strings.Repeat("x", size)))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, got, size)
		}
	})

	t.Run("declared oversize body is refused before the handler", func(t *testing.T) {
		called := false
		handler := BodyLimit(maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodPut, "/api/artist/profile", strings.NewReader(strings.Repeat("x", 200)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, MsgBodyTooLarge, body["error_description"])
	})

	t.Run("undeclared oversize body fails on read", func(t *testing.T) {
		var readErr error
		handler := BodyLimit(maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, readErr = io.ReadAll(r.Body)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", unsizedReader{strings.NewReader(strings.Repeat("x", 200))})
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var maxErr *http.MaxBytesError
		require.True(t, errors.As(readErr, &maxErr))
		assert.Equal(t, maxBytes, maxErr.Limit)
	})

	t.Run("GET without body passes through", func(t *testing.T) {
		handler := BodyLimit(maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/upcoming", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
