package httputil

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "oirla/pkg/domain-errors"
)

type showRequest struct {
	Title string   `json:"title"`
	Price *float64 `json:"price"`
}

// preparedShow records which preparation hooks ran.
type preparedShow struct {
	Title      string `json:"title"`
	normalized bool
	validated  bool
}

func (r *preparedShow) Normalize() {
	r.normalized = true
	r.Title = strings.TrimSpace(r.Title)
}

func (r *preparedShow) Validate() error {
	r.validated = true
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// policyShow fails validation with a domain error of its own.
type policyShow struct {
	Title string `json:"title"`
}

func (r *policyShow) Validate() error {
	if strings.EqualFold(r.Title, "eminem") {
		return dErrors.New(dErrors.CodePolicyViolation, "El nombre de artista Eminem no está permitido en la plataforma")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes the body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Show","price":1500.5}`))
		rec := httptest.NewRecorder()

		result, ok := DecodeJSON[showRequest](rec, req, discardLogger())

		require.True(t, ok)
		assert.Equal(t, "Show", result.Title)
		require.NotNil(t, result.Price)
		assert.InDelta(t, 1500.5, *result.Price, 0.001)
	})

	tests := []struct {
		name    string
		body    io.Reader
		limit   int64
		message string
	}{
		{"malformed json", strings.NewReader(`{title}`), 0, MsgInvalidBody},
		{"empty body", strings.NewReader(""), 0, MsgEmptyBody},
		{"body over the limit", strings.NewReader(`{"title":"` + strings.Repeat("x", 64) + `"}`), 16, MsgBodyTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", tt.body)
			rec := httptest.NewRecorder()
			if tt.limit > 0 {
				req.Body = http.MaxBytesReader(rec, req.Body, tt.limit)
			}

			result, ok := DecodeJSON[showRequest](rec, req, discardLogger())

			assert.False(t, ok)
			assert.Nil(t, result)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, string(dErrors.CodeBadRequest), resp.Error)
			assert.Equal(t, tt.message, resp.ErrorDescription)
		})
	}
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"  Show  "}`))
		rec := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[preparedShow](rec, req, discardLogger())

		require.True(t, ok)
		assert.True(t, result.normalized)
		assert.True(t, result.validated)
		assert.Equal(t, "Show", result.Title)
	})

	t.Run("blank after normalizing fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"   "}`))
		rec := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[preparedShow](rec, req, discardLogger())

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, string(dErrors.CodeValidation), resp.Error)
		assert.Equal(t, "title is required", resp.ErrorDescription)
	})

	t.Run("keeps the code of a domain error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"EMINEM"}`))
		rec := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[policyShow](rec, req, discardLogger())

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(dErrors.CodePolicyViolation), decodeError(t, rec).Error)
	})

	t.Run("types without hooks pass through", func(t *testing.T) {
		assert.NoError(t, PrepareRequest(&showRequest{}))
	})
}
