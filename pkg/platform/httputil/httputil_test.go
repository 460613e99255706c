package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		code   dErrors.Code
		status int
	}{
		{dErrors.CodeUnauthenticated, http.StatusUnauthorized},
		{dErrors.CodeInvalidToken, http.StatusUnauthorized},
		{dErrors.CodeForbidden, http.StatusForbidden},
		{dErrors.CodePolicyViolation, http.StatusBadRequest},
		{dErrors.CodeValidation, http.StatusBadRequest},
		{dErrors.CodeDuplicateEmail, http.StatusBadRequest},
		{dErrors.CodeNotFoundOrUnauthorized, http.StatusNotFound},
		{dErrors.CodeNotFound, http.StatusNotFound},
		{dErrors.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), w, dErrors.New(tc.code, "msg"))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			resp := decodeError(t, w)
			assert.Equal(t, string(tc.code), resp.Error)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, GenericInternalMessage, resp.ErrorDescription)
			} else {
				assert.Equal(t, "msg", resp.ErrorDescription)
			}
			assert.Equal(t, resp.ErrorDescription, resp.Message)
		})
	}
}

func TestWriteError_MessageCarriesUserText(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), w, dErrors.New(dErrors.CodeUnauthenticated, "Credenciales incorrectas"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthenticated", body["error"])
	assert.Equal(t, "Credenciales incorrectas", body["message"])
	assert.Equal(t, "Credenciales incorrectas", body["error_description"])
}

func TestWriteError_SuppressesInternalDetail(t *testing.T) {
	cause := errors.New(`pq: relation "users" does not exist`)

	t.Run("plain errors become a generic internal error", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(context.Background(), w, cause)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "internal_error", resp.Error)
		assert.Equal(t, GenericInternalMessage, resp.ErrorDescription)
		assert.Empty(t, resp.Detail)
	})

	t.Run("wrapped cause is hidden in production", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(context.Background(), w, dErrors.Wrap(cause, dErrors.CodeInternal, "Error en el registro"))

		resp := decodeError(t, w)
		assert.Equal(t, GenericInternalMessage, resp.ErrorDescription)
		assert.Equal(t, GenericInternalMessage, resp.Message)
		assert.NotContains(t, w.Body.String(), "relation")
		assert.NotContains(t, w.Body.String(), "registro")
	})

	t.Run("wrapped cause is shown in development", func(t *testing.T) {
		ctx := requestcontext.WithDebugErrors(context.Background(), true)
		w := httptest.NewRecorder()
		WriteError(ctx, w, dErrors.Wrap(cause, dErrors.CodeInternal, "Error en el registro"))

		resp := decodeError(t, w)
		assert.Equal(t, "Error en el registro", resp.ErrorDescription)
		assert.Equal(t, cause.Error(), resp.Detail)
	})

	t.Run("client errors never carry detail", func(t *testing.T) {
		ctx := requestcontext.WithDebugErrors(context.Background(), true)
		w := httptest.NewRecorder()
		WriteError(ctx, w, dErrors.Wrap(cause, dErrors.CodeValidation, "bad"))

		assert.Empty(t, decodeError(t, w).Detail)
	})
}
