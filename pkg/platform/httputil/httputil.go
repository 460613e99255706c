package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

// GenericInternalMessage is the only text an unexpected failure shows outside
// development mode.
const GenericInternalMessage = "Algo salió mal!"

// ErrorResponse is the JSON envelope for every rejection. Message repeats the
// human-readable text under the key the web client displays.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Message          string `json:"message,omitempty"`
	Detail           string `json:"detail,omitempty"`
}

// NewErrorResponse builds the envelope for a code and its user-facing text.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, ErrorDescription: message, Message: message}
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError centralizes domain error translation to HTTP responses.
// Internal failures never expose their cause unless the request was marked
// for debug errors (development mode).
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		domainErr = &dErrors.Error{Code: dErrors.CodeInternal, Err: err}
	}

	status := DomainCodeToHTTPStatus(domainErr.Code)
	message := domainErr.Message
	var detail string
	if status == http.StatusInternalServerError {
		debug := requestcontext.DebugErrors(ctx)
		if !debug || message == "" {
			message = GenericInternalMessage
		}
		if debug && domainErr.Err != nil {
			detail = domainErr.Err.Error()
		}
	}
	response := NewErrorResponse(string(domainErr.Code), message)
	response.Detail = detail
	WriteJSON(w, status, response)
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeUnauthenticated, dErrors.CodeInvalidToken:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodePolicyViolation, dErrors.CodeDuplicateEmail:
		return http.StatusBadRequest
	case dErrors.CodeNotFound, dErrors.CodeNotFoundOrUnauthorized:
		return http.StatusNotFound
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
