package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"oirla/internal/auth/models"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/requestcontext"
)

// Service defines the interface for authentication operations.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error)
}

// Handler serves registration and login.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler with the given service and logger.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, logger: logger}
}

// Register registers the public auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// HandleRegister implements POST /auth/register.
//
// Input: { "email": "a@x.com", "password": "secret1", "name": "Banda X", "phone": "..." }
// Output: 201 { "message": "...", "token": "...", "user": { ... } }
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.auth.Register(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(ctx, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, models.AuthResponse{
		Message: models.MsgRegistered,
		Token:   res.Token,
		User:    res.User,
	})
}

// HandleLogin implements POST /auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.auth.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(ctx, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.AuthResponse{
		Message: models.MsgLoggedIn,
		Token:   res.Token,
		User:    res.User,
	})
}
