package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"oirla/internal/artist/models"
	eventmodels "oirla/internal/event/models"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/platform/middleware/auth"
	"oirla/pkg/requestcontext"
)

// Success messages.
const (
	MsgProfileUpdated = "Perfil actualizado exitosamente"
	MsgEventCreated   = "Evento creado exitosamente"
	MsgEventUpdated   = "Evento actualizado exitosamente"
	MsgEventDeleted   = "Evento eliminado exitosamente"
)

// Service is the artist self-service surface. Every call is scoped to owner.
type Service interface {
	GetProfile(ctx context.Context, owner id.IdentityID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, owner id.IdentityID, req *models.UpdateProfileRequest) (*models.Profile, error)
	ListEvents(ctx context.Context, owner id.IdentityID) ([]eventmodels.Event, error)
	CreateEvent(ctx context.Context, owner id.IdentityID, in *eventmodels.Input) (*eventmodels.Event, error)
	UpdateEvent(ctx context.Context, owner id.IdentityID, eventID id.EventID, in *eventmodels.Input) (*eventmodels.Event, error)
	DeleteEvent(ctx context.Context, owner id.IdentityID, eventID id.EventID) error
}

// Handler serves /artist routes. It expects the artist role gate upstream.
type Handler struct {
	artists Service
	logger  *slog.Logger
}

func New(artists Service, logger *slog.Logger) *Handler {
	return &Handler{artists: artists, logger: logger}
}

// Register mounts the artist routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/artist/profile", h.HandleGetProfile)
	r.Put("/artist/profile", h.HandleUpdateProfile)
	r.Get("/artist/events", h.HandleListEvents)
	r.Post("/artist/events", h.HandleCreateEvent)
	r.Put("/artist/events/{id}", h.HandleUpdateEvent)
	r.Delete("/artist/events/{id}", h.HandleDeleteEvent)
}

type messageResponse struct {
	Message string `json:"message"`
}

type eventCreatedResponse struct {
	Message string     `json:"message"`
	EventID id.EventID `json:"event_id"`
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	profile, err := h.artists.GetProfile(ctx, owner)
	if err != nil {
		h.fail(ctx, w, "get profile failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile implements PUT /artist/profile. The validated flag is
// not part of the request and cannot be changed here.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateProfileRequest](w, r, h.logger)
	if !ok {
		return
	}

	if _, err := h.artists.UpdateProfile(ctx, owner, req); err != nil {
		h.fail(ctx, w, "update profile failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: MsgProfileUpdated})
}

func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	events, err := h.artists.ListEvents(ctx, owner)
	if err != nil {
		h.fail(ctx, w, "list events failed", err)
		return
	}
	if events == nil {
		events = []eventmodels.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleCreateEvent implements POST /artist/events.
//
// Output: 201 { "message": "...", "event_id": "..." }
func (h *Handler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	in, ok := httputil.DecodeAndPrepare[eventmodels.Input](w, r, h.logger)
	if !ok {
		return
	}

	event, err := h.artists.CreateEvent(ctx, owner, in)
	if err != nil {
		h.fail(ctx, w, "create event failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, eventCreatedResponse{Message: MsgEventCreated, EventID: event.ID})
}

func (h *Handler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	eventID, err := id.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(ctx, w, err)
		return
	}
	in, ok := httputil.DecodeAndPrepare[eventmodels.Input](w, r, h.logger)
	if !ok {
		return
	}

	if _, err := h.artists.UpdateEvent(ctx, owner, eventID, in); err != nil {
		h.fail(ctx, w, "update event failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: MsgEventUpdated})
}

func (h *Handler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	eventID, err := id.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(ctx, w, err)
		return
	}

	if err := h.artists.DeleteEvent(ctx, owner, eventID); err != nil {
		h.fail(ctx, w, "delete event failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: MsgEventDeleted})
}

// owner reads the authenticated identity. Its absence means the route was
// mounted without the auth middleware.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (id.IdentityID, bool) {
	p, ok := requestcontext.Principal(r.Context())
	if !ok {
		httputil.WriteError(r.Context(), w, dErrors.New(dErrors.CodeUnauthenticated, auth.MsgMissingToken))
		return id.IdentityID{}, false
	}
	return p.ID, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(ctx, w, err)
}
