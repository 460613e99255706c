package public

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"oirla/internal/event/models"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/requestcontext"
)

// Handler serves /public routes. No authentication is required.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/public/calendar/{year}/{month}", h.HandleCalendar)
	r.Get("/public/upcoming", h.HandleUpcoming)
	r.Get("/public/event/{id}", h.HandleEvent)
	r.Get("/public/artists", h.HandleArtists)
	r.Get("/public/artist/{id}/events", h.HandleArtistEvents)
}

func (h *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	year, yerr := strconv.Atoi(chi.URLParam(r, "year"))
	month, merr := strconv.Atoi(chi.URLParam(r, "month"))
	if yerr != nil || merr != nil {
		httputil.WriteError(ctx, w, dErrors.New(dErrors.CodeValidation, MsgInvalidMonth))
		return
	}

	events, err := h.service.Calendar(ctx, year, month)
	if err != nil {
		h.fail(w, r, "calendar query failed", err)
		return
	}
	writeEvents(w, events)
}

func (h *Handler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.Upcoming(r.Context())
	if err != nil {
		h.fail(w, r, "upcoming query failed", err)
		return
	}
	writeEvents(w, events)
}

func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID, err := id.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		// Unparseable ids cannot name a published event.
		httputil.WriteError(ctx, w, dErrors.New(dErrors.CodeNotFound, MsgEventNotFound))
		return
	}

	event, err := h.service.Event(ctx, eventID)
	if err != nil {
		h.fail(w, r, "event query failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) HandleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.Artists(r.Context())
	if err != nil {
		h.fail(w, r, "artists query failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, artists)
}

func (h *Handler) HandleArtistEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	artistID, err := id.ParseArtistID(chi.URLParam(r, "id"))
	if err != nil {
		writeEvents(w, nil)
		return
	}

	events, err := h.service.ArtistEvents(ctx, artistID)
	if err != nil {
		h.fail(w, r, "artist events query failed", err)
		return
	}
	writeEvents(w, events)
}

func writeEvents(w http.ResponseWriter, events []models.WithArtist) {
	if events == nil {
		events = []models.WithArtist{}
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(ctx, w, err)
}
