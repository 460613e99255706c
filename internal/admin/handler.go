package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	eventmodels "oirla/internal/event/models"
	id "oirla/pkg/domain"
	"oirla/pkg/platform/httputil"
	"oirla/pkg/requestcontext"
)

// AdminService is the moderation surface served by Handler.
type AdminService interface {
	ListArtists(ctx context.Context) ([]artistmodels.WithEmail, error)
	SetValidated(ctx context.Context, artistID id.ArtistID, validated bool) error
	DeleteArtist(ctx context.Context, artistID id.ArtistID) error
	ListEvents(ctx context.Context) ([]eventmodels.WithArtist, error)
	DeleteEvent(ctx context.Context, eventID id.EventID) error
	ListAudit(ctx context.Context, page audit.Page) ([]audit.Record, error)
}

// Handler handles admin moderation endpoints. It expects the admin role
// gate upstream.
type Handler struct {
	service AdminService
	logger  *slog.Logger
}

// New creates a new admin handler
func New(service AdminService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register registers admin routes with the router
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/artists", h.HandleListArtists)
	r.Put("/admin/artists/{id}/validate", h.HandleValidateArtist)
	r.Delete("/admin/artists/{id}", h.HandleDeleteArtist)
	r.Get("/admin/events", h.HandleListEvents)
	r.Delete("/admin/events/{id}", h.HandleDeleteEvent)
	r.Get("/admin/audit", h.HandleListAudit)
}

type messageResponse struct {
	Message string `json:"message"`
}

type validateResponse struct {
	Message   string `json:"message"`
	Validated bool   `json:"validated"`
}

// HandleListArtists returns all artists with their owner's email
func (h *Handler) HandleListArtists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	artists, err := h.service.ListArtists(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to list artists", err)
		return
	}
	if artists == nil {
		artists = []artistmodels.WithEmail{}
	}

	h.logger.InfoContext(ctx, "admin artists list retrieved",
		"request_id", requestcontext.RequestID(ctx),
		"count", len(artists),
	)
	httputil.WriteJSON(w, http.StatusOK, artists)
}

// HandleValidateArtist implements PUT /admin/artists/{id}/validate.
//
// Input: { "validated": true }
// Output: 200 { "message": "...", "validated": true }
func (h *Handler) HandleValidateArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	artistID, err := id.ParseArtistID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(ctx, w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[artistmodels.ValidateRequest](w, r, h.logger)
	if !ok {
		return
	}
	validated := *req.Validated

	if err := h.service.SetValidated(ctx, artistID, validated); err != nil {
		h.fail(ctx, w, "failed to set artist validation", err)
		return
	}

	msg := MsgValidationRemoved
	if validated {
		msg = MsgArtistValidated
	}
	httputil.WriteJSON(w, http.StatusOK, validateResponse{Message: msg, Validated: validated})
}

// HandleDeleteArtist removes an artist together with its identity and events
func (h *Handler) HandleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	artistID, err := id.ParseArtistID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(ctx, w, err)
		return
	}

	if err := h.service.DeleteArtist(ctx, artistID); err != nil {
		h.fail(ctx, w, "failed to delete artist", err)
		return
	}

	h.logger.InfoContext(ctx, "artist deleted",
		"artist_id", artistID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: MsgArtistDeleted})
}

// HandleListEvents returns every event with its artist's name
func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.service.ListEvents(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to list events", err)
		return
	}
	if events == nil {
		events = []eventmodels.WithArtist{}
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleDeleteEvent removes any event
func (h *Handler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID, err := id.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(ctx, w, err)
		return
	}

	if err := h.service.DeleteEvent(ctx, eventID); err != nil {
		h.fail(ctx, w, "failed to delete event", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: MsgEventDeleted})
}

// HandleListAudit returns audit records newest first
func (h *Handler) HandleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := audit.Page{
		Limit:  queryInt(r, "limit", audit.DefaultPageLimit),
		Offset: queryInt(r, "offset", 0),
	}

	records, err := h.service.ListAudit(ctx, page)
	if err != nil {
		h.fail(ctx, w, "failed to get audit records", err)
		return
	}
	if records == nil {
		records = []audit.Record{}
	}

	h.logger.InfoContext(ctx, "admin audit records retrieved",
		"request_id", requestcontext.RequestID(ctx),
		"count", len(records),
	)
	httputil.WriteJSON(w, http.StatusOK, records)
}

// queryInt parses a query parameter, falling back to def when it is absent
// or not a number.
func queryInt(r *http.Request, key string, def int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return def
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(ctx, w, err)
}
