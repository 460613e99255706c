package admin

import (
	"context"
	"errors"
	"log/slog"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/denylist"
	eventmodels "oirla/internal/event/models"
	"oirla/internal/platform/metrics"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

// User-facing messages.
const (
	MsgArtistNotFound    = "Artista no encontrado"
	MsgEventNotFound     = "Evento no encontrado"
	MsgArtistValidated   = "Artista validado exitosamente"
	MsgValidationRemoved = "Validación removida"
	MsgArtistDeleted     = "Artista eliminado exitosamente"
	MsgEventDeleted      = "Evento eliminado exitosamente"
	MsgCannotDeleteSelf  = "No puedes eliminar tu propia cuenta"
)

// ArtistStore defines the artist storage operations available to admins.
type ArtistStore interface {
	ListWithEmail(ctx context.Context) ([]artistmodels.WithEmail, error)
	FindByID(ctx context.Context, artistID id.ArtistID) (*artistmodels.Profile, error)
	SetValidated(ctx context.Context, artistID id.ArtistID, validated bool) error
}

// UserStore deletes identities. Deleting one cascades to its profile and events.
type UserStore interface {
	Delete(ctx context.Context, identityID id.IdentityID) error
}

// EventStore defines unscoped event operations.
type EventStore interface {
	ListAll(ctx context.Context) ([]eventmodels.WithArtist, error)
	FindByID(ctx context.Context, eventID id.EventID) (*eventmodels.Event, error)
	Delete(ctx context.Context, eventID id.EventID) error
}

// Service provides admin-level moderation over artists, events and the
// audit trail.
type Service struct {
	artists ArtistStore
	users   UserStore
	events  EventStore
	auditor *audit.Recorder
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a new admin service. auditor both records moderation
// actions and serves the audit history.
func NewService(artists ArtistStore, users UserStore, events EventStore, auditor *audit.Recorder, opts ...Option) *Service {
	svc := &Service{artists: artists, users: users, events: events, auditor: auditor}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// ListArtists returns every profile with its owner's email, newest first.
func (s *Service) ListArtists(ctx context.Context) ([]artistmodels.WithEmail, error) {
	artists, err := s.artists.ListWithEmail(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener artistas")
	}
	return artists, nil
}

// SetValidated moves an artist's validated flag. Setting it to true on a
// denylisted name is refused and leaves the flag untouched. Writing the
// current value again is allowed and still audited.
func (s *Service) SetValidated(ctx context.Context, artistID id.ArtistID, validated bool) error {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return err
	}

	if validated {
		if err := denylist.Check(artist.Name); err != nil {
			s.logger.WarnContext(ctx, "denylisted artist validation refused",
				"site", "validate",
				"artist_id", artistID.String(),
				"request_id", requestcontext.RequestID(ctx),
			)
			s.metrics.IncrementPolicyViolations("validate")
			return err
		}
	}

	if err := s.artists.SetValidated(ctx, artistID, validated); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, MsgArtistNotFound)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Error al validar artista")
	}

	action := audit.ActionInvalidateArtist
	if validated {
		action = audit.ActionValidateArtist
	}
	s.auditor.Record(ctx, audit.Entry{
		Action:     action,
		EntityKind: audit.EntityArtist,
		EntityID:   artistID.UUID(),
		Prior:      audit.Snapshot{"validated": artist.Validated},
		New:        audit.Snapshot{"validated": validated},
	})
	return nil
}

// DeleteArtist removes the artist's identity, which cascades to the profile
// and its events. An admin cannot delete the profile owned by their own
// identity: the DELETE_ARTIST record references the actor, which must still
// exist when it is appended.
func (s *Service) DeleteArtist(ctx context.Context, artistID id.ArtistID) error {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return err
	}

	if caller, ok := requestcontext.Principal(ctx); ok && caller.ID == artist.IdentityID {
		s.logger.WarnContext(ctx, "admin self-deletion refused",
			"artist_id", artistID.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		return dErrors.New(dErrors.CodePolicyViolation, MsgCannotDeleteSelf)
	}

	if err := s.users.Delete(ctx, artist.IdentityID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, MsgArtistNotFound)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Error al eliminar artista")
	}

	s.auditor.Record(ctx, audit.Entry{
		Action:     audit.ActionDeleteArtist,
		EntityKind: audit.EntityArtist,
		EntityID:   artistID.UUID(),
		Prior:      artist.Snapshot(),
	})
	return nil
}

// ListEvents returns every event with its artist's name.
func (s *Service) ListEvents(ctx context.Context) ([]eventmodels.WithArtist, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener eventos")
	}
	return events, nil
}

// DeleteEvent removes any event regardless of owner.
func (s *Service) DeleteEvent(ctx context.Context, eventID id.EventID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, MsgEventNotFound)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Error al eliminar evento")
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, MsgEventNotFound)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Error al eliminar evento")
	}

	s.auditor.Record(ctx, audit.Entry{
		Action:     audit.ActionAdminDeleteEvent,
		EntityKind: audit.EntityEvent,
		EntityID:   eventID.UUID(),
		Prior:      event.Snapshot(),
	})
	return nil
}

// ListAudit returns audit records newest first.
func (s *Service) ListAudit(ctx context.Context, page audit.Page) ([]audit.Record, error) {
	records, err := s.auditor.List(ctx, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener auditoría")
	}
	return records, nil
}

func (s *Service) findArtist(ctx context.Context, artistID id.ArtistID) (*artistmodels.Profile, error) {
	artist, err := s.artists.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, MsgArtistNotFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener artista")
	}
	return artist, nil
}
