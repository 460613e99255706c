package service

import (
	"context"
	"errors"
	"log/slog"

	"oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/denylist"
	eventmodels "oirla/internal/event/models"
	"oirla/internal/platform/metrics"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

// User-facing failure messages.
const (
	MsgProfileNotFound        = "Perfil no encontrado"
	MsgArtistNotFound         = "Artista no encontrado"
	MsgEventNotFoundOrForeign = "Evento no encontrado o no autorizado"
)

// ProfileStore reads and writes the caller's own profile.
// Error Contract: methods return sentinel.ErrNotFound when the identity has no profile.
type ProfileStore interface {
	FindByIdentity(ctx context.Context, identityID id.IdentityID) (*models.Profile, error)
	UpdateByIdentity(ctx context.Context, profile *models.Profile) error
}

// EventStore is scoped to the events of one owner. Owner-scoped methods
// return sentinel.ErrNotFound for a missing event and
// sentinel.ErrForbiddenOwner for another artist's event.
type EventStore interface {
	Create(ctx context.Context, identityID id.IdentityID, event *eventmodels.Event) error
	ListByOwner(ctx context.Context, identityID id.IdentityID) ([]eventmodels.Event, error)
	FindOwned(ctx context.Context, eventID id.EventID, identityID id.IdentityID) (*eventmodels.Event, error)
	UpdateOwned(ctx context.Context, event *eventmodels.Event, identityID id.IdentityID) error
	DeleteOwned(ctx context.Context, eventID id.EventID, identityID id.IdentityID) error
}

// Service implements artist self-service: profile and own events.
type Service struct {
	profiles ProfileStore
	events   EventStore
	auditor  *audit.Recorder
	logger   *slog.Logger
	metrics  *metrics.Metrics
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

// New requires the audit recorder so event writes always reach the
// configured audit store.
func New(profiles ProfileStore, events EventStore, auditor *audit.Recorder, opts ...Option) *Service {
	svc := &Service{profiles: profiles, events: events, auditor: auditor}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// GetProfile returns the caller's profile.
func (s *Service) GetProfile(ctx context.Context, owner id.IdentityID) (*models.Profile, error) {
	profile, err := s.profiles.FindByIdentity(ctx, owner)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, MsgProfileNotFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener el perfil")
	}
	return profile, nil
}

// UpdateProfile replaces the caller's editable profile fields. A denylisted
// name is rejected before the profile is read.
func (s *Service) UpdateProfile(ctx context.Context, owner id.IdentityID, req *models.UpdateProfileRequest) (*models.Profile, error) {
	if err := denylist.CheckName(req.Name); err != nil {
		s.logger.WarnContext(ctx, "denylisted artist name rejected",
			"site", "profile",
			"user_id", owner.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		s.metrics.IncrementPolicyViolations("profile")
		return nil, err
	}

	profile, err := s.GetProfile(ctx, owner)
	if err != nil {
		return nil, err
	}
	prior := profile.Snapshot()

	profile.Apply(req)
	if err := s.profiles.UpdateByIdentity(ctx, profile); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, MsgProfileNotFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al actualizar el perfil")
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    owner,
		Action:     audit.ActionUpdateProfile,
		EntityKind: audit.EntityArtist,
		EntityID:   profile.ID.UUID(),
		Prior:      prior,
		New:        profile.Snapshot(),
	})
	return profile, nil
}
