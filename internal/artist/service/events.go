package service

import (
	"context"
	"errors"

	"oirla/internal/audit"
	eventmodels "oirla/internal/event/models"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

// ListEvents returns the caller's events, latest first.
func (s *Service) ListEvents(ctx context.Context, owner id.IdentityID) ([]eventmodels.Event, error) {
	events, err := s.events.ListByOwner(ctx, owner)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener eventos")
	}
	return events, nil
}

// CreateEvent publishes a new event under the caller's profile.
func (s *Service) CreateEvent(ctx context.Context, owner id.IdentityID, in *eventmodels.Input) (*eventmodels.Event, error) {
	event := &eventmodels.Event{ID: id.NewEventID()}
	event.Apply(in)

	if err := s.events.Create(ctx, owner, event); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, MsgArtistNotFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al crear el evento")
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    owner,
		Action:     audit.ActionCreateEvent,
		EntityKind: audit.EntityEvent,
		EntityID:   event.ID.UUID(),
		New:        event.Snapshot(),
	})
	return event, nil
}

// UpdateEvent overwrites one of the caller's events.
func (s *Service) UpdateEvent(ctx context.Context, owner id.IdentityID, eventID id.EventID, in *eventmodels.Input) (*eventmodels.Event, error) {
	event, err := s.events.FindOwned(ctx, eventID, owner)
	if err != nil {
		return nil, s.ownedEventError(ctx, err, owner, eventID, "Error al actualizar el evento")
	}
	prior := event.Snapshot()

	event.Apply(in)
	if err := s.events.UpdateOwned(ctx, event, owner); err != nil {
		return nil, s.ownedEventError(ctx, err, owner, eventID, "Error al actualizar el evento")
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    owner,
		Action:     audit.ActionUpdateEvent,
		EntityKind: audit.EntityEvent,
		EntityID:   eventID.UUID(),
		Prior:      prior,
		New:        event.Snapshot(),
	})
	return event, nil
}

// DeleteEvent removes one of the caller's events.
func (s *Service) DeleteEvent(ctx context.Context, owner id.IdentityID, eventID id.EventID) error {
	event, err := s.events.FindOwned(ctx, eventID, owner)
	if err != nil {
		return s.ownedEventError(ctx, err, owner, eventID, "Error al eliminar el evento")
	}
	if err := s.events.DeleteOwned(ctx, eventID, owner); err != nil {
		return s.ownedEventError(ctx, err, owner, eventID, "Error al eliminar el evento")
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    owner,
		Action:     audit.ActionDeleteEvent,
		EntityKind: audit.EntityEvent,
		EntityID:   eventID.UUID(),
		Prior:      event.Snapshot(),
	})
	return nil
}

// ownedEventError collapses a missing and a foreign event into one outcome.
// The distinction only reaches the log.
func (s *Service) ownedEventError(ctx context.Context, err error, owner id.IdentityID, eventID id.EventID, internalMsg string) error {
	var reason string
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		reason = "missing"
	case errors.Is(err, sentinel.ErrForbiddenOwner):
		reason = "foreign"
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internalMsg)
	}
	s.logger.InfoContext(ctx, "event access refused",
		"reason", reason,
		"user_id", owner.String(),
		"event_id", eventID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return dErrors.New(dErrors.CodeNotFoundOrUnauthorized, MsgEventNotFoundOrForeign)
}
