// Package public serves the unauthenticated read-only browsing surface. Only
// validated artists and their events are ever visible here.
package public

import (
	"context"
	"errors"
	"log/slog"
	"time"

	artistmodels "oirla/internal/artist/models"
	eventmodels "oirla/internal/event/models"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

const (
	MsgEventNotFound = "Evento no encontrado"
	MsgInvalidMonth  = "Mes inválido"

	DefaultUpcomingLimit = 10

	dateLayout = "2006-01-02"
)

// EventStore is the validated-only event read model.
type EventStore interface {
	ListValidatedBetween(ctx context.Context, from, to string) ([]eventmodels.WithArtist, error)
	ListUpcoming(ctx context.Context, from string, limit int) ([]eventmodels.WithArtist, error)
	ListUpcomingByArtist(ctx context.Context, artistID id.ArtistID, from string) ([]eventmodels.WithArtist, error)
	FindValidated(ctx context.Context, eventID id.EventID) (*eventmodels.WithArtist, error)
}

// ArtistStore lists validated artists.
type ArtistStore interface {
	ListValidated(ctx context.Context) ([]artistmodels.Profile, error)
}

// Artist is the public card of a validated artist.
type Artist struct {
	ID             id.ArtistID `json:"id"`
	Name           string      `json:"name"`
	PhotoURL       string      `json:"photo_url,omitempty"`
	Instagram      string      `json:"instagram,omitempty"`
	Spotify        string      `json:"spotify,omitempty"`
	YouTubeChannel string      `json:"youtube_channel,omitempty"`
}

type Service struct {
	events        EventStore
	artists       ArtistStore
	upcomingLimit int
	logger        *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithUpcomingLimit caps how many events Upcoming returns.
func WithUpcomingLimit(n int) Option {
	return func(s *Service) {
		s.upcomingLimit = n
	}
}

func NewService(events EventStore, artists ArtistStore, opts ...Option) *Service {
	svc := &Service{events: events, artists: artists, upcomingLimit: DefaultUpcomingLimit}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// MonthRange returns the first and last day of a calendar month as
// YYYY-MM-DD strings.
func MonthRange(year, month int) (string, string, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return "", "", dErrors.New(dErrors.CodeValidation, MsgInvalidMonth)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout), nil
}

// Calendar returns the events of validated artists within one month.
func (s *Service) Calendar(ctx context.Context, year, month int) ([]eventmodels.WithArtist, error) {
	from, to, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListValidatedBetween(ctx, from, to)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener calendario")
	}
	return events, nil
}

// Upcoming returns the next events of validated artists, starting today.
func (s *Service) Upcoming(ctx context.Context) ([]eventmodels.WithArtist, error) {
	events, err := s.events.ListUpcoming(ctx, today(ctx), s.upcomingLimit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener eventos")
	}
	return events, nil
}

// Event returns one event if its artist is validated.
func (s *Service) Event(ctx context.Context, eventID id.EventID) (*eventmodels.WithArtist, error) {
	event, err := s.events.FindValidated(ctx, eventID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, MsgEventNotFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener evento")
	}
	return event, nil
}

// Artists returns validated artists ordered by name.
func (s *Service) Artists(ctx context.Context) ([]Artist, error) {
	profiles, err := s.artists.ListValidated(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener artistas")
	}
	out := make([]Artist, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Artist{
			ID:             p.ID,
			Name:           p.Name,
			PhotoURL:       p.PhotoURL,
			Instagram:      p.Instagram,
			Spotify:        p.Spotify,
			YouTubeChannel: p.YouTubeChannel,
		})
	}
	return out, nil
}

// ArtistEvents returns the upcoming events of one validated artist. An
// unknown or unvalidated artist yields an empty list.
func (s *Service) ArtistEvents(ctx context.Context, artistID id.ArtistID) ([]eventmodels.WithArtist, error) {
	events, err := s.events.ListUpcomingByArtist(ctx, artistID, today(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error al obtener eventos del artista")
	}
	return events, nil
}

func today(ctx context.Context) string {
	return requestcontext.Now(ctx).Format(dateLayout)
}
