package store

import (
	"database/sql"
	"fmt"

	"oirla/internal/event/models"
	"oirla/internal/platform/database"
	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

const artistColumns = `a.name, a.photo_url, a.phone, a.website, a.instagram,
	a.spotify, a.apple_music, a.tidal, a.youtube_music, a.youtube_channel`

type scanner interface {
	Scan(dest ...any) error
}

type eventRow struct {
	id          uuid.UUID
	artistID    uuid.UUID
	price       sql.NullFloat64
	ticketURL   sql.NullString
	flyerURL    sql.NullString
	description sql.NullString
	entryType   string
}

func (r *eventRow) targets(e *models.Event) []any {
	return []any{
		&r.id, &r.artistID, &e.Title, &e.Date, &e.Time, &e.Venue, &r.entryType,
		&r.price, &r.ticketURL, &r.flyerURL, &r.description, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (r *eventRow) fill(e *models.Event) {
	e.ID = id.EventID(r.id)
	e.ArtistID = id.ArtistID(r.artistID)
	e.EntryType = models.EntryType(r.entryType)
	e.Price = database.FloatPtr(r.price)
	e.TicketURL = r.ticketURL.String
	e.FlyerURL = r.flyerURL.String
	e.Description = r.description.String
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
}

func scanEvent(row scanner) (*models.Event, error) {
	var (
		e models.Event
		r eventRow
	)
	if err := row.Scan(r.targets(&e)...); err != nil {
		return nil, err
	}
	r.fill(&e)
	return &e, nil
}

func scanWithArtist(row scanner) (*models.WithArtist, error) {
	var (
		e models.WithArtist
		r eventRow
		// photo, phone, website, instagram, spotify, apple, tidal, ytMusic, ytChannel
		artist [9]sql.NullString
	)
	dest := r.targets(&e.Event)
	dest = append(dest, &e.ArtistName)
	for i := range artist {
		dest = append(dest, &artist[i])
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	r.fill(&e.Event)
	e.ArtistPhoto = artist[0].String
	e.ArtistPhone = artist[1].String
	e.Website = artist[2].String
	e.Instagram = artist[3].String
	e.Spotify = artist[4].String
	e.AppleMusic = artist[5].String
	e.Tidal = artist[6].String
	e.YouTubeMusic = artist[7].String
	e.YouTubeChannel = artist[8].String
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]models.Event, error) {
	defer rows.Close()
	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func collectWithArtist(rows *sql.Rows) ([]models.WithArtist, error) {
	defer rows.Close()
	events := make([]models.WithArtist, 0)
	for rows.Next() {
		e, err := scanWithArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
