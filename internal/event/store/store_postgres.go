package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oirla/internal/event/models"
	"oirla/internal/platform/database"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

// UpcomingLimit caps the public upcoming listing.
const UpcomingLimit = 10

const eventColumns = `e.id, e.artist_id, e.title,
	to_char(e.event_date, 'YYYY-MM-DD'), to_char(e.event_time, 'HH24:MI'),
	e.venue, e.entry_type, e.price::float8, e.ticket_url, e.flyer_url,
	e.description, e.created_at, e.updated_at`

// PostgresStore persists events in PostgreSQL.
type PostgresStore struct {
	db database.DBTX
}

// NewPostgres constructs a PostgreSQL-backed event store.
func NewPostgres(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the event under the artist owned by identityID. It returns
// sentinel.ErrNotFound when the identity has no artist profile.
func (s *PostgresStore) Create(ctx context.Context, identityID id.IdentityID, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	var artistID uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (
			id, artist_id, title, event_date, event_time, venue, entry_type,
			price, ticket_url, flyer_url, description
		)
		SELECT $1, a.id, $3, $4::date, $5::time, $6, $7, $8, $9, $10, $11
		FROM artists a
		WHERE a.identity_id = $2
		RETURNING artist_id, created_at, updated_at`,
		uuid.UUID(event.ID),
		uuid.UUID(identityID),
		event.Title,
		event.Date,
		event.Time,
		event.Venue,
		string(event.EntryType),
		database.NullFloat(event.Price),
		database.NullString(event.TicketURL),
		database.NullString(event.FlyerURL),
		database.NullString(event.Description),
	).Scan(&artistID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("insert event: %w", err)
	}
	event.ArtistID = id.ArtistID(artistID)
	return nil
}

// ListByOwner returns the events of the artist owned by identityID, latest first.
func (s *PostgresStore) ListByOwner(ctx context.Context, identityID id.IdentityID) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE a.identity_id = $1
		ORDER BY e.event_date DESC, e.event_time DESC`,
		uuid.UUID(identityID),
	)
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	return collectEvents(rows)
}

// FindOwned loads an event through its owner. A missing event yields
// sentinel.ErrNotFound and another artist's event sentinel.ErrForbiddenOwner.
func (s *PostgresStore) FindOwned(ctx context.Context, eventID id.EventID, identityID id.IdentityID) (*models.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE e.id = $1 AND a.identity_id = $2`,
		uuid.UUID(eventID), uuid.UUID(identityID),
	)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.classifyMiss(ctx, eventID)
		}
		return nil, fmt.Errorf("find owned event: %w", err)
	}
	return event, nil
}

// UpdateOwned overwrites the event when it belongs to identityID.
func (s *PostgresStore) UpdateOwned(ctx context.Context, event *models.Event, identityID id.IdentityID) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE events e
		SET title = $3, event_date = $4::date, event_time = $5::time, venue = $6,
		    entry_type = $7, price = $8, ticket_url = $9, flyer_url = $10,
		    description = $11, updated_at = now()
		FROM artists a
		WHERE e.id = $1 AND a.id = e.artist_id AND a.identity_id = $2`,
		uuid.UUID(event.ID),
		uuid.UUID(identityID),
		event.Title,
		event.Date,
		event.Time,
		event.Venue,
		string(event.EntryType),
		database.NullFloat(event.Price),
		database.NullString(event.TicketURL),
		database.NullString(event.FlyerURL),
		database.NullString(event.Description),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return s.requireAffected(ctx, res, event.ID)
}

// DeleteOwned removes the event when it belongs to identityID.
func (s *PostgresStore) DeleteOwned(ctx context.Context, eventID id.EventID, identityID id.IdentityID) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM events e
		USING artists a
		WHERE e.id = $1 AND a.id = e.artist_id AND a.identity_id = $2`,
		uuid.UUID(eventID), uuid.UUID(identityID),
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return s.requireAffected(ctx, res, eventID)
}

// FindByID loads any event regardless of owner.
func (s *PostgresStore) FindByID(ctx context.Context, eventID id.EventID) (*models.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		WHERE e.id = $1`,
		uuid.UUID(eventID),
	)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return event, nil
}

// Delete removes any event regardless of owner.
func (s *PostgresStore) Delete(ctx context.Context, eventID id.EventID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, uuid.UUID(eventID))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("event not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

// ListAll returns every event with its artist name, latest first.
func (s *PostgresStore) ListAll(ctx context.Context) ([]models.WithArtist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`, `+artistColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		ORDER BY e.event_date DESC, e.event_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return collectWithArtist(rows)
}

// ListValidatedBetween returns events of validated artists dated within
// [from, to], both YYYY-MM-DD, in chronological order.
func (s *PostgresStore) ListValidatedBetween(ctx context.Context, from, to string) ([]models.WithArtist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`, `+artistColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE a.validated = TRUE
		  AND e.event_date >= $1::date
		  AND e.event_date <= $2::date
		ORDER BY e.event_date, e.event_time`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return collectWithArtist(rows)
}

// ListUpcoming returns the next events of validated artists from the given
// day on, at most limit of them.
func (s *PostgresStore) ListUpcoming(ctx context.Context, from string, limit int) ([]models.WithArtist, error) {
	if limit <= 0 {
		limit = UpcomingLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`, `+artistColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE a.validated = TRUE
		  AND e.event_date >= $1::date
		ORDER BY e.event_date, e.event_time
		LIMIT $2`,
		from, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return collectWithArtist(rows)
}

// ListUpcomingByArtist returns one validated artist's events from the given day on.
func (s *PostgresStore) ListUpcomingByArtist(ctx context.Context, artistID id.ArtistID, from string) ([]models.WithArtist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`, `+artistColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE a.id = $1
		  AND a.validated = TRUE
		  AND e.event_date >= $2::date
		ORDER BY e.event_date, e.event_time`,
		uuid.UUID(artistID), from,
	)
	if err != nil {
		return nil, fmt.Errorf("list artist events: %w", err)
	}
	return collectWithArtist(rows)
}

// FindValidated loads an event published by a validated artist.
func (s *PostgresStore) FindValidated(ctx context.Context, eventID id.EventID) (*models.WithArtist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`, `+artistColumns+`
		FROM events e
		JOIN artists a ON a.id = e.artist_id
		WHERE e.id = $1 AND a.validated = TRUE`,
		uuid.UUID(eventID),
	)
	event, err := scanWithArtist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find public event: %w", err)
	}
	return event, nil
}

// requireAffected turns a zero-row owner-scoped write into the matching sentinel.
func (s *PostgresStore) requireAffected(ctx context.Context, res sql.Result, eventID id.EventID) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return s.classifyMiss(ctx, eventID)
	}
	return nil
}

// classifyMiss tells a missing event apart from one owned by someone else.
func (s *PostgresStore) classifyMiss(ctx context.Context, eventID id.EventID) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, uuid.UUID(eventID),
	).Scan(&exists); err != nil {
		return fmt.Errorf("check event existence: %w", err)
	}
	if exists {
		return fmt.Errorf("event belongs to another artist: %w", sentinel.ErrForbiddenOwner)
	}
	return fmt.Errorf("event not found: %w", sentinel.ErrNotFound)
}
