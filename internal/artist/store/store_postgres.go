package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oirla/internal/artist/models"
	"oirla/internal/platform/database"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

const profileColumns = `a.id, a.identity_id, a.name, a.photo_url, a.phone, a.website,
	a.spotify, a.apple_music, a.tidal, a.youtube_music, a.youtube_channel,
	a.instagram, a.validated, a.created_at, a.updated_at`

// PostgresStore persists artist profiles in PostgreSQL.
type PostgresStore struct {
	db database.DBTX
}

// NewPostgres constructs a PostgreSQL-backed artist store. db may be a
// transaction, as registration does.
func NewPostgres(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return fmt.Errorf("artist profile is required")
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (
			id, identity_id, name, photo_url, phone, website, spotify, apple_music,
			tidal, youtube_music, youtube_channel, instagram, validated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`,
		uuid.UUID(profile.ID),
		uuid.UUID(profile.IdentityID),
		profile.Name,
		database.NullString(profile.PhotoURL),
		database.NullString(profile.Phone),
		database.NullString(profile.Website),
		database.NullString(profile.Spotify),
		database.NullString(profile.AppleMusic),
		database.NullString(profile.Tidal),
		database.NullString(profile.YouTubeMusic),
		database.NullString(profile.YouTubeChannel),
		database.NullString(profile.Instagram),
		profile.Validated,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("artist profile already exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert artist profile: %w", err)
	}
	return nil
}

// FindByIdentity loads the profile owned by identityID.
func (s *PostgresStore) FindByIdentity(ctx context.Context, identityID id.IdentityID) (*models.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM artists a
		WHERE a.identity_id = $1`,
		uuid.UUID(identityID),
	)
	return s.one(row, "find artist by identity")
}

func (s *PostgresStore) FindByID(ctx context.Context, artistID id.ArtistID) (*models.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM artists a
		WHERE a.id = $1`,
		uuid.UUID(artistID),
	)
	return s.one(row, "find artist by id")
}

// UpdateByIdentity overwrites the editable fields of the profile owned by
// the profile's IdentityID. The validated flag is left untouched.
func (s *PostgresStore) UpdateByIdentity(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return fmt.Errorf("artist profile is required")
	}
	err := s.db.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $2, photo_url = $3, phone = $4, website = $5, spotify = $6,
		    apple_music = $7, tidal = $8, youtube_music = $9, youtube_channel = $10,
		    instagram = $11, updated_at = now()
		WHERE identity_id = $1
		RETURNING updated_at`,
		uuid.UUID(profile.IdentityID),
		profile.Name,
		database.NullString(profile.PhotoURL),
		database.NullString(profile.Phone),
		database.NullString(profile.Website),
		database.NullString(profile.Spotify),
		database.NullString(profile.AppleMusic),
		database.NullString(profile.Tidal),
		database.NullString(profile.YouTubeMusic),
		database.NullString(profile.YouTubeChannel),
		database.NullString(profile.Instagram),
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("update artist profile: %w", err)
	}
	return nil
}

// SetValidated writes the validated flag. Writing the current value is
// allowed and still counts as a write.
func (s *PostgresStore) SetValidated(ctx context.Context, artistID id.ArtistID, validated bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE artists SET validated = $2, updated_at = now() WHERE id = $1`,
		uuid.UUID(artistID), validated,
	)
	if err != nil {
		return fmt.Errorf("set artist validated: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set artist validated rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

// ListWithEmail returns every profile with its owner's email, newest first.
func (s *PostgresStore) ListWithEmail(ctx context.Context) ([]models.WithEmail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+profileColumns+`, u.email
		FROM artists a
		JOIN users u ON u.id = a.identity_id
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.WithEmail, 0)
	for rows.Next() {
		var (
			a models.WithEmail
			r profileRow
		)
		if err := rows.Scan(append(r.targets(&a.Profile), &a.Email)...); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		r.fill(&a.Profile)
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// ListValidated returns the validated profiles ordered by name.
func (s *PostgresStore) ListValidated(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM artists a
		WHERE a.validated = TRUE
		ORDER BY a.name`)
	if err != nil {
		return nil, fmt.Errorf("list validated artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.Profile, 0)
	for rows.Next() {
		var (
			p models.Profile
			r profileRow
		)
		if err := rows.Scan(r.targets(&p)...); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		r.fill(&p)
		artists = append(artists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

func (s *PostgresStore) one(row *sql.Row, op string) (*models.Profile, error) {
	var (
		p models.Profile
		r profileRow
	)
	if err := row.Scan(r.targets(&p)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	r.fill(&p)
	return &p, nil
}

type profileRow struct {
	id         uuid.UUID
	identityID uuid.UUID
	// photo, phone, website, spotify, apple, tidal, ytMusic, ytChannel, instagram
	optional [9]sql.NullString
}

func (r *profileRow) targets(p *models.Profile) []any {
	dest := []any{&r.id, &r.identityID, &p.Name}
	for i := range r.optional {
		dest = append(dest, &r.optional[i])
	}
	return append(dest, &p.Validated, &p.CreatedAt, &p.UpdatedAt)
}

func (r *profileRow) fill(p *models.Profile) {
	p.ID = id.ArtistID(r.id)
	p.IdentityID = id.IdentityID(r.identityID)
	p.PhotoURL = r.optional[0].String
	p.Phone = r.optional[1].String
	p.Website = r.optional[2].String
	p.Spotify = r.optional[3].String
	p.AppleMusic = r.optional[4].String
	p.Tidal = r.optional[5].String
	p.YouTubeMusic = r.optional[6].String
	p.YouTubeChannel = r.optional[7].String
	p.Instagram = r.optional[8].String
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
}
