//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"oirla/internal/platform/database"
	"oirla/migrations"
	id "oirla/pkg/domain"
)

// PostgresContainer wraps a testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a new Postgres container with migrations applied.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("oirla_test"),
		postgres.WithUsername("oirla"),
		postgres.WithPassword("oirla_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	if _, err := database.Migrate(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	// The container is shared through Manager; Ryuk removes it when the test
	// process exits.
	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables clears all data from the specified tables.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// TruncateAll empties every application table.
func (p *PostgresContainer) TruncateAll(ctx context.Context) error {
	return p.TruncateTables(ctx, "audit_log", "events", "artists", "users", "rate_limit_events")
}

// Count returns the number of rows in table matching the optional where clause.
func (p *PostgresContainer) Count(ctx context.Context, t testing.TB, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	if err := p.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		t.Fatalf("Count(%s): %v", table, err)
	}
	return n
}

// CreateTestArtist inserts an artist identity with its profile and returns
// both ids.
func (p *PostgresContainer) CreateTestArtist(ctx context.Context, t testing.TB, name string, validated bool) (id.IdentityID, id.ArtistID) {
	t.Helper()
	identityID := id.NewIdentityID()
	artistID := id.NewArtistID()
	if _, err := p.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, password_digest, role)
		VALUES ($1, $2, 'x', 'artist')
	`, identityID.UUID(), "artist-"+uuid.NewString()+"@example.com"); err != nil {
		t.Fatalf("CreateTestArtist user: %v", err)
	}
	if _, err := p.DB.ExecContext(ctx, `
		INSERT INTO artists (id, identity_id, name, validated)
		VALUES ($1, $2, $3, $4)
	`, artistID.UUID(), identityID.UUID(), name, validated); err != nil {
		t.Fatalf("CreateTestArtist profile: %v", err)
	}
	return identityID, artistID
}

// CreateTestEvent inserts an event for artistID on date (YYYY-MM-DD).
func (p *PostgresContainer) CreateTestEvent(ctx context.Context, t testing.TB, artistID id.ArtistID, title, date string) id.EventID {
	t.Helper()
	eventID := id.NewEventID()
	if _, err := p.DB.ExecContext(ctx, `
		INSERT INTO events (id, artist_id, title, event_date, event_time, venue, entry_type)
		VALUES ($1, $2, $3, $4::date, '21:00', 'Test Venue', 'gorra')
	`, eventID.UUID(), artistID.UUID(), title, date); err != nil {
		t.Fatalf("CreateTestEvent: %v", err)
	}
	return eventID
}
