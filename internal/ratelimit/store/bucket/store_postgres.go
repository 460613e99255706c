package bucket

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"oirla/internal/ratelimit/models"
	"oirla/pkg/requestcontext"
)

// PostgresBucketStore shares counters across replicas. Checks on the same key
// serialize on a transaction-scoped advisory lock.
type PostgresBucketStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresBucketStore {
	return &PostgresBucketStore{db: db}
}

func (s *PostgresBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error) {
	if key == "" || limit <= 0 || window <= 0 {
		return nil, errInvalidBucket
	}

	now := requestcontext.Now(ctx)
	cutoff := now.Add(-window)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin rate limit tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1)::bigint)`, key); err != nil {
		return nil, fmt.Errorf("acquire rate limit lock: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rate_limit_events WHERE key = $1 AND occurred_at <= $2`, key, cutoff); err != nil {
		return nil, fmt.Errorf("cleanup rate limit events: %w", err)
	}

	var current int
	var oldest sql.NullTime
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(cost), 0), MIN(occurred_at) FROM rate_limit_events WHERE key = $1`, key,
	).Scan(&current, &oldest); err != nil {
		return nil, fmt.Errorf("count rate limit events: %w", err)
	}

	allowed := current < limit
	resetAt := now.Add(window)
	if oldest.Valid {
		resetAt = oldest.Time.Add(window)
	}

	if allowed {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rate_limit_events (key, occurred_at, cost, window_seconds)
			VALUES ($1, $2, 1, $3)
		`, key, now, int(window.Seconds())); err != nil {
			return nil, fmt.Errorf("insert rate limit event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rate limit tx: %w", err)
	}

	remaining := 0
	if allowed {
		remaining = limit - current - 1
	}
	return &models.Result{
		Allowed:    allowed,
		Limit:      limit,
		Remaining:  remaining,
		ResetAt:    resetAt,
		RetryAfter: models.RetryAfterSeconds(allowed, resetAt, now),
	}, nil
}

// Sweep deletes events that fell out of their own window, covering keys that
// are never checked again.
func (s *PostgresBucketStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM rate_limit_events
		WHERE occurred_at <= $1::timestamptz - make_interval(secs => window_seconds)
	`, now)
	if err != nil {
		return 0, fmt.Errorf("sweep rate limit events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep rate limit events: %w", err)
	}
	return int(n), nil
}
