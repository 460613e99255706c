package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oirla/internal/auth/models"
	"oirla/internal/platform/database"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db database.DBTX
}

// NewPostgres constructs a PostgreSQL-backed user store. db may be a
// transaction, as registration and the admin bootstrap do.
func NewPostgres(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_digest, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		uuid.UUID(user.ID), user.Email, user.PasswordDigest, string(user.Role),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("user already exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var (
		u    models.User
		uid  uuid.UUID
		role string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_digest, role, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&uid, &u.Email, &u.PasswordDigest, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	u.ID = id.IdentityID(uid)
	u.Role = id.Role(role)
	return &u, nil
}

// FindAccountByEmail loads the user with its artist profile, if any.
func (s *PostgresStore) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var (
		acc      models.Account
		uid      uuid.UUID
		role     string
		artistID uuid.NullUUID
		name     sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.email, u.password_digest, u.role, u.created_at, u.updated_at,
		       a.id, a.name
		FROM users u
		LEFT JOIN artists a ON a.identity_id = u.id
		WHERE u.email = $1`,
		email,
	).Scan(&uid, &acc.Email, &acc.PasswordDigest, &role, &acc.CreatedAt, &acc.UpdatedAt,
		&artistID, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	acc.ID = id.IdentityID(uid)
	acc.Role = id.Role(role)
	if artistID.Valid {
		a := id.ArtistID(artistID.UUID)
		acc.ArtistID = &a
	}
	acc.ArtistName = name.String
	return &acc, nil
}

// FindPrincipal resolves a token subject. It returns (nil, nil) when the
// identity no longer exists.
func (s *PostgresStore) FindPrincipal(ctx context.Context, identityID id.IdentityID) (*id.Principal, error) {
	var (
		email string
		role  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT email, role FROM users WHERE id = $1`,
		uuid.UUID(identityID),
	).Scan(&email, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find principal: %w", err)
	}
	r, err := id.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("find principal: %w", err)
	}
	return &id.Principal{ID: identityID, Email: email, Role: r}, nil
}

// Delete removes the user. Its artist profile and events go with it.
func (s *PostgresStore) Delete(ctx context.Context, identityID id.IdentityID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, uuid.UUID(identityID))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
