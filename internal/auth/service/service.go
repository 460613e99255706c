package service

import (
	"context"
	"log/slog"

	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/auth/ports"
	"oirla/internal/platform/metrics"
	id "oirla/pkg/domain"
)

// User-facing failure messages.
const (
	MsgDuplicateEmail     = "El email ya está registrado"
	MsgBadCredentials     = "Credenciales incorrectas"
	MsgRegistrationFailed = "Error en el registro"
	MsgLoginFailed        = "Error en el login"
)

// UserStore reads identities outside a transaction.
// Error Contract: Find methods return sentinel.ErrNotFound when the user doesn't exist.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(digest, secret string) (bool, error)
}

type TokenGenerator interface {
	GenerateToken(ctx context.Context, principal id.Principal) (string, error)
}

// Service registers artists and logs identities in.
type Service struct {
	users   UserStore
	tx      ports.RegistrationTx
	hasher  PasswordHasher
	jwt     TokenGenerator
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

// New takes the pool-level audit recorder. Registration binds it to the
// transaction's audit store.
func New(users UserStore, tx ports.RegistrationTx, hasher PasswordHasher, jwt TokenGenerator, auditor *audit.Recorder, opts ...Option) *Service {
	svc := &Service{
		users:   users,
		tx:      tx,
		hasher:  hasher,
		jwt:     jwt,
		auditor: auditor,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}
