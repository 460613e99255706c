package store

import (
	"context"
	"database/sql"

	artiststore "oirla/internal/artist/store"
	auditstore "oirla/internal/audit/store"
	"oirla/internal/auth/ports"
	"oirla/internal/auth/store/user"
	"oirla/internal/platform/database"
	"oirla/internal/platform/tracing"
)

// RegistrationTx binds the identity, artist and audit stores to a single
// PostgreSQL transaction.
type RegistrationTx struct {
	runner *database.TxRunner
	name   string
	tracer tracing.Tracer
}

// NewRegistrationTx creates a RegistrationTx. name labels the transaction span.
func NewRegistrationTx(runner *database.TxRunner, name string, tracer tracing.Tracer) *RegistrationTx {
	if tracer == nil {
		tracer = tracing.NewNoop()
	}
	return &RegistrationTx{runner: runner, name: name, tracer: tracer}
}

func (t *RegistrationTx) RunInTx(ctx context.Context, fn func(ctx context.Context, stores ports.TxStores) error) error {
	return t.runner.RunInTx(ctx, t.name, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, ports.TxStores{
			Users:   user.NewPostgres(tx),
			Artists: artiststore.NewPostgres(tx),
			Audit:   auditstore.NewPostgres(tx).WithTracer(t.tracer),
		})
	})
}

var _ ports.RegistrationTx = (*RegistrationTx)(nil)
