package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"oirla/internal/platform/tracing"
	dErrors "oirla/pkg/domain-errors"
)

// DefaultTxTimeout bounds a transaction when the caller does not configure one.
const DefaultTxTimeout = 5 * time.Second

// DBTX is satisfied by both *sql.DB and *sql.Tx so stores can run inside
// or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// Beginner starts transactions. *sql.DB satisfies it.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// TxRunner executes a function inside a single database transaction.
type TxRunner struct {
	db      Beginner
	timeout time.Duration
	tracer  tracing.Tracer
}

// TxOption configures a TxRunner.
type TxOption func(*TxRunner)

// WithTxTimeout overrides DefaultTxTimeout.
func WithTxTimeout(d time.Duration) TxOption {
	return func(r *TxRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithTracer attaches a tracer; the default is a no-op.
func WithTracer(t tracing.Tracer) TxOption {
	return func(r *TxRunner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewTxRunner creates a TxRunner over db.
func NewTxRunner(db Beginner, opts ...TxOption) *TxRunner {
	r := &TxRunner{db: db, timeout: DefaultTxTimeout, tracer: tracing.NewNoop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunInTx begins a transaction, runs fn, and commits when fn returns nil.
// Every other exit path rolls back and the original error is returned.
//
// The transaction runs on a context detached from the caller's cancellation
// and bounded by the runner timeout, so a client disconnect cannot abort a
// transaction half-way.
func (r *TxRunner) RunInTx(ctx context.Context, name string, fn func(ctx context.Context, tx *sql.Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	txCtx, span := r.tracer.Start(txCtx, tracing.SpanTx, tracing.String(tracing.AttrTxName, name))
	defer func() { span.End(err) }()

	tx, err := r.db.BeginTx(txCtx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		span.AddEvent(tracing.EventRollback)
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			span.SetAttributes(tracing.String("tx.rollback_error", rbErr.Error()))
		}
	}()

	if err := fn(txCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	span.AddEvent(tracing.EventCommit)
	return nil
}
