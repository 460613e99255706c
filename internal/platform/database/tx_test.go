package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	dErrors "oirla/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBeginner struct {
	calls  int
	err    error
	onCall func(ctx context.Context)
}

func (b *failingBeginner) BeginTx(ctx context.Context, _ *sql.TxOptions) (*sql.Tx, error) {
	b.calls++
	if b.onCall != nil {
		b.onCall(ctx)
	}
	return nil, b.err
}

func TestRunInTx_CancelledContextNeverBegins(t *testing.T) {
	b := &failingBeginner{}
	r := NewTxRunner(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := r.RunInTx(ctx, "register", func(context.Context, *sql.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
	assert.Zero(t, b.calls)
	assert.False(t, called)
}

func TestRunInTx_BeginErrorPropagates(t *testing.T) {
	beginErr := errors.New("pool exhausted")
	b := &failingBeginner{err: beginErr}
	r := NewTxRunner(b, WithTxTimeout(time.Second))

	err := r.RunInTx(context.Background(), "register", func(context.Context, *sql.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	require.ErrorIs(t, err, beginErr)
	assert.Equal(t, 1, b.calls)
}

func TestRunInTx_DetachesFromCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var txErr error
	var deadline time.Time
	var hasDeadline bool
	b := &failingBeginner{
		err: errors.New("stop"),
		onCall: func(txCtx context.Context) {
			cancel()
			txErr = txCtx.Err()
			deadline, hasDeadline = txCtx.Deadline()
		},
	}
	r := NewTxRunner(b, WithTxTimeout(time.Minute))

	_ = r.RunInTx(ctx, "register", func(context.Context, *sql.Tx) error { return nil })

	require.Equal(t, 1, b.calls)
	assert.NoError(t, txErr, "transaction context must not inherit caller cancellation")
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
