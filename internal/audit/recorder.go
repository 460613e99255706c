package audit

import (
	"context"
	"log/slog"

	"oirla/pkg/requestcontext"
)

// FailureCounter counts audit appends that could not be persisted.
type FailureCounter interface {
	IncrementAuditWriteFailures(action string)
}

// Recorder appends audit records on a best-effort basis: a failed append is
// logged and counted but never reported to the caller, and never reverses
// the write it describes.
type Recorder struct {
	store    Store
	logger   *slog.Logger
	failures FailureCounter
}

// RecorderOption configures the Recorder.
type RecorderOption func(*Recorder)

// WithFailureCounter reports swallowed append failures to c.
func WithFailureCounter(c FailureCounter) RecorderOption {
	return func(r *Recorder) {
		r.failures = c
	}
}

func NewRecorder(store Store, logger *slog.Logger, opts ...RecorderOption) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{store: store, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bind returns a Recorder writing to store with the same logger and
// counters. Used to record inside a transaction.
func (r *Recorder) Bind(store Store) *Recorder {
	return &Recorder{store: store, logger: r.logger, failures: r.failures}
}

// Record fills missing actor, origin and timestamp from ctx and appends the
// entry. It returns nothing on purpose: callers cannot branch on audit
// failures.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = requestcontext.Now(ctx)
	}
	if entry.OriginAddress == "" {
		entry.OriginAddress = requestcontext.ClientIP(ctx)
	}
	if entry.ActorID.IsNil() {
		if p, ok := requestcontext.Principal(ctx); ok {
			entry.ActorID = p.ID
		}
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to append audit record",
			"error", err,
			"action", string(entry.Action),
			"entity", string(entry.EntityKind),
			"entity_id", entry.EntityID.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		if r.failures != nil {
			r.failures.IncrementAuditWriteFailures(string(entry.Action))
		}
	}
}

// List returns audit records newest first.
func (r *Recorder) List(ctx context.Context, page Page) ([]Record, error) {
	return r.store.List(ctx, page.Normalize())
}
