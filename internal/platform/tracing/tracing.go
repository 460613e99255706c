// Package tracing provides a small span abstraction over OpenTelemetry.
//
// Stores and the transaction coordinator depend on the Tracer interface so
// tests can run with NoopTracer while the server wires the global
// OpenTelemetry provider through OTelTracer.
package tracing

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanTx          = "db.tx"
	SpanAuditAppend = "audit.append"
)

// Attribute keys.
const (
	AttrTxName      = "tx.name"
	AttrTxOutcome   = "tx.outcome"
	AttrAuditAction = "audit.action"
	AttrSavepoint   = "audit.savepoint"
)

// Event names.
const (
	EventRollback = "tx.rollback"
	EventCommit   = "tx.commit"
)
