package tracing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"oirla/internal/sentinel"
	dErrors "oirla/pkg/domain-errors"
)

const scopeName = "oirla"

// OTelTracer adapts an OpenTelemetry tracer to Tracer.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTel uses provider, or the global provider when nil.
func NewOTel(provider trace.TracerProvider) *OTelTracer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &OTelTracer{tracer: provider.Tracer(scopeName)}
}

func (t *OTelTracer) Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(otelAttrs(attrs)...))
	return ctx, otelSpan{span}
}

type otelSpan struct {
	trace.Span
}

// End records err and marks the span failed unless err is an expected outcome,
// such as a duplicate email racing the unique constraint.
func (s otelSpan) End(err error) {
	if err != nil {
		s.Span.RecordError(err)
		if failed(err) {
			s.Span.SetStatus(codes.Error, err.Error())
		} else {
			s.Span.SetAttributes(attribute.String("outcome", "rejected"))
		}
	}
	s.Span.End()
}

func (s otelSpan) SetAttributes(attrs ...Attribute) {
	s.Span.SetAttributes(otelAttrs(attrs)...)
}

func (s otelSpan) AddEvent(name string, attrs ...Attribute) {
	s.Span.AddEvent(name, trace.WithAttributes(otelAttrs(attrs)...))
}

// failed reports whether err is an infrastructure failure rather than a
// rejection the caller can act on.
func failed(err error) bool {
	if errors.Is(err, sentinel.ErrAlreadyUsed) || errors.Is(err, sentinel.ErrNotFound) ||
		errors.Is(err, sentinel.ErrForbiddenOwner) {
		return false
	}
	return dErrors.CodeOf(err) == dErrors.CodeInternal
}

func otelAttrs(attrs []Attribute) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case string:
			out = append(out, attribute.String(a.Key, v))
		case bool:
			out = append(out, attribute.Bool(a.Key, v))
		case int64:
			out = append(out, attribute.Int64(a.Key, v))
		case int:
			out = append(out, attribute.Int(a.Key, v))
		default:
			out = append(out, attribute.String(a.Key, fmt.Sprint(v)))
		}
	}
	return out
}

var (
	_ Tracer = (*OTelTracer)(nil)
	_ Span   = otelSpan{}
)
