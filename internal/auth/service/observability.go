package service

import (
	"context"

	"oirla/pkg/requestcontext"
)

// Observability helpers for logging and metrics.

func (s *Service) logInfo(ctx context.Context, msg string, attributes ...any) {
	attributes = append(attributes, "request_id", requestcontext.RequestID(ctx))
	s.logger.InfoContext(ctx, msg, attributes...)
}

func (s *Service) authFailure(ctx context.Context, reason string, attributes ...any) {
	attributes = append(attributes,
		"reason", reason,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.logger.WarnContext(ctx, "authentication failed", attributes...)
	s.metrics.IncrementAuthFailures(reason)
}

func (s *Service) policyViolation(ctx context.Context, name string) {
	s.logger.WarnContext(ctx, "denylisted artist name rejected",
		"site", "register",
		"name", name,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.IncrementPolicyViolations("register")
}
