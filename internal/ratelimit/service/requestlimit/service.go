// Package requestlimit enforces the per-address request quota on the API.
package requestlimit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"oirla/internal/platform/metrics"
	"oirla/internal/ratelimit/models"
	"oirla/pkg/platform/privacy"
)

// Defaults: 100 requests per address every 15 minutes.
const (
	DefaultLimit  = 100
	DefaultWindow = 15 * time.Minute
)

// BucketStore checks rate limits using sliding window counters.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

// Service is safe for concurrent use by the middleware.
type Service struct {
	buckets BucketStore
	limit   int
	window  time.Duration
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

// WithLimit overrides the quota. Non-positive values keep the default.
func WithLimit(limit int, window time.Duration) Option {
	return func(s *Service) {
		if limit > 0 {
			s.limit = limit
		}
		if window > 0 {
			s.window = window
		}
	}
}

func New(buckets BucketStore, opts ...Option) (*Service, error) {
	if buckets == nil {
		return nil, errors.New("buckets store is required")
	}
	svc := &Service{
		buckets: buckets,
		limit:   DefaultLimit,
		window:  DefaultWindow,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CheckIP consumes one request from the address's quota.
func (s *Service) CheckIP(ctx context.Context, ip string) (*models.Result, error) {
	res, err := s.buckets.Allow(ctx, models.Key(models.KeyPrefixIP, ip), s.limit, s.window)
	if err != nil {
		return nil, err
	}
	if !res.Allowed {
		s.metrics.IncrementRateLimited()
		s.logger.InfoContext(ctx, "rate limit exceeded",
			"ip_prefix", privacy.AnonymizeIP(ip),
			"limit", res.Limit,
			"retry_after", res.RetryAfter,
		)
	}
	return res, nil
}
