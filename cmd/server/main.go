package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"oirla/internal/admin"
	artisthandler "oirla/internal/artist/handler"
	artistservice "oirla/internal/artist/service"
	artiststore "oirla/internal/artist/store"
	"oirla/internal/audit"
	auditstore "oirla/internal/audit/store"
	authhandler "oirla/internal/auth/handler"
	"oirla/internal/auth/password"
	authservice "oirla/internal/auth/service"
	authstore "oirla/internal/auth/store"
	userstore "oirla/internal/auth/store/user"
	eventstore "oirla/internal/event/store"
	jwttoken "oirla/internal/jwt_token"
	"oirla/internal/platform/config"
	"oirla/internal/platform/database"
	"oirla/internal/platform/health"
	"oirla/internal/platform/logger"
	"oirla/internal/platform/metrics"
	"oirla/internal/platform/tracing"
	"oirla/internal/public"
	ratelimit "oirla/internal/ratelimit/middleware"
	"oirla/internal/ratelimit/service/requestlimit"
	"oirla/internal/ratelimit/store/bucket"
	httptransport "oirla/internal/transport/http"
	"oirla/migrations"
	"oirla/pkg/platform/middleware/metadata"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing oirla",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	db, err := database.Open(ctx, database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database pool", "error", err)
		}
	}()

	applied, err := database.Migrate(ctx, db, migrations.FS)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		log.Info("applied migrations", "versions", applied)
	}

	router, err := buildRouter(ctx, cfg, db, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildRouter(ctx context.Context, cfg config.Server, db *sql.DB, log *slog.Logger) (http.Handler, error) {
	tracer := tracing.NewOTel(nil)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	if err := m.RegisterDBStats(db); err != nil {
		return nil, err
	}

	users := userstore.NewPostgres(db)
	artists := artiststore.NewPostgres(db)
	events := eventstore.NewPostgres(db)
	auditor := audit.NewRecorder(auditstore.NewPostgres(db).WithTracer(tracer), log, audit.WithFailureCounter(m))

	runner := database.NewTxRunner(db,
		database.WithTxTimeout(cfg.Database.TxTimeout),
		database.WithTracer(tracer),
	)
	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)

	authSvc := authservice.New(users,
		authstore.NewRegistrationTx(runner, "register", tracer),
		password.NewHasher(password.DefaultCost),
		jwtService,
		auditor,
		authservice.WithLogger(log),
		authservice.WithMetrics(m),
	)
	artistSvc := artistservice.New(artists, events, auditor,
		artistservice.WithLogger(log),
		artistservice.WithMetrics(m),
	)
	adminSvc := admin.NewService(artists, users, events, auditor,
		admin.WithLogger(log),
		admin.WithMetrics(m),
	)
	publicSvc := public.NewService(events, artists, public.WithLogger(log))

	healthHandler := health.New(cfg.Environment, health.Database(db))

	proxies, err := metadata.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	limiter, err := buildRateLimit(ctx, cfg, db, log, m)
	if err != nil {
		return nil, err
	}

	return httptransport.NewRouter(httptransport.Config{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		DebugErrors:    cfg.IsDevelopment(),
		Metadata:       &metadata.Config{TrustedProxies: proxies},
	}, httptransport.Deps{
		Auth:       authhandler.New(authSvc, log),
		Artist:     artisthandler.New(artistSvc, log),
		Admin:      admin.New(adminSvc, log),
		Public:     public.NewHandler(publicSvc, log),
		Health:     healthHandler,
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		RateLimit:  limiter.RateLimit,
		Tokens:     jwttoken.NewJWTServiceAdapter(jwtService),
		Identities: users,
		Recorder:   m,
	}, log), nil
}

type bucketStore interface {
	requestlimit.BucketStore
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// buildRateLimit picks the bucket backend. Expired buckets are swept once per
// window until ctx ends.
func buildRateLimit(ctx context.Context, cfg config.Server, db *sql.DB, log *slog.Logger, m *metrics.Metrics) (*ratelimit.Middleware, error) {
	var buckets bucketStore = bucket.NewInMemoryBucketStore()
	if cfg.RateLimitStore == config.RateLimitStorePostgres {
		buckets = bucket.NewPostgres(db)
	}
	go sweepBuckets(ctx, buckets, cfg.RateLimitWindow, log)

	svc, err := requestlimit.New(buckets,
		requestlimit.WithLimit(cfg.RateLimitMax, cfg.RateLimitWindow),
		requestlimit.WithLogger(log),
		requestlimit.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}
	log.Info("rate limit enabled",
		"store", cfg.RateLimitStore,
		"max", cfg.RateLimitMax,
		"window", cfg.RateLimitWindow.String(),
	)
	return ratelimit.New(svc, log), nil
}

func sweepBuckets(ctx context.Context, store bucketStore, every time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.Sweep(ctx, now.UTC())
			if err != nil {
				log.WarnContext(ctx, "failed to sweep rate limit buckets", "error", err)
				continue
			}
			if n > 0 {
				log.Debug("swept idle rate limit buckets", "count", n)
			}
		}
	}
}
