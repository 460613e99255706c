// Command createadmin provisions the first admin account. It reads
// ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME and fails without side effects
// if any insert fails.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"oirla/internal/audit"
	auditstore "oirla/internal/audit/store"
	"oirla/internal/auth/models"
	"oirla/internal/auth/password"
	authservice "oirla/internal/auth/service"
	authstore "oirla/internal/auth/store"
	userstore "oirla/internal/auth/store/user"
	jwttoken "oirla/internal/jwt_token"
	"oirla/internal/platform/config"
	"oirla/internal/platform/database"
	"oirla/internal/platform/logger"
	"oirla/internal/platform/tracing"
	"oirla/migrations"
)

func main() {
	cfg := config.FromEnv()
	adminCfg := config.AdminFromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck // process is exiting

	if _, err := database.Migrate(ctx, db, migrations.FS); err != nil {
		log.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	tracer := tracing.NewOTel(nil)
	runner := database.NewTxRunner(db,
		database.WithTxTimeout(cfg.Database.TxTimeout),
		database.WithTracer(tracer),
	)
	svc := authservice.New(userstore.NewPostgres(db),
		authstore.NewRegistrationTx(runner, "bootstrap_admin", tracer),
		password.NewHasher(password.DefaultCost),
		jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL),
		audit.NewRecorder(auditstore.NewPostgres(db), log),
		authservice.WithLogger(log),
	)

	admin, err := svc.BootstrapAdmin(ctx, &models.BootstrapRequest{
		Email:    adminCfg.Email,
		Password: adminCfg.Password,
		Name:     adminCfg.Name,
	})
	if err != nil {
		log.Error("failed to create admin, nothing was written", "error", err)
		os.Exit(1)
	}
	log.Info("admin account created", "email", admin.Email, "user_id", admin.ID.String())
}
