package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	platformstrings "oirla/pkg/platform/strings"
)

// Environment names accepted in APP_ENV.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Rate limit backends accepted in RATE_LIMIT_STORE.
const (
	RateLimitStoreMemory   = "memory"
	RateLimitStorePostgres = "postgres"
)

// DevJWTSecret signs tokens in development when JWT_SECRET is unset.
const DevJWTSecret = "dev-secret-key-change-in-production"

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")
	ErrRateLimitStore   = errors.New("RATE_LIMIT_STORE must be memory or postgres")
)

// Server captures HTTP server level configuration. CORSOrigins is parsed from
// the comma-separated CORS_ORIGIN; TrustedProxies is a comma-separated list of
// CIDRs allowed to set X-Forwarded-For.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	JWTSigningKey   string
	JWTIssuer       string
	TokenTTL        time.Duration
	CORSOrigins     []string
	RequestTimeout  time.Duration
	MaxBodyBytes    int64
	TrustedProxies  string
	RateLimitMax    int
	RateLimitWindow time.Duration
	RateLimitStore  string
	Database        Database
}

// Database captures pool sizing and transaction limits.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	TxTimeout       time.Duration
}

// Admin holds the bootstrap admin credentials read by cmd/createadmin.
type Admin struct {
	Email    string
	Password string
	Name     string
}

var (
	TokenTTL        = 24 * time.Hour
	TxTimeout       = 5 * time.Second
	RequestTimeout  = 15 * time.Second
	MaxBodyBytes    = int64(1 << 20)
	RateLimitMax    = 100
	RateLimitWindow = 15 * time.Minute
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	env := getString("APP_ENV", EnvProduction)
	if env != EnvDevelopment {
		env = EnvProduction
	}

	// Production never falls back to a shared key; Validate rejects the gap.
	jwtSigningKey := os.Getenv("JWT_SECRET")
	if jwtSigningKey == "" && env == EnvDevelopment {
		jwtSigningKey = DevJWTSecret
	}

	return Server{
		Addr:            getString("OIRLA_ADDR", ":3001"),
		Environment:     env,
		LogLevel:        getString("LOG_LEVEL", "info"),
		JWTSigningKey:   jwtSigningKey,
		JWTIssuer:       getString("JWT_ISSUER", "oirla"),
		TokenTTL:        getDuration("TOKEN_TTL", TokenTTL),
		CORSOrigins:     platformstrings.SplitList(getString("CORS_ORIGIN", "http://localhost:3000")),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", RequestTimeout),
		MaxBodyBytes:    getInt64("MAX_BODY_BYTES", MaxBodyBytes),
		TrustedProxies:  os.Getenv("TRUSTED_PROXIES"),
		RateLimitMax:    int(getInt64("RATE_LIMIT_MAX", int64(RateLimitMax))),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", RateLimitWindow),
		RateLimitStore:  getString("RATE_LIMIT_STORE", RateLimitStoreMemory),
		Database:        DatabaseFromEnv(),
	}
}

// Validate reports settings the server must not start with.
func (s Server) Validate() error {
	if s.JWTSigningKey == "" {
		return ErrMissingJWTSecret
	}
	switch s.RateLimitStore {
	case RateLimitStoreMemory, RateLimitStorePostgres:
	default:
		return ErrRateLimitStore
	}
	return nil
}

// DatabaseFromEnv reads only the database section.
func DatabaseFromEnv() Database {
	return Database{
		URL:             os.Getenv("DATABASE_URL"),
		MaxOpenConns:    int(getInt64("DB_MAX_OPEN_CONNS", 10)),
		MaxIdleConns:    int(getInt64("DB_MAX_IDLE_CONNS", 5)),
		ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		TxTimeout:       getDuration("TX_TIMEOUT", TxTimeout),
	}
}

// AdminFromEnv reads the bootstrap admin credentials.
func AdminFromEnv() Admin {
	return Admin{
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		Name:     getString("ADMIN_NAME", "Administrador"),
	}
}

// IsDevelopment reports whether internal error details may be exposed.
func (s Server) IsDevelopment() bool {
	return s.Environment == EnvDevelopment
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}
