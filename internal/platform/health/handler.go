// Package health serves liveness, readiness and status endpoints.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"oirla/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	stateUp   = "up"
	stateDown = "down"
)

// Check pings one dependency. Check errors never reach the response body
// since driver errors may carry connection strings.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Database pings the relational store.
func Database(p Pinger) Check {
	return Check{Name: "database", Ping: p.PingContext}
}

type Handler struct {
	started     time.Time
	environment string
	timeout     time.Duration
	checks      []Check
}

// New builds the health handler. The check set is fixed at construction.
func New(environment string, checks ...Check) *Handler {
	return &Handler{
		started:     time.Now(),
		environment: environment,
		timeout:     2 * time.Second,
		checks:      checks,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness pings every dependency concurrently and answers 503 if any
// is down.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var mu sync.Mutex
	states := make(map[string]string, len(h.checks))
	var g errgroup.Group
	for _, c := range h.checks {
		g.Go(func() error {
			state := stateUp
			if err := c.Ping(ctx); err != nil {
				state = stateDown
			}
			mu.Lock()
			states[c.Name] = state
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // checks report through states

	resp := readiness{Status: "ready", Checks: states}
	for _, s := range states {
		if s == stateDown {
			resp.Status = "not_ready"
			httputil.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

type status struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, status{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}
