//go:build integration

// Package containers starts the PostgreSQL instance shared by integration
// suites. One container serves every suite in a test binary; suites isolate
// themselves by truncating tables in SetupTest.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out the shared container, starting it on first use.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
}

var (
	manager     *Manager
	managerOnce sync.Once
)

// GetManager returns the process-wide manager.
func GetManager() *Manager {
	managerOnce.Do(func() { manager = &Manager{} })
	return manager
}

// GetPostgres returns the migrated Postgres container.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.postgres == nil {
		m.postgres = NewPostgresContainer(t)
	}
	return m.postgres
}
