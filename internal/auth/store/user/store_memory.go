package user

import (
	"context"
	"fmt"
	"sync"

	"oirla/internal/auth/models"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
)

// InMemoryUserStore stores users in memory for tests.
//
// Error contract matches PostgresStore: ErrNotFound for a missing user,
// ErrAlreadyUsed for a duplicate email, and (nil, nil) from FindPrincipal
// for a deleted identity.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[id.IdentityID]*models.User
}

// New constructs an empty in-memory user store.
func New() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[id.IdentityID]*models.User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("user already exists: %w", sentinel.ErrAlreadyUsed)
		}
	}
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryUserStore) FindPrincipal(_ context.Context, identityID id.IdentityID) (*id.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[identityID]
	if !ok {
		return nil, nil
	}
	p := user.Principal()
	return &p, nil
}

func (s *InMemoryUserStore) Delete(_ context.Context, identityID id.IdentityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[identityID]; ok {
		delete(s.users, identityID)
		return nil
	}
	return fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}
