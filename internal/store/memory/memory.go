// Package memory is the in-memory document store. It backs the API when no
// database is configured and every handler test.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/store"
	"github.com/olopa-labs/olopa/internal/user"
)

// Store keeps users and contracts in insertion order. Writes are serialized
// by a single mutex, matching the per-document write guarantee the API
// assumes of its backing store.
type Store struct {
	mu        sync.Mutex
	users     []user.User
	emails    map[string]struct{}
	contracts []contracts.Contract
}

func New() *Store {
	return &Store{emails: make(map[string]struct{})}
}

func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[u.Email]; exists {
		return user.User{}, store.ErrDuplicateEmail
	}
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()
	s.emails[u.Email] = struct{}{}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, store.ErrNotFound
}

func (s *Store) GetUserByID(_ context.Context, id string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, store.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *Store) CreateContract(_ context.Context, ct contracts.Contract) (contracts.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ct.Status == "" {
		ct.Status = contracts.StatusCreated
	}
	now := time.Now()
	ct.ID = uuid.New().String()
	ct.CreatedAt = now
	ct.UpdatedAt = now
	s.contracts = append(s.contracts, ct)
	return ct, nil
}

// ListContracts returns contracts in insertion order. Rendering newest-first
// is the caller's job.
func (s *Store) ListContracts(_ context.Context) ([]contracts.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]contracts.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out, nil
}
