package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordle_backend/internal/domain"
)

// MemoryUserRepository keeps player records in a map. Used when no database
// is configured.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (r *MemoryUserRepository) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Clone(), nil
}

// Save upserts and, like the Postgres implementation, backfills the caller's
// timestamps.
func (r *MemoryUserRepository) Save(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	r.users[u.ID] = u.Clone()
	return nil
}

func (r *MemoryUserRepository) SetCurrentGame(_ context.Context, userID, gameID uuid.UUID, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.CurrentGameID = &gameID
	u.CurrentGameDay = day
	u.UpdatedAt = time.Now().UTC()
	return nil
}
