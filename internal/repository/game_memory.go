package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"wordle_backend/internal/domain"
)

// gameEntry carries its own lock so updates to different games never contend.
type gameEntry struct {
	mu   sync.Mutex
	game *domain.Game
}

// MemoryGameRepository keeps games in a map with per-entry locking. The outer
// lock only guards map membership. Used when no database is configured.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*gameEntry
}

func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{games: make(map[uuid.UUID]*gameEntry)}
}

func (r *MemoryGameRepository) Create(_ context.Context, g *domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[g.ID]; exists {
		return ErrDuplicateID
	}
	r.games[g.ID] = &gameEntry{game: g.Clone()}
	return nil
}

func (r *MemoryGameRepository) Get(_ context.Context, id uuid.UUID) (*domain.Game, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Clone(), nil
}

func (r *MemoryGameRepository) Update(_ context.Context, id uuid.UUID, fn func(*domain.Game) error) (*domain.Game, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// mutate a copy so a failed fn leaves the stored game untouched
	working := e.game.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	e.game = working
	return working.Clone(), nil
}

func (r *MemoryGameRepository) entry(id uuid.UUID) (*gameEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return e, nil
}
