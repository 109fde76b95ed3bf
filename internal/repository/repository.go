package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"wordle_backend/internal/domain"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrDuplicateID  = errors.New("game id already exists")
	ErrUserNotFound = errors.New("user not found")
)

// GameRepository stores games. Update applies fn under per-game exclusion:
// concurrent updates to the same game serialize, updates to different games
// do not contend, and a failed fn leaves the stored game untouched. Get must
// never observe a half-applied update.
type GameRepository interface {
	Create(ctx context.Context, g *domain.Game) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Game) error) (*domain.Game, error)
}

// UserRepository stores player records keyed by the token subject.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	SetCurrentGame(ctx context.Context, userID, gameID uuid.UUID, day string) error
}
