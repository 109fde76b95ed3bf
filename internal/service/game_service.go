package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"wordle_backend/internal/domain"
	"wordle_backend/internal/game"
	"wordle_backend/internal/logger"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/words"
)

// createRetries bounds id regeneration when an insert collides.
const createRetries = 3

// GameService orchestrates daily games between the engine and the repositories.
type GameService struct {
	games  repository.GameRepository
	users  repository.UserRepository
	engine *game.Engine
}

func NewGameService(games repository.GameRepository, users repository.UserRepository, engine *game.Engine) *GameService {
	return &GameService{games: games, users: users, engine: engine}
}

// NewGame returns the player's game for today's word, creating one if needed.
// Calling it again on the same day returns the existing game, so a player
// cannot farm fresh boards. A new day always starts a new game. The second
// return value reports whether a game was actually created.
func (s *GameService) NewGame(ctx context.Context, ident Identity) (*domain.GameView, bool, error) {
	now := time.Now().UTC()
	today := words.DateKey(now)

	u, err := s.ensureUser(ctx, ident)
	if err != nil {
		return nil, false, err
	}

	if u.CurrentGameID != nil && u.CurrentGameDay == today {
		g, err := s.games.Get(ctx, *u.CurrentGameID)
		if err == nil {
			return g.View(), false, nil
		}
		if !errors.Is(err, repository.ErrGameNotFound) {
			return nil, false, err
		}
		// stale pointer, fall through and create a fresh game
	}

	g := s.engine.NewGame(ident.UserID, now)
	for attempt := 0; ; attempt++ {
		err = s.games.Create(ctx, g)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateID) || attempt >= createRetries {
			return nil, false, err
		}
		logger.Warn("game id collision, regenerating", "game_id", g.ID, "attempt", attempt+1)
		g.ID = uuid.New()
	}

	if err := s.users.SetCurrentGame(ctx, ident.UserID, g.ID, today); err != nil {
		return nil, false, err
	}

	return g.View(), true, nil
}

// SubmitGuess applies one guess to the caller's game under the repository's
// per-game lock. Every accepted guess consumes an attempt, including repeats
// of an earlier word.
func (s *GameService) SubmitGuess(ctx context.Context, gameID uuid.UUID, ident Identity, word string) (*domain.GameView, error) {
	now := time.Now().UTC()

	updated, err := s.games.Update(ctx, gameID, func(g *domain.Game) error {
		if g.UserID != ident.UserID {
			// games of other players look like they do not exist
			return repository.ErrGameNotFound
		}
		_, err := s.engine.SubmitGuess(g, word, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated.View(), nil
}

// GetGame returns the caller's view of one game.
func (s *GameService) GetGame(ctx context.Context, gameID uuid.UUID, ident Identity) (*domain.GameView, error) {
	g, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.UserID != ident.UserID {
		return nil, repository.ErrGameNotFound
	}
	return g.View(), nil
}

// Profile returns the caller's player record, creating it on first contact.
func (s *GameService) Profile(ctx context.Context, ident Identity) (*domain.User, error) {
	return s.ensureUser(ctx, ident)
}

// ensureUser loads the player record, creating it from token claims when the
// player shows up for the first time.
func (s *GameService) ensureUser(ctx context.Context, ident Identity) (*domain.User, error) {
	u, err := s.users.Get(ctx, ident.UserID)
	if err == nil {
		if ident.Username != "" && u.Username != ident.Username {
			u.Username = ident.Username
			if err := s.users.Save(ctx, u); err != nil {
				return nil, err
			}
		}
		return u, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	u = &domain.User{ID: ident.UserID, Username: ident.Username}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
