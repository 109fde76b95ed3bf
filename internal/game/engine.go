package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordle_backend/internal/domain"
	"wordle_backend/internal/words"
)

var (
	ErrGuessLength   = errors.New("guess must be exactly 5 letters")
	ErrGuessNotAWord = errors.New("word not in dictionary")
	ErrGameCompleted = errors.New("game already completed")
)

// Engine creates games against the daily answer and applies guesses to them.
// It is the only code that mutates a game.
type Engine struct {
	catalog     *words.Catalog
	maxAttempts int
}

// NewEngine returns an engine backed by the given word catalog.
func NewEngine(catalog *words.Catalog) *Engine {
	return &Engine{catalog: catalog, maxAttempts: domain.MaxAttempts}
}

// NewGame creates a fresh game for userID against the answer for now's UTC date.
func (e *Engine) NewGame(userID uuid.UUID, now time.Time) *domain.Game {
	now = now.UTC()
	return &domain.Game{
		ID:          uuid.New(),
		UserID:      userID,
		Word:        e.catalog.DailyWord(now),
		Day:         words.DateKey(now),
		MaxAttempts: e.maxAttempts,
		Guesses:     []domain.Guess{},
		Status:      domain.StatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SubmitGuess validates, scores and records one guess, updating the game
// status. A rejected guess leaves the game untouched and costs no attempt.
func (e *Engine) SubmitGuess(g *domain.Game, word string, now time.Time) ([]domain.LetterResult, error) {
	if g.IsOver() {
		return nil, ErrGameCompleted
	}

	w := strings.ToLower(strings.TrimSpace(word))
	if len(w) != domain.WordLength || !isAlpha(w) {
		return nil, ErrGuessLength
	}
	if !e.catalog.IsAllowed(w) {
		return nil, ErrGuessNotAWord
	}

	now = now.UTC()
	results := Score(g.Word, w)
	g.Guesses = append(g.Guesses, domain.Guess{Word: w, Results: results, CreatedAt: now})

	if w == g.Word {
		g.Status = domain.StatusWon
	} else if len(g.Guesses) >= g.MaxAttempts {
		g.Status = domain.StatusLost
	}
	g.UpdatedAt = now

	return results, nil
}
