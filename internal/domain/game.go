package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// WordLength is the fixed length of every answer and guess.
	WordLength = 5
	// MaxAttempts is the number of guesses a player gets per game.
	MaxAttempts = 6
)

// LetterResult - per-letter feedback for a guess
type LetterResult string

const (
	LetterCorrect       LetterResult = "correct"
	LetterWrongPosition LetterResult = "wrong_position"
	LetterWrong         LetterResult = "wrong"
)

// GameStatus - lifecycle state of a game
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusLost       GameStatus = "lost"
)

// Guess is one scored attempt.
type Guess struct {
	Word      string         `db:"word" json:"word"`
	Results   []LetterResult `db:"results" json:"results"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// Game is a single daily-word game owned by one user.
// Word stays hidden from clients until the game is over.
type Game struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Word        string     `db:"word" json:"-"`
	Day         string     `db:"day" json:"day"` // UTC date key, e.g. 2026-08-24
	MaxAttempts int        `db:"max_attempts" json:"max_attempts"`
	Guesses     []Guess    `db:"guesses" json:"guesses"`
	Status      GameStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// AttemptsUsed returns how many guesses have been made.
func (g *Game) AttemptsUsed() int {
	return len(g.Guesses)
}

// AttemptsRemaining returns how many guesses are left.
func (g *Game) AttemptsRemaining() int {
	r := g.MaxAttempts - len(g.Guesses)
	if r < 0 {
		return 0
	}
	return r
}

// IsOver returns whether the game reached a terminal state.
func (g *Game) IsOver() bool {
	return g.Status == StatusWon || g.Status == StatusLost
}

// Clone returns a deep copy so callers can never mutate stored state.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Guesses = make([]Guess, len(g.Guesses))
	for i, gs := range g.Guesses {
		cp.Guesses[i] = Guess{
			Word:      gs.Word,
			Results:   append([]LetterResult(nil), gs.Results...),
			CreatedAt: gs.CreatedAt,
		}
	}
	return &cp
}

// GuessView is the client-facing shape of one attempt.
type GuessView struct {
	Word    string         `json:"word"`
	Results []LetterResult `json:"results"`
}

// GameView is the client-facing game state.
// Word is only populated once the game is over.
type GameView struct {
	ID                uuid.UUID   `json:"id"`
	Day               string      `json:"day"`
	Status            GameStatus  `json:"status"`
	AttemptsUsed      int         `json:"attempts_used"`
	AttemptsRemaining int         `json:"attempts_remaining"`
	MaxAttempts       int         `json:"max_attempts"`
	Guesses           []GuessView `json:"guesses"`
	Word              *string     `json:"word,omitempty"`
}

// View builds the client-facing state, revealing the word only after the game ends.
func (g *Game) View() *GameView {
	v := &GameView{
		ID:                g.ID,
		Day:               g.Day,
		Status:            g.Status,
		AttemptsUsed:      g.AttemptsUsed(),
		AttemptsRemaining: g.AttemptsRemaining(),
		MaxAttempts:       g.MaxAttempts,
		Guesses:           make([]GuessView, 0, len(g.Guesses)),
	}
	for _, gs := range g.Guesses {
		v.Guesses = append(v.Guesses, GuessView{Word: gs.Word, Results: gs.Results})
	}
	if g.IsOver() {
		word := g.Word
		v.Word = &word
	}
	return v
}
