package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/db"
	"wordle_backend/internal/domain"
	"wordle_backend/internal/repository"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	migDir := filepath.Join("..", "..", "internal", "migrations")
	if err := db.ApplyMigrations(context.Background(), pool, migDir); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

func newStoredUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.New(), Username: "it-user"}
	if err := repository.NewPgUserRepository(pool).Save(context.Background(), u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	return u
}

func TestPgGameRepository_CreateGetUpdate(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	u := newStoredUser(t, pool)
	repo := repository.NewPgGameRepository(pool)

	now := time.Now().UTC()
	g := &domain.Game{
		ID:          uuid.New(),
		UserID:      u.ID,
		Word:        "crane",
		Day:         "2026-01-02",
		MaxAttempts: domain.MaxAttempts,
		Guesses:     []domain.Guess{},
		Status:      domain.StatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("create game: %v", err)
	}

	if err := repo.Create(ctx, g); !errors.Is(err, repository.ErrDuplicateID) {
		t.Fatalf("second create = %v; want ErrDuplicateID", err)
	}

	got, err := repo.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Word != "crane" || got.Day != g.Day || got.Status != domain.StatusInProgress {
		t.Fatalf("stored game came back wrong: %+v", got)
	}
	if len(got.Guesses) != 0 {
		t.Fatalf("expected no guesses, got %d", len(got.Guesses))
	}

	updated, err := repo.Update(ctx, g.ID, func(g *domain.Game) error {
		g.Guesses = append(g.Guesses, domain.Guess{
			Word: "slate",
			Results: []domain.LetterResult{
				domain.LetterWrong, domain.LetterWrong, domain.LetterCorrect,
				domain.LetterWrong, domain.LetterCorrect,
			},
			CreatedAt: time.Now().UTC(),
		})
		g.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		t.Fatalf("update game: %v", err)
	}
	if len(updated.Guesses) != 1 {
		t.Fatalf("expected 1 guess after update, got %d", len(updated.Guesses))
	}

	// a failed mutation must not be visible afterwards
	boom := errors.New("boom")
	if _, err := repo.Update(ctx, g.ID, func(g *domain.Game) error {
		g.Status = domain.StatusWon
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("update = %v; want the callback error back", err)
	}

	got, err = repo.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Status != domain.StatusInProgress || len(got.Guesses) != 1 {
		t.Fatalf("aborted update leaked changes: %+v", got)
	}

	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, repository.ErrGameNotFound) {
		t.Fatalf("get unknown = %v; want ErrGameNotFound", err)
	}
}

func TestPgUserRepository_SaveAndCurrentGame(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	repo := repository.NewPgUserRepository(pool)

	u := &domain.User{ID: uuid.New(), Username: "alice"}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("save did not backfill created_at")
	}

	u.Username = "alice-renamed"
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice-renamed" {
		t.Fatalf("username = %q; want alice-renamed", got.Username)
	}
	if got.CurrentGameID != nil {
		t.Fatalf("expected no current game, got %v", got.CurrentGameID)
	}

	gameID := uuid.New()
	if err := repo.SetCurrentGame(ctx, u.ID, gameID, "2026-01-02"); err != nil {
		t.Fatalf("set current game: %v", err)
	}

	got, err = repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentGameID == nil || *got.CurrentGameID != gameID {
		t.Fatalf("current_game_id = %v; want %s", got.CurrentGameID, gameID)
	}
	if got.CurrentGameDay != "2026-01-02" {
		t.Fatalf("current_game_day = %q; want 2026-01-02", got.CurrentGameDay)
	}

	if err := repo.SetCurrentGame(ctx, uuid.New(), gameID, "2026-01-02"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("set current game for unknown user = %v; want ErrUserNotFound", err)
	}

	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("get unknown = %v; want ErrUserNotFound", err)
	}
}
