package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wordle_backend/internal/domain"
)

func testGame() *domain.Game {
	now := time.Now().UTC()
	return &domain.Game{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Word:        "crane",
		Day:         "2026-08-24",
		MaxAttempts: domain.MaxAttempts,
		Guesses:     []domain.Guess{},
		Status:      domain.StatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMemoryGameRepoCreateGet(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()

	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
	require.Equal(t, "crane", got.Word)
	require.Equal(t, domain.StatusInProgress, got.Status)
}

func TestMemoryGameRepoGetUnknown(t *testing.T) {
	repo := NewMemoryGameRepository()

	_, err := repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestMemoryGameRepoDuplicateID(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()

	require.NoError(t, repo.Create(ctx, g))

	dup := testGame()
	dup.ID = g.ID
	require.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicateID)
}

func TestMemoryGameRepoUpdate(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()
	require.NoError(t, repo.Create(ctx, g))

	updated, err := repo.Update(ctx, g.ID, func(g *domain.Game) error {
		g.Status = domain.StatusWon
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusWon, updated.Status)

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusWon, got.Status)
}

func TestMemoryGameRepoUpdateRollsBackOnError(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()
	require.NoError(t, repo.Create(ctx, g))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, g.ID, func(g *domain.Game) error {
		// mutate before failing; none of this may stick
		g.Status = domain.StatusLost
		g.Guesses = append(g.Guesses, domain.Guess{Word: "slate"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, got.Status)
	require.Empty(t, got.Guesses)
}

func TestMemoryGameRepoGetReturnsCopy(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	got.Status = domain.StatusLost
	got.Guesses = append(got.Guesses, domain.Guess{Word: "hacky"})

	fresh, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, fresh.Status)
	require.Empty(t, fresh.Guesses)
}

// Concurrent updates to one game must serialize with no lost writes.
func TestMemoryGameRepoConcurrentUpdates(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	g := testGame()
	g.MaxAttempts = 1000
	require.NoError(t, repo.Create(ctx, g))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, g.ID, func(g *domain.Game) error {
				g.Guesses = append(g.Guesses, domain.Guess{Word: "slate", CreatedAt: time.Now()})
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got.Guesses, writers)
}
