package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/domain"
)

// PgGameRepository stores games in Postgres. Per-game exclusion for Update
// comes from a row lock: SELECT ... FOR UPDATE inside a transaction.
type PgGameRepository struct {
	db *pgxpool.Pool
}

func NewPgGameRepository(db *pgxpool.Pool) *PgGameRepository {
	return &PgGameRepository{db: db}
}

func (r *PgGameRepository) Create(ctx context.Context, g *domain.Game) error {
	guessesJSON, err := json.Marshal(g.Guesses)
	if err != nil {
		return fmt.Errorf("marshal guesses: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO games (id, user_id, word, day, max_attempts, guesses, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		g.ID,
		g.UserID,
		g.Word,
		g.Day,
		g.MaxAttempts,
		guessesJSON,
		g.Status,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateID
	}
	return nil
}

func (r *PgGameRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, word, day, max_attempts, guesses, status, created_at, updated_at
		 FROM games
		 WHERE id = $1`,
		id,
	)
	return scanGame(row)
}

func (r *PgGameRepository) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Game) error) (*domain.Game, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the row for the duration of the mutation
	row := tx.QueryRow(ctx,
		`SELECT id, user_id, word, day, max_attempts, guesses, status, created_at, updated_at
		 FROM games
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	)
	g, err := scanGame(row)
	if err != nil {
		return nil, err
	}

	if err := fn(g); err != nil {
		return nil, err
	}

	guessesJSON, err := json.Marshal(g.Guesses)
	if err != nil {
		return nil, fmt.Errorf("marshal guesses: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE games SET guesses = $1, status = $2, updated_at = $3 WHERE id = $4`,
		guessesJSON, g.Status, g.UpdatedAt, g.ID,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var (
		g           domain.Game
		guessesJSON []byte
	)
	if err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Word,
		&g.Day,
		&g.MaxAttempts,
		&guessesJSON,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	g.Guesses = []domain.Guess{}
	if len(guessesJSON) > 0 {
		if err := json.Unmarshal(guessesJSON, &g.Guesses); err != nil {
			return nil, fmt.Errorf("unmarshal guesses: %w", err)
		}
	}
	return &g, nil
}
