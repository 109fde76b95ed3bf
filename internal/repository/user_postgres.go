package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/domain"
)

// PgUserRepository stores player records in Postgres.
type PgUserRepository struct {
	db *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(username, ''), current_game_id, COALESCE(current_game_day, ''), created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	)

	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.CurrentGameID,
		&u.CurrentGameDay,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) Save(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (id, username)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, updated_at = now()
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Username,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *PgUserRepository) SetCurrentGame(ctx context.Context, userID, gameID uuid.UUID, day string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET current_game_id = $2, current_game_day = $3, updated_at = now()
		 WHERE id = $1`,
		userID, gameID, day,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
