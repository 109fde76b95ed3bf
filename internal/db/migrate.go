package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/logger"
)

// ApplyMigrations runs every .sql file in dir in name order. Migrations are
// written with IF NOT EXISTS so re-applying them is safe. os.ReadDir already
// returns entries sorted by name.
func ApplyMigrations(ctx context.Context, db *pgxpool.Pool, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.Info("applied migration", "file", name)
	}
	return nil
}
