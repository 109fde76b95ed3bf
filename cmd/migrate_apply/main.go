package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/db"
)

func main() {
	apply := flag.Bool("apply", false, "apply migrations instead of listing them")
	flag.Parse()

	migDir := filepath.Join("internal", "migrations")

	if !*apply {
		files, err := os.ReadDir(migDir)
		if err != nil {
			log.Fatalf("read migrations dir: %v", err)
		}
		for _, f := range files {
			fmt.Println(f.Name())
		}
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(context.Background(), pool, migDir); err != nil {
		log.Fatal(err)
	}
}
