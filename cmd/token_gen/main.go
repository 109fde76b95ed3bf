package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"

	"wordle_backend/internal/db"
	"wordle_backend/internal/domain"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/service"
)

func main() {
	idFlag := flag.String("id", "", "user uuid (random when empty)")
	username := flag.String("username", "testuser", "username claim")
	flag.Parse()

	userID := uuid.New()
	if *idFlag != "" {
		parsed, err := uuid.Parse(*idFlag)
		if err != nil {
			log.Fatalf("invalid -id: %v", err)
		}
		userID = parsed
	}

	// with DATABASE_URL set the user row is upserted so /me works right away
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool := db.Connect(dsn)
		defer pool.Close()

		repo := repository.NewPgUserRepository(pool)
		u := &domain.User{ID: userID, Username: *username}
		if err := repo.Save(context.Background(), u); err != nil {
			log.Fatalf("save user failed: %v", err)
		}
		log.Printf("user upserted id=%s\n", u.ID)
	}

	service.InitJWT()
	token, err := service.GenerateJWT(userID, *username)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("user_id=%s username=%s\n", userID, *username)
	log.Printf("token=%s\n", token)
}
