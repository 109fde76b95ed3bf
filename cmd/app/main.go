package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wordle_backend/internal/config"
	"wordle_backend/internal/db"
	"wordle_backend/internal/game"
	httpServer "wordle_backend/internal/http"
	"wordle_backend/internal/http/middleware"
	"wordle_backend/internal/logger"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/service"
	"wordle_backend/internal/words"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT()

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	catalog, err := words.Load(cfg.AnswersFile, cfg.AllowedFile, cfg.DailySalt)
	if err != nil {
		logger.Fatal("failed to load word lists", "error", err)
	}
	answers, allowed := catalog.Stats()
	logger.Info("word lists loaded", "answers", answers, "allowed", allowed)

	var (
		dbPool *pgxpool.Pool
		games  repository.GameRepository
		users  repository.UserRepository
	)
	if cfg.DatabaseURL != "" {
		dbPool = db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()
		games = repository.NewPgGameRepository(dbPool)
		users = repository.NewPgUserRepository(dbPool)
	} else {
		logger.Info("DATABASE_URL not set, using in-memory storage")
		games = repository.NewMemoryGameRepository()
		users = repository.NewMemoryUserRepository()
	}

	svc := service.NewGameService(games, users, game.NewEngine(catalog))

	r := gin.Default()

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutesWithConfig(r, dbPool, svc, catalog, version, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
