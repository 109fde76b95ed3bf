package http

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/config"
	"wordle_backend/internal/http/handlers"
	"wordle_backend/internal/http/middleware"
	"wordle_backend/internal/service"
	"wordle_backend/internal/words"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, games *service.GameService, catalog *words.Catalog, version string) {
	RegisterRoutesWithConfig(r, db, games, catalog, version, nil)
}

func RegisterRoutesWithConfig(r *gin.Engine, db *pgxpool.Pool, games *service.GameService, catalog *words.Catalog, version string, cfg *config.Config) {
	h := handlers.NewHandler(db, games, catalog)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	// Guess rate limiting (per user)
	guessRateLimit := 30
	guessRateWindow := time.Minute
	if cfg != nil {
		apiRateLimit = cfg.APIRateLimit
		apiRateWindow = time.Duration(cfg.APIRateWindow) * time.Second
		guessRateLimit = cfg.GuessRateLimit
		guessRateWindow = time.Duration(cfg.GuessRateWindow) * time.Second
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, guessRateLimit, guessRateWindow)

	// Legacy /api routes (kept for old clients)
	api := r.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimit, apiRateWindow))

	// Keep old health endpoint for backward compatibility
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, guessRateLimit, guessRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, guessRateLimit int, guessRateWindow time.Duration) {
	// User profile
	api.GET("/me", middleware.JWT(), h.Me)

	// Guess rate limiter middleware (per user, not per IP)
	guessRL := middleware.GuessRateLimit(guessRateLimit, guessRateWindow)

	// Daily game endpoints
	api.POST("/game/new", middleware.JWT(), h.NewGame)
	api.GET("/game/:id", middleware.JWT(), h.GetGame)
	api.POST("/game/:id/guess", middleware.JWT(), guessRL, h.Guess)

	// Word list stats (debug)
	api.GET("/words/stats", h.WordsStats)
}
