package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"wordle_backend/internal/logger"
)

type Config struct {
	AppPort     string
	DatabaseURL string // empty means in-memory storage
	JWTSecret   string

	// Redis (rate limiter); empty addr disables it
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Word lists; empty paths fall back to the embedded defaults
	AnswersFile string
	AllowedFile string
	DailySalt   string

	// Rate limits
	APIRateLimit    int
	APIRateWindow   int // seconds
	GuessRateLimit  int
	GuessRateWindow int // seconds

	// Logging
	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment (.env honored when present).
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	dailySalt := os.Getenv("DAILY_SALT")
	if dailySalt == "" {
		dailySalt = "wordle-daily"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			redisDB = n
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := 60
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = n
		}
	}

	guessRateLimit := 30
	if v := os.Getenv("GUESS_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			guessRateLimit = n
		}
	}

	guessRateWindow := 60
	if v := os.Getenv("GUESS_RATE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			guessRateWindow = n
		}
	}

	return &Config{
		AppPort:         port,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       jwtSecret,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		AnswersFile:     os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:     os.Getenv("WORDS_ALLOWED_FILE"),
		DailySalt:       dailySalt,
		APIRateLimit:    apiRateLimit,
		APIRateWindow:   apiRateWindow,
		GuessRateLimit:  guessRateLimit,
		GuessRateWindow: guessRateWindow,
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogJSON:         os.Getenv("LOG_JSON") == "true",
	}
}
