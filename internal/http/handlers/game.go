package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wordle_backend/internal/game"
	"wordle_backend/internal/http/middleware"
	"wordle_backend/internal/repository"
)

// GuessRequest represents a single guess submission.
type GuessRequest struct {
	Word string `json:"word" binding:"required"`
}

// NewGame returns the caller's game for today's word, creating it on first
// call. Repeated calls on the same day return the same game.
func (h *Handler) NewGame(c *gin.Context) {
	ident, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	view, created, err := h.GameService.NewGame(c.Request.Context(), ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}
	if created {
		middleware.GamesCreated.Inc()
	}

	c.JSON(http.StatusOK, view)
}

// GetGame returns the state of one of the caller's games.
func (h *Handler) GetGame(c *gin.Context) {
	ident, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	view, err := h.GameService.GetGame(c.Request.Context(), gameID, ident)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Guess submits a guess against one of the caller's games.
func (h *Handler) Guess(c *gin.Context) {
	ident, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.GameService.SubmitGuess(c.Request.Context(), gameID, ident, req.Word)
	if err != nil {
		if errors.Is(err, game.ErrGuessLength) || errors.Is(err, game.ErrGuessNotAWord) || errors.Is(err, game.ErrGameCompleted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit guess"})
		return
	}

	middleware.GuessesTotal.WithLabelValues(string(view.Status)).Inc()
	c.JSON(http.StatusOK, view)
}
