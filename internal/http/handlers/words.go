package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordle_backend/internal/domain"
)

// WordsStats reports the size of the loaded word lists.
func (h *Handler) WordsStats(c *gin.Context) {
	answers, allowed := h.Words.Stats()
	c.JSON(http.StatusOK, gin.H{
		"answers":      answers,
		"allowed":      allowed,
		"word_length":  domain.WordLength,
		"max_attempts": domain.MaxAttempts,
	})
}
