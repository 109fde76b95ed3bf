package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wordle_backend/internal/service"
)

// JWT verifies the Authorization bearer token and stores the caller identity
// in the gin context under user_id and username.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		ident, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", ident.UserID)
		c.Set("username", ident.Username)
		c.Next()
	}
}
