package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// accessMiddleware validates the Bearer token against ACCESS_TOKEN_HASH.
// With no hash configured every request passes. Generate a token and its
// hash with cmd/hash-token.
func (h *Handler) accessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(h.accessHash) == 0 {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if err := bcrypt.CompareHashAndPassword(h.accessHash, []byte(token)); err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
