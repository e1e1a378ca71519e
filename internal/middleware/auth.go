// Package middleware holds the gin middleware for the API: bearer-token
// authentication and per-client rate limiting.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MarwahManan/Hackathon-2/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// UserIDKey is the gin context key the authenticated user ID is stored under.
const UserIDKey = "user_id"

// RequireAuth verifies the Authorization bearer token and puts the resulting
// user ID into the request context. Every task route sits behind it.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or missing authentication token",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Authentication token has expired",
					"code":  "TOKEN_EXPIRED",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication token is invalid",
				"code":  "INVALID_TOKEN",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID set by RequireAuth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
