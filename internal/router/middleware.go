package router

import (
	"net/http"
	"strings"

	"github.com/centavo-app/backend/internal/auth"
	"github.com/gin-gonic/gin"
)

// Authenticated verifies the bearer token on every request and stores the
// verified user ID in the context. Requests without a valid token never reach
// a handler.
func Authenticated(tokens *auth.TokenAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(auth.UserIDKey, userID)
	}
}
