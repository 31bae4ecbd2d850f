package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/session"
)

// SessionAuth resolves the browser's session token and attaches the user
// identity plus the upstream bearer token to the request context.
func SessionAuth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <session>'"})
			c.Abort()
			return
		}

		sess, ok := sessions.Get(parts[1])
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired or unknown"})
			c.Abort()
			return
		}

		c.Set("sessionID", sess.ID)
		c.Set("userID", sess.UserID)
		c.Set("username", sess.Username)
		c.Set("userRole", sess.Role)
		c.Set("upstreamToken", sess.Token)
		c.Next()
	}
}
