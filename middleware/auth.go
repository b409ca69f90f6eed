package middleware

import (
	"errors"
	"net/http"
	"strings"

	creativeRepo "brandconnect/database/repository/creative"
	userRepo "brandconnect/database/repository/user"
	"brandconnect/models"
	"brandconnect/services/session"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, checks it against the
// stored token hash, and verifies the backing session is still live.
// The session is touched on every authenticated request.
func AuthMiddleware(users userRepo.UserRepository, creatives creativeRepo.CreativeRepository, tracker *session.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, role, sessionID, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The stored hash must match, so a revoked token cannot be
		// replayed even while its signature is still valid.
		hash := utils.HashToken(tokenString)
		switch role {
		case models.RoleCreative:
			cr, err := creatives.GetByTokenHash(hash)
			if err != nil || cr == nil || cr.ID != accountID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
				return
			}
		default:
			usr, err := users.GetByTokenHash(hash)
			if err != nil || usr == nil || usr.ID != accountID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
				return
			}
		}

		status, err := tracker.Status(sessionID)
		if err != nil {
			if errors.Is(err, utils.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session unavailable"})
			return
		}
		if status.State == models.SessionStateInactive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No active session, please sign in"})
			return
		}
		tracker.Touch(sessionID)

		c.Set("accountID", accountID)
		c.Set("role", role)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
