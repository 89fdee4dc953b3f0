package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/auth"
	"github.com/bookswap/bookswap/internal/database"
)

// AuthTokenCookie is the cookie fallback for clients that do not send an
// Authorization header.
const AuthTokenCookie = "auth_token"

// AuthMiddleware validates the bearer token, resolves the subject to a
// live user row, and sets user info in the gin context. The token is
// read from the Authorization header or, failing that, the auth_token
// cookie.
func AuthMiddleware(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		userUUID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID format in token"})
			c.Abort()
			return
		}

		// The subject must still exist; a deleted account does not get
		// to keep using an old token.
		user, err := store.GetUserByID(userUUID)
		if err == database.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userName", user.Name)
		c.Set("userEmail", user.Email)

		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header or
// the auth_token cookie. Routes are called with either style.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(AuthTokenCookie); err == nil {
		return cookie
	}

	return ""
}
