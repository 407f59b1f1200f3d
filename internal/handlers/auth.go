package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// SessionMiddleware resolves the session cookie to its user snapshot and
// stashes it in the gin context. Requests without a live session pass
// through with no user; each handler decides what that means.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			user, err := store.Get(context.Background(), token)
			if err == nil && user != nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the session user, or nil when the request is
// unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// RequireUser is the authentication gate: 401 when there is no session.
func RequireUser(c *gin.Context) *models.User {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return nil
	}
	return user
}

// RequireRole is the authorization gate used by module and assignment
// mutation: a missing session and a wrong role both answer 403 with the
// given message.
func RequireRole(c *gin.Context, message string, roles ...string) *models.User {
	user := CurrentUser(c)
	if user == nil || !user.HasRole(roles...) {
		c.JSON(http.StatusForbidden, gin.H{"message": message})
		return nil
	}
	return user
}
