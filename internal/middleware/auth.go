package middleware

import (
	"github.com/brunofarias/zapboard/internal/constants"
	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without an authenticated session and
// copies the session's user ID into the request context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)
		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID reads the authenticated user's ID from the request context.
// Session stores may deserialize the value as different integer types
// depending on the backend, so all of them are accepted.
func GetUserID(c *gin.Context) (uint64, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := raw.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
