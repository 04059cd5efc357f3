package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey        = "identity.userID"
	defaultUserIDKey = "identity.defaultUserID"
)

// Identity extracts the requester principal from the X-User-ID header
// into the request context. There is no silent fallback here; the
// configured default user id is exposed separately so callers that use
// it can log the fact.
func Identity(defaultUserID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.GetHeader("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil || id <= 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-User-ID header"})
				return
			}
			c.Set(userIDKey, id)
		}

		c.Set(defaultUserIDKey, defaultUserID)
		c.Next()
	}
}

// UserID returns the authenticated principal id, if any
func UserID(c *gin.Context) (int, bool) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	return id.(int), true
}

// DefaultUserID returns the configured test-only fallback user id, or 0
func DefaultUserID(c *gin.Context) int {
	id, ok := c.Get(defaultUserIDKey)
	if !ok {
		return 0
	}
	return id.(int)
}
