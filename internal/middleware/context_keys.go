package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by the
// session middleware. It returns the ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(int64)
	return userID, ok
}
