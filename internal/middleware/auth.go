package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

// SessionAuthMiddleware creates a Gin middleware handler that validates the
// session cookie and stores the authenticated user ID in the request context.
func SessionAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := c.Cookie(cfg.SessionCookieName)
		if err != nil || tokenString == "" {
			logger.Warn("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := utils.ValidateSessionToken(tokenString, cfg.JWTSecret)
		if err != nil {
			logger.Warn("Invalid session token", "error", err)
			msg := "Invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)

		enrichedLogger := logger.With(slog.String("user_id", strconv.FormatInt(userID, 10)))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
