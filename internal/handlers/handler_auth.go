package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	// 5 attempts per minute per IP on the credential endpoint.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
		auth.GET("/check", h.Check)
	}
}

// Login authenticates the operator and sets the session cookie. The cookie
// lives one day, or five days with rememberMe.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, logger, err, "Login failed")
		return
	}

	expiry := h.cfg.SessionExpiry
	if req.RememberMe {
		expiry = h.cfg.SessionRememberExpiry
	}

	token, err := utils.GenerateSessionToken(user.UserID, h.cfg.JWTSecret, expiry)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	h.setSessionCookie(c, token, int(expiry/time.Second))

	logger.Info("User logged in", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, User: dto.ToUserResponse(user)})
}

// Register creates an operator account.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Registration failed")
		return
	}

	logger.Info("User registered", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check reports whether the request carries a valid session.
func (h *AuthHandler) Check(c *gin.Context) {
	tokenString, err := c.Cookie(h.cfg.SessionCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	userID, err := utils.ValidateSessionToken(tokenString, h.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session"})
		return
	}

	c.JSON(http.StatusOK, dto.SessionCheckResponse{Success: true, UserID: userID})
}

// setSessionCookie writes the httpOnly session cookie. Secure is only set in
// production so local development over plain HTTP keeps working.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", h.cfg.IsProduction, true)
}
