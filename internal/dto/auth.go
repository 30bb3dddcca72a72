package dto

import "github.com/tbensalah/gestion_chantier_app/internal/core/domain"

// LoginRequest defines the login payload.
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse is the minimal identity returned after authentication.
// The password hash never leaves the service layer.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse defines the login success payload.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// RegisterRequest defines the payload for creating an operator account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// SessionCheckResponse defines the session validation payload.
type SessionCheckResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"userId"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.UserID,
		Username: u.Username,
	}
}
