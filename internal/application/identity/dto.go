package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
)

// RegisterRequest represents a request to create a user account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=200" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6,max=128" example:"secret1"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@backendapi.com"`
	Password string `json:"password" binding:"required" example:"Admin123!"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
}

// UserResponse is the profile of the authenticated user
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Roles       []string   `json:"roles"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// LogoutInput identifies the token being revoked
type LogoutInput struct {
	UserID    uuid.UUID
	TokenJTI  string
	ExpiresAt time.Time
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Roles:       u.RoleNames(),
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
