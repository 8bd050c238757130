package handler

import (
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
)

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// HealthData is the body of the health endpoint
// @Description Service and database health
type HealthData struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
	// Pool is reported when the backing store exposes pool statistics
	Pool *persistence.ConnectionStats `json:"pool,omitempty"`
}

// LogoutData confirms a revoked token
// @Description Logout result
type LogoutData struct {
	Message string `json:"message" example:"Logged out"`
}
