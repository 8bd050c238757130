package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/infrastructure/logger"
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

type poolReporter interface {
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler serves the liveness/readiness probe
type HealthHandler struct {
	BaseHandler
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Check godoc
//
//	@ID				healthCheck
//	@Summary		Health check
//	@Description	Pings the database. Returns 503 when it is unreachable.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	APIResponse[HealthData]
//	@Failure		503	{object}	APIResponse[HealthData]
//	@Router			/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeServiceUnavailable, "Database unavailable", middleware.GetRequestID(c))
		resp.Data = HealthData{Status: "degraded", Database: "down"}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	data := HealthData{Status: "ok", Database: "up"}
	if r, ok := h.db.(poolReporter); ok {
		if stats, err := r.Stats(); err == nil {
			data.Pool = &stats
		}
	}
	h.Success(c, data)
}
