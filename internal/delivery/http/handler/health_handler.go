package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/subway-path-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, доступность которой проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка доступности Postgres и Redis
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

// Check godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 503 {object} utils.SuccessResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	components := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("component", name), zap.Error(err))
			components[name] = "unavailable"
			status = "degraded"
			continue
		}
		components[name] = "ok"
	}

	if status != "healthy" {
		c.Status(fiber.StatusServiceUnavailable)
	}

	return utils.SendSuccess(c, fiber.Map{
		"status":     status,
		"components": components,
		"time":       time.Now(),
	}, nil)
}
