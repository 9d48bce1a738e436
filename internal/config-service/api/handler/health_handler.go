package handler

import (
	"Config_Service_Microservice/internal/config-service/api/dto/response"
	"Config_Service_Microservice/internal/config-service/monitor"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	healthCheckTimeout = 2 * time.Second
)

// HealthCheck is one dependency probe reported by GET /health. A failing critical check
// turns the whole response into a 503.
type HealthCheck struct {
	Name     string
	Critical bool
	Check    func(ctx context.Context) error
}

// MonitorCheck reports the health monitor as unhealthy when its loop is not scheduled.
func MonitorCheck(m monitor.Monitor) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		state := m.Status().State
		if state != monitor.StateArmed && state != monitor.StateRunning {
			return fmt.Errorf("health monitor is %s", state)
		}
		return nil
	}
}

type HealthHandler interface {
	Health() gin.HandlerFunc
}

type healthHandler struct {
	logger      Logger
	serviceName string
	checks      []HealthCheck
}

func (h *healthHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, healthCheckTimeout)
		defer cancel()

		res := response.HealthResponse{
			Status:  statusHealthy,
			Service: h.serviceName,
			Checks:  make(map[string]string, len(h.checks)),
		}
		for _, check := range h.checks {
			if err := check.Check(ctx); err != nil {
				h.logger.LoggingError(c, fmt.Errorf("HealthHandler.Health: %s: %w", check.Name, err), "dependency check failed", zap.WarnLevel)
				res.Checks[check.Name] = statusUnhealthy
				if check.Critical {
					res.Status = statusUnhealthy
				}
				continue
			}
			res.Checks[check.Name] = statusHealthy
		}
		if res.Status != statusHealthy {
			c.JSON(http.StatusServiceUnavailable, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func NewHealthHandler(logger *zap.Logger, serviceName string, checks ...HealthCheck) HealthHandler {
	return &healthHandler{
		logger:      NewLogger(logger),
		serviceName: serviceName,
		checks:      checks,
	}
}
