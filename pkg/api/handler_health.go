package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/pkg/database"
	"github.com/omniboxhq/omnibox/pkg/queue"
	"github.com/omniboxhq/omnibox/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's health report.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                       `json:"status"`
	Version  string                       `json:"version"`
	Checks   map[string]HealthCheck       `json:"checks"`
	Database *database.HealthStatus       `json:"database,omitempty"`
	Pools    map[string]*queue.PoolHealth `json:"pools,omitempty"`
}

// healthHandler handles GET /health. Unauthenticated; only the
// service's own components are checked, so an external provider outage
// cannot make the orchestrator restart us.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.coord != nil {
		if err := s.coord.Ping(reqCtx); err != nil {
			// Locks and cross-instance fanout degrade, core flows survive.
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["coordination"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["coordination"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	pools := make(map[string]*queue.PoolHealth)
	for name, pool := range map[string]*queue.WorkerPool{
		"webhook":  s.webhookPool,
		"outbound": s.outboundPool,
	} {
		if pool == nil {
			continue
		}
		h := pool.Health()
		pools[name] = h
		if h != nil && !h.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks[name+"_pool"] = HealthCheck{Status: healthStatusDegraded, Message: h.DBError}
		} else {
			checks[name+"_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Checks:   checks,
		Database: dbHealth,
		Pools:    pools,
	})
}
