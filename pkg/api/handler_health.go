package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/mailguard/pkg/database"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the service's own dependencies are checked; the NLP sidecar is
// excluded so an orchestrator does not restart this process when the
// external service is down.
func (s *Server) healthHandler(c *gin.Context) {
	if s.dbClient == nil {
		c.JSON(http.StatusOK, &HealthResponse{Status: healthStatusHealthy})
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   healthStatusUnhealthy,
			Database: dbHealth,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, &HealthResponse{
		Status:   healthStatusHealthy,
		Database: dbHealth,
	})
}
