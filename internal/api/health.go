package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/logger"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func() error

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks map[string]ReadinessCheck
}

// NewHealthHandler builds a HealthHandler. Every named check must pass for /readyz to be 200.
func NewHealthHandler(checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Register mounts /healthz and /readyz on r.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the process is serving
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Returns ready once the series cache and ticker board are usable
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(); err != nil {
			logger.L().Warn().Err(err).Str("check", name).Msg("readiness_check_failed")
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ready"})
}
