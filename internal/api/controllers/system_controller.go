package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

type SystemController struct {
	registry *metrics.Registry
}

func NewSystemController(registry *metrics.Registry) *SystemController {
	return &SystemController{
		registry: registry,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (s *SystemController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, "Service healthy")
}

// Metrics godoc
// @Summary Counter snapshot
// @Tags System
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /metrics [get]
func (s *SystemController) Metrics(c *gin.Context) {
	utils.RespondSuccess(c, s.registry.Snapshot(), "Metrics snapshot")
}
