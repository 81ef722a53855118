package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/docsense-be/service"
	"github.com/tieubaoca/docsense-be/types"
)

type HealthHandler struct {
	health *services.HealthService
}

func NewHealthHandler(health *services.HealthService) *HealthHandler {
	return &HealthHandler{
		health: health,
	}
}

// HandleHealth reports per-request backend availability. Nothing is
// cached, so the response reflects the backends right now.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	health := h.health.Check(c.Request.Context())
	status := http.StatusOK
	if !health.OK() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, types.DataResponse{
		Status: "success",
		Data:   health,
	})
}
