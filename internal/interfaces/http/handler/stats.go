package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/yishaq/backend/internal/application/report"
)

// StatsHandler handles the back-office dashboard endpoint
type StatsHandler struct {
	BaseHandler
	statsService *reportapp.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *reportapp.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns sales figures, order counts and recent orders
func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
