package handlers

import (
	"net/http"

	"talentflow/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// StatsHandler holds dependencies for the aggregate stats endpoint.
type StatsHandler struct {
	service services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary      Pipeline-wide counts
// @Description  Retrieves totals for jobs, candidates, and applications, broken down by job status and hiring stage.
// @Tags         stats
// @Accept       json
// @Produce      json
// @Success      200 {object}  dto.StatsResponse "Successfully retrieved stats"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
