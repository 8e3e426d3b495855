package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
	ucDashboard "github.com/BruksfildServices01/essentia-tours/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *ucDashboard.GetStats
}

func NewDashboardHandler(stats *ucDashboard.GetStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats never fails the admin home: on error it answers zeroed counters.
func (h *DashboardHandler) Stats(c *gin.Context) {
	st, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		log.Printf("[Dashboard] stats error: %v", err)
		c.JSON(http.StatusOK, domain.Stats{})
		return
	}
	c.JSON(http.StatusOK, st)
}
