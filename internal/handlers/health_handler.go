package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/realtime"
)

type HealthHandler struct {
	db      *gorm.DB
	hub     *realtime.Hub
	started time.Time
}

func NewHealthHandler(db *gorm.DB, hub *realtime.Hub) *HealthHandler {
	return &HealthHandler{db: db, hub: hub, started: time.Now()}
}

// Health answers 503 when the database does not respond to a ping.
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	dbState := "ok"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status = http.StatusServiceUnavailable
		dbState = "unavailable"
	}

	body := gin.H{
		"status":   http.StatusText(status),
		"database": dbState,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	}
	if h.hub != nil {
		body["boardClients"] = h.hub.Clients()
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		body["memoryUsedPercent"] = vm.UsedPercent
	}

	c.JSON(status, body)
}
