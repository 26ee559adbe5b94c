package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/scheduler"
)

// AdminHandler exposes operational actions behind the admin role guard.
type AdminHandler struct {
	sched *scheduler.Scheduler
}

func NewAdminHandler(sched *scheduler.Scheduler) *AdminHandler {
	return &AdminHandler{sched: sched}
}

// RunMaintenance triggers the retention sweep outside its cron cadence.
func (h *AdminHandler) RunMaintenance(c *gin.Context) {
	deactivated, deleted := h.sched.RunSweep(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"suggestions_deactivated": deactivated,
		"estimates_deleted":       deleted,
	})
}
