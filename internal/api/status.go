package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/store"
)

// StatusResponse describes the service state for the landing page.
type StatusResponse struct {
	Initialized bool       `json:"initialized"`
	TotalRuns   int        `json:"totalRuns"`
	LastRun     *store.Run `json:"lastRun,omitempty"`
}

// GetStatus reports whether any runs exist and the most recent one.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, err := h.store.CountRuns()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	resp := StatusResponse{
		Initialized: total > 0,
		TotalRuns:   total,
	}
	if runs, err := h.store.ListRuns(1); err == nil && len(runs) > 0 {
		resp.LastRun = runs[0]
	}

	c.JSON(http.StatusOK, resp)
}
