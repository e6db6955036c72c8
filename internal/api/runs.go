package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/service/excel"
)

// ListRuns returns the most recent distribution runs.
// GET /api/runs?limit=50
func (h *Handler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun returns one run and its per-employee shares.
// GET /api/runs/:id
func (h *Handler) GetRun(c *gin.Context) {
	id := c.Param("id")

	run, err := h.store.GetRun(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	rows, err := h.store.GetRunShares(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shares"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run": run, "rows": rows})
}

// DownloadRun re-renders a persisted run as an xlsx workbook.
// GET /api/runs/:id/download
func (h *Handler) DownloadRun(c *gin.Context) {
	id := c.Param("id")

	run, err := h.store.GetRun(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	rows, err := h.store.GetRunShares(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shares"})
		return
	}

	f, err := excel.NewExporter().Export(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tip_distribution_%s.xlsx"`, run.ID))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("api: failed to stream workbook for run %s: %v", run.ID, err)
	}
}
