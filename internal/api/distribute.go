package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/distributor"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/parser"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/reader"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/store"
)

// DistributeResponse is returned by POST /api/distribute.
type DistributeResponse struct {
	RunID  string              `json:"runId"`
	Result *distributor.Result `json:"result"`
}

// Distribute ingests the uploaded spreadsheets, sorts them into clock and
// tips sources, runs the distribution and persists the run.
// POST /api/distribute
func (h *Handler) Distribute(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	locator := parser.NewHeaderLocator()
	classifier := parser.NewFileKindClassifier()
	transposed := parser.NewTransposedExtractor(h.cfg.Heuristics.FallbackYear)

	req := distributor.Request{}
	filenames := make([]string, 0, len(files))

	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to read %q", fh.Filename)})
			return
		}

		raw, err := reader.Read(data, fh.Filename)
		if err != nil {
			var unsupported *model.UnsupportedFormatError
			status := http.StatusUnprocessableEntity
			if errors.As(err, &unsupported) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": fmt.Sprintf("%q: %v", fh.Filename, err)})
			return
		}
		filenames = append(filenames, fh.Filename)

		// A transposed sales report never has a usable header row, so
		// probe for that shape before the flat-table pipeline.
		if daily, ok := transposed.Extract(raw); ok {
			req.DailyTips = append(req.DailyTips, daily...)
			continue
		}

		_, table := locator.Locate(raw)
		switch classifier.Classify(table, fh.Filename) {
		case model.FileKindClock:
			clock := table
			req.Clock = &clock
			req.ClockHints = h.clockHints(table)
		default:
			req.TipsTables = append(req.TipsTables, table)
		}
	}

	res, err := h.engine.Distribute(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	run := store.Run{
		ID:          uuid.NewString(),
		Mode:        string(res.Mode),
		Filenames:   filenames,
		Dates:       res.Dates,
		Employees:   res.Employees,
		SkippedDays: res.SkippedDays,
		Warnings:    res.Warnings,
	}
	if err := h.store.SaveRun(run, res.Rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save run"})
		return
	}

	c.JSON(http.StatusOK, DistributeResponse{RunID: run.ID, Result: res})
}

// clockHints maps the configured timesheet columns onto the uploaded clock
// table. Columns the table does not actually carry are left for detection.
func (h *Handler) clockHints(t model.HeaderedTable) distributor.ClockHints {
	hints := distributor.ClockHints{DateLayout: h.cfg.Clock.DateLayout}
	if t.ColumnIndex(h.cfg.Clock.EmployeeColumn) >= 0 {
		hints.EmployeeCol = h.cfg.Clock.EmployeeColumn
	}
	if t.ColumnIndex(h.cfg.Clock.DateColumn) >= 0 {
		hints.DateCol = h.cfg.Clock.DateColumn
	}
	if t.ColumnIndex(h.cfg.Clock.HoursColumn) >= 0 {
		hints.HoursCol = h.cfg.Clock.HoursColumn
	}
	return hints
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
