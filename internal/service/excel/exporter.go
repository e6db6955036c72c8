// Package excel renders distribution results to xlsx workbooks.
package excel

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// SummarySheetName is the sheet the web UI and the download endpoint expect.
const SummarySheetName = "Tip Distribution Summary"

// Exporter writes the final export table.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the distribution rows to a new workbook. Shares are rounded
// to two decimals here, at presentation time only; upstream accumulation
// keeps full precision.
func (e *Exporter) Export(rows []model.DistributionRow) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SummarySheetName)

	headers := []string{"Employee Name", "Total Tip Share"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SummarySheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(SummarySheetName, 1, 1, headerStyle)

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(SummarySheetName, fmt.Sprintf("A%d", row), r.Employee)
		f.SetCellValue(SummarySheetName, fmt.Sprintf("B%d", row), math.Round(r.Share*100)/100)
	}

	f.SetColWidth(SummarySheetName, "A", "A", 30)
	f.SetColWidth(SummarySheetName, "B", "B", 18)

	return f, nil
}
