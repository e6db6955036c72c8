package parser

import (
	"strings"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// HeaderLocator finds the real header row in a headerless grid, skipping
// report banners and blank spacer rows.
type HeaderLocator struct{}

// NewHeaderLocator creates a locator.
func NewHeaderLocator() *HeaderLocator {
	return &HeaderLocator{}
}

// Locate scans at most the first HeaderScanWindow rows and returns the index
// of the chosen header row plus the resulting headered table. When no row
// qualifies, row 0 is used.
func (l *HeaderLocator) Locate(raw model.RawTable) (int, model.HeaderedTable) {
	if len(raw) == 0 {
		return 0, model.HeaderedTable{}
	}

	headerIdx := 0

	if len(raw) > 1 {
		limit := len(raw)
		if limit > HeaderScanWindow {
			limit = HeaderScanWindow
		}

		found := false
		for i := 0; i < limit; i++ {
			if isHeaderCandidate(raw[i]) {
				headerIdx = i
				found = true
				break
			}
		}
		if !found {
			headerIdx = 0
		}
	}

	columns := make([]string, len(raw[headerIdx]))
	for i, cell := range raw[headerIdx] {
		columns[i] = NormalizeColumnName(cell)
	}

	rows := make([][]string, 0, len(raw)-headerIdx-1)
	for _, src := range raw[headerIdx+1:] {
		// Pad short rows so every data row matches the header width.
		row := make([]string, len(columns))
		copy(row, src)
		rows = append(rows, row)
	}

	return headerIdx, model.HeaderedTable{Columns: columns, Rows: rows}
}

// isHeaderCandidate applies the two rejection filters: sparse rows, and
// report-title rows that are not fully populated.
func isHeaderCandidate(row []string) bool {
	if len(row) == 0 {
		return false
	}

	filled := 0
	var joined strings.Builder
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			filled++
		}
		joined.WriteString(strings.ToLower(cell))
		joined.WriteString(" ")
	}

	fillRatio := float64(filled) / float64(len(row))
	if fillRatio < HeaderMinFillRatio {
		return false
	}
	if ContainsAny(joined.String(), titleKeywords) && fillRatio < TitleRowFillRatio {
		return false
	}
	return true
}
