package parser

import (
	"strings"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// TransposedExtractor probes for the alternate sales report shape where
// dates label columns and a single row carries the per-day tip totals.
type TransposedExtractor struct {
	fallbackYear int
}

// NewTransposedExtractor creates an extractor. fallbackYear completes
// year-less date labels; pass 0 for the default.
func NewTransposedExtractor(fallbackYear int) *TransposedExtractor {
	if fallbackYear <= 0 {
		fallbackYear = DefaultFallbackYear
	}
	return &TransposedExtractor{fallbackYear: fallbackYear}
}

// Extract returns the (date, tip) pairs recovered from a transposed report,
// or ok=false when the grid does not match the shape. This is a soft-fail
// probe: callers fall through to the flat-table path on false.
func (e *TransposedExtractor) Extract(raw model.RawTable) ([]model.DailyTip, bool) {
	dateRowIdx, ok := findDateRow(raw)
	if !ok {
		return nil, false
	}

	tipsRowIdx, ok := findTipsRow(raw)
	if !ok {
		return nil, false
	}

	dateRow := raw[dateRowIdx]
	tipsRow := raw[tipsRowIdx]

	pairs := make([]model.DailyTip, 0, len(dateRow))
	for col := 1; col < len(dateRow) && col < len(tipsRow); col++ {
		amount, ok := CleanCurrency(tipsRow[col])
		if !ok {
			continue
		}
		date, ok := ParseDateWithFallbackYear(dateRow[col], e.fallbackYear)
		if !ok {
			continue
		}
		pairs = append(pairs, model.DailyTip{Date: date, Amount: amount})
	}

	if len(pairs) == 0 {
		return nil, false
	}
	return pairs, true
}

// findDateRow scans the leading rows for one whose cells after column 0 are
// mostly dates. Short day-month labels qualify a row anywhere in the window;
// fully parseable dates only qualify rows below the banner area (index > 2).
func findDateRow(raw model.RawTable) (int, bool) {
	limit := len(raw)
	if limit > HeaderScanWindow {
		limit = HeaderScanWindow
	}

	fallback := -1
	for i := 0; i < limit; i++ {
		row := raw[i]
		if len(row) < 2 {
			continue
		}

		examined := 0
		shortDates := 0
		parsedDates := 0
		for _, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			examined++
			if isShortDateLabel(cell) {
				shortDates++
			}
			if _, ok := ParseDate(cell); ok {
				parsedDates++
			}
		}
		if examined == 0 {
			continue
		}

		if float64(shortDates) >= DateRowDensity*float64(examined) {
			return i, true
		}
		if fallback < 0 && i > 2 && float64(parsedDates) >= DateRowDensity*float64(examined) {
			fallback = i
		}
	}

	if fallback >= 0 {
		return fallback, true
	}
	return 0, false
}

// findTipsRow returns the first row whose column-0 label names a tip total.
func findTipsRow(raw model.RawTable) (int, bool) {
	for i, row := range raw {
		if len(row) == 0 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		if label == "" {
			continue
		}
		if ContainsAny(label, tipsRowLabels) {
			return i, true
		}
	}
	return 0, false
}
