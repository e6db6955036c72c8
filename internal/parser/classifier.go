package parser

import (
	"strings"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// FileKindClassifier decides whether an uploaded table is a clock (hours)
// export or a tips/sales export.
type FileKindClassifier struct{}

// NewFileKindClassifier creates a classifier.
func NewFileKindClassifier() *FileKindClassifier {
	return &FileKindClassifier{}
}

// Classify applies filename hints first; a hit short-circuits the column
// inspection. Otherwise a table is a clock file only when it carries
// employee, date and hours columns and no tips column. Anything ambiguous
// defaults to tips.
func (c *FileKindClassifier) Classify(t model.HeaderedTable, filename string) model.FileKind {
	fn := strings.ToLower(filename)
	if fn != "" {
		if ContainsAny(fn, clockFilenameHints) {
			return model.FileKindClock
		}
		if ContainsAny(fn, tipsFilenameHints) {
			return model.FileKindTips
		}
	}

	lower := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		lower[i] = strings.ToLower(NormalizeColumnName(col))
	}

	anyColumn := func(keywords []string) bool {
		for _, col := range lower {
			if ContainsAny(col, keywords) {
				return true
			}
		}
		return false
	}

	hasEmployee := anyColumn(employeeLikeKeywords)
	hasDate := anyColumn(dateLikeKeywords)
	hasHours := anyColumn(hoursLikeKeywords)
	hasTips := anyColumn(tipsLikeKeywords)

	if hasEmployee && hasDate && hasHours && !hasTips {
		return model.FileKindClock
	}
	return model.FileKindTips
}
