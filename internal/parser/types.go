package parser

import "github.com/darkron008/Tip-and-hours-Calculator/internal/model"

// Heuristic thresholds. These are tuned against the real exports we see in
// the field; keep them named so tests can reference them directly.
const (
	// HeaderScanWindow is how many leading rows are inspected when looking
	// for the header row or the transposed date row.
	HeaderScanWindow = 15

	// HeaderMinFillRatio rejects candidate header rows with too few
	// populated cells.
	HeaderMinFillRatio = 0.4

	// TitleRowFillRatio: a row mentioning a report-title keyword is still
	// accepted as header when at least this share of its cells is filled.
	TitleRowFillRatio = 0.7

	// FuzzyMatchCutoff is the minimum similarity for the fuzzy column-name
	// fallback in role detection.
	FuzzyMatchCutoff = 0.6

	// DateRowDensity is the share of cells in a candidate row that must
	// look like dates for the transposed layout to be accepted.
	DateRowDensity = 0.8

	// DefaultFallbackYear completes day-month dates like "28-Jun" that the
	// POS report emits without a year.
	DefaultFallbackYear = 2025
)

// roleKeywords drives the first detection pass. Order matters: the first
// keyword that matches a column wins, scanning columns left to right.
var roleKeywords = map[model.Role][]string{
	model.RoleDate:  {"date", "shift", "day", "work date", "shift date"},
	model.RoleTips:  {"tip", "tips", "gratuity", "gratuities"},
	model.RoleHours: {"hour", "hours", "hrs", "worked", "time"},
	model.RoleName:  {"name", "employee", "staff", "emp"},
}

// titleKeywords mark rows that are report banners rather than headers.
var titleKeywords = []string{"report", "sales", "summary", "total"}

// tipsRowLabels identify the row carrying per-day tip totals in a
// transposed sales report.
var tipsRowLabels = []string{"tip", "total", "gratuity", "gratuities", "distributed"}

// Classifier keyword groups (checked against lower-cased column names).
var (
	clockFilenameHints = []string{"clock", "timesheet"}
	tipsFilenameHints  = []string{"sales", "tip"}

	employeeLikeKeywords = []string{"employee", "staff", "name", "emp"}
	dateLikeKeywords     = []string{"date", "day", "shift"}
	hoursLikeKeywords    = []string{"hour", "hrs", "worked", "time"}
	tipsLikeKeywords     = []string{"tip", "gratuity"}
)
