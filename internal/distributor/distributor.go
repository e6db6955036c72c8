// Package distributor reconciles clock hours with tips/sales data into one
// aligned (employee, date) dataset and computes the proportional tip split.
package distributor

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/parser"
)

// Mode labels how a distribution run sourced its data.
type Mode string

const (
	// ModeClockOnly distributes nothing; summed hours stand in as the
	// share metric because no tips source exists to split.
	ModeClockOnly Mode = "clock_only"
	// ModeTips splits tips using the tips table's own hours.
	ModeTips Mode = "tips"
	// ModeTipsWithClock splits tips with clock hours overriding the tips
	// table's hours column per (employee, date).
	ModeTipsWithClock Mode = "tips_with_clock"
	// ModeTransposed pairs per-day tip totals from a transposed sales
	// report with clock hours.
	ModeTransposed Mode = "transposed"
)

// ClockHints names the clock table's columns. Empty fields are auto-detected;
// an empty DateLayout infers the format per cell.
type ClockHints struct {
	EmployeeCol string
	DateCol     string
	HoursCol    string
	DateLayout  string
}

// Request describes one distribution run. Exactly one of the tips inputs
// (TipsTables, DailyTips) may be set; both absent means clock-only mode.
type Request struct {
	TipsTables []model.HeaderedTable
	DailyTips  []model.DailyTip
	Roles      model.RoleMap // optional; auto-detected when empty
	Clock      *model.HeaderedTable
	ClockHints ClockHints
}

// Result carries the accumulated distribution plus the export table.
// Shares keep full float precision; rounding happens at export time.
type Result struct {
	Mode         Mode                    `json:"mode"`
	Distribution model.TipDistribution   `json:"distribution"`
	Rows         []model.DistributionRow `json:"rows"`
	Dates        int                     `json:"dates"`
	Employees    int                     `json:"employees"`
	SkippedDays  int                     `json:"skippedDays"`
	Warnings     []string                `json:"warnings,omitempty"`
}

// Engine runs distribution requests. Stateless; safe to share.
type Engine struct {
	detector *parser.RoleDetector
}

// NewEngine creates an engine.
func NewEngine() *Engine {
	return &Engine{detector: parser.NewRoleDetector()}
}

// Distribute reconciles the request's sources and allocates each date's tip
// pool across employees in proportion to hours worked that date.
func (e *Engine) Distribute(req Request) (*Result, error) {
	switch {
	case len(req.DailyTips) > 0:
		return e.distributeTransposed(req)
	case len(req.TipsTables) > 0:
		return e.distributeTips(req)
	case req.Clock != nil:
		return e.distributeClockOnly(req)
	default:
		return nil, fmt.Errorf("no input tables supplied")
	}
}

// distributeClockOnly sums hours per employee as a stand-in share metric.
// Intentional degenerate mode, not an error.
func (e *Engine) distributeClockOnly(req Request) (*Result, error) {
	hours, err := e.aggregateClock(req)
	if err != nil {
		return nil, err
	}

	dist := make(model.TipDistribution)
	dates := make(map[time.Time]struct{})
	for _, rec := range hours {
		dist[rec.Employee] += rec.Hours
		dates[rec.Date] = struct{}{}
	}

	return &Result{
		Mode:         ModeClockOnly,
		Distribution: dist,
		Rows:         exportRows(dist),
		Dates:        len(dates),
		Employees:    len(dist),
	}, nil
}

// distributeTips concatenates the tips tables, resolves roles, optionally
// overrides hours from the clock table, then allocates per day.
func (e *Engine) distributeTips(req Request) (*Result, error) {
	merged := req.TipsTables[0]
	for i := 1; i < len(req.TipsTables); i++ {
		merged.Concat(&req.TipsTables[i])
	}

	roles := req.Roles
	if len(roles) == 0 {
		detected, err := e.detector.Detect(merged)
		if err != nil {
			return nil, err
		}
		roles = detected
	}

	records := tipsRecords(merged, roles)

	mode := ModeTips
	var warnings []string
	if req.Clock != nil {
		clockHours, err := e.aggregateClock(req)
		if err != nil {
			// Best-effort policy: a failed clock join degrades to the
			// tips table's own hours instead of failing the run.
			warn := fmt.Sprintf("clock data could not be merged, using tips-table hours: %v", err)
			log.Printf("distributor: %s", warn)
			warnings = append(warnings, warn)
		} else {
			records = overrideHours(records, clockHours)
			mode = ModeTipsWithClock
		}
	}

	res := allocate(records, nil)
	res.Mode = mode
	res.Warnings = warnings
	return res, nil
}

// distributeTransposed pairs per-day tip totals with clock hours. Without a
// clock table there is nothing to apportion shares by.
func (e *Engine) distributeTransposed(req Request) (*Result, error) {
	if req.Clock == nil {
		return nil, fmt.Errorf("a transposed sales report requires a clock table to supply hours")
	}

	clockHours, err := e.aggregateClock(req)
	if err != nil {
		return nil, err
	}

	records := make([]model.EmployeeDayRecord, len(clockHours))
	for i, h := range clockHours {
		records[i] = model.EmployeeDayRecord{Employee: h.Employee, Date: h.Date, Hours: h.Hours}
	}

	pools := make(map[time.Time]float64, len(req.DailyTips))
	for _, dt := range req.DailyTips {
		pools[dt.Date] += dt.Amount
	}

	res := allocate(records, pools)
	res.Mode = ModeTransposed
	return res, nil
}

// aggregateClock resolves the clock table's columns (hints first, detection
// otherwise) and runs the daily-hours aggregation.
func (e *Engine) aggregateClock(req Request) ([]model.DailyHours, error) {
	hints := req.ClockHints
	if hints.EmployeeCol == "" || hints.DateCol == "" || hints.HoursCol == "" {
		roles, err := e.detector.DetectSubset(*req.Clock, []model.Role{model.RoleDate, model.RoleName, model.RoleHours})
		if err != nil {
			return nil, err
		}
		if hints.EmployeeCol == "" {
			hints.EmployeeCol = roles[model.RoleName]
		}
		if hints.DateCol == "" {
			hints.DateCol = roles[model.RoleDate]
		}
		if hints.HoursCol == "" {
			hints.HoursCol = roles[model.RoleHours]
		}
	}

	return parser.AggregateClock(*req.Clock, hints.EmployeeCol, hints.DateCol, hints.HoursCol, hints.DateLayout)
}

// tipsRecords normalizes a resolved tips table into EmployeeDayRecords.
// Unparseable hours/tips coerce to zero; rows without a name or a parseable
// date are dropped.
func tipsRecords(t model.HeaderedTable, roles model.RoleMap) []model.EmployeeDayRecord {
	records := make([]model.EmployeeDayRecord, 0, len(t.Rows))
	for i := range t.Rows {
		name := t.Cell(i, roles[model.RoleName])
		if name == "" {
			continue
		}
		date, ok := parser.ParseDate(t.Cell(i, roles[model.RoleDate]))
		if !ok {
			continue
		}

		hours, err := strconv.ParseFloat(strings.ReplaceAll(t.Cell(i, roles[model.RoleHours]), ",", ""), 64)
		if err != nil {
			hours = 0
		}
		tips, ok := parser.CleanCurrency(t.Cell(i, roles[model.RoleTips]))
		if !ok {
			tips = 0
		}

		records = append(records, model.EmployeeDayRecord{
			Employee: name,
			Date:     date,
			Hours:    hours,
			Tips:     tips,
		})
	}
	return records
}

// overrideHours left-joins clock hours onto the tips records by
// (employee, date). Clock hours win when present; tips-table hours survive
// only for keys the clock data does not cover.
func overrideHours(records []model.EmployeeDayRecord, clock []model.DailyHours) []model.EmployeeDayRecord {
	type key struct {
		employee string
		date     time.Time
	}
	byKey := make(map[key]float64, len(clock))
	for _, h := range clock {
		byKey[key{h.Employee, h.Date}] = h.Hours
	}

	for i := range records {
		if hours, ok := byKey[key{records[i].Employee, records[i].Date}]; ok {
			records[i].Hours = hours
		}
	}
	return records
}

// allocate groups records by date and splits each day's pool proportionally
// to hours. When poolOverride is non-nil it supplies each date's tip total
// and the records' own tips are ignored. Days with no hours or no tips are
// skipped, never treated as errors.
func allocate(records []model.EmployeeDayRecord, poolOverride map[time.Time]float64) *Result {
	byDate := make(map[time.Time][]model.EmployeeDayRecord)
	for _, rec := range records {
		byDate[rec.Date] = append(byDate[rec.Date], rec)
	}

	dist := make(model.TipDistribution)
	skipped := 0
	for date, day := range byDate {
		var totalTips, totalHours float64
		for _, rec := range day {
			totalTips += rec.Tips
			totalHours += rec.Hours
		}
		if poolOverride != nil {
			totalTips = poolOverride[date]
		}

		if totalHours <= 0 || totalTips == 0 {
			skipped++
			continue
		}

		for _, rec := range day {
			if rec.Hours <= 0 {
				continue
			}
			dist[rec.Employee] += totalTips * (rec.Hours / totalHours)
		}
	}

	return &Result{
		Distribution: dist,
		Rows:         exportRows(dist),
		Dates:        len(byDate) - skipped,
		Employees:    len(dist),
		SkippedDays:  skipped,
	}
}

// exportRows flattens a distribution into the export table, sorted by name.
func exportRows(dist model.TipDistribution) []model.DistributionRow {
	rows := make([]model.DistributionRow, 0, len(dist))
	for employee, share := range dist {
		rows = append(rows, model.DistributionRow{Employee: employee, Share: share})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Employee < rows[j].Employee })
	return rows
}
