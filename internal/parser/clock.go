package parser

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// DefaultClockDateLayout matches the timesheet export's "01-Jan-25" dates.
const DefaultClockDateLayout = "02-Jan-06"

// AggregateClock normalizes a timesheet table into one total-hours row per
// (employee, date). Rows with missing names/dates, non-numeric hours or
// unparseable dates are dropped. dateLayout is a Go time layout; pass ""
// to infer the format per cell.
func AggregateClock(t model.HeaderedTable, employeeCol, dateCol, hoursCol, dateLayout string) ([]model.DailyHours, error) {
	missing := make([]model.Role, 0, 3)
	if t.ColumnIndex(employeeCol) < 0 {
		missing = append(missing, model.RoleName)
	}
	if t.ColumnIndex(dateCol) < 0 {
		missing = append(missing, model.RoleDate)
	}
	if t.ColumnIndex(hoursCol) < 0 {
		missing = append(missing, model.RoleHours)
	}
	if len(missing) > 0 {
		return nil, &model.MissingColumnError{Roles: missing, Found: t.Columns}
	}

	type key struct {
		employee string
		date     time.Time
	}
	totals := make(map[key]float64)

	for i := range t.Rows {
		employee := t.Cell(i, employeeCol)
		rawDate := t.Cell(i, dateCol)
		if employee == "" || rawDate == "" {
			continue
		}

		hours, err := strconv.ParseFloat(strings.ReplaceAll(t.Cell(i, hoursCol), ",", ""), 64)
		if err != nil {
			continue
		}

		var date time.Time
		if dateLayout != "" {
			parsed, err := time.Parse(dateLayout, rawDate)
			if err != nil {
				continue
			}
			date = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		} else {
			parsed, ok := ParseDate(rawDate)
			if !ok {
				continue
			}
			date = parsed
		}

		totals[key{employee, date}] += hours
	}

	out := make([]model.DailyHours, 0, len(totals))
	for k, hours := range totals {
		out = append(out, model.DailyHours{Employee: k.employee, Date: k.date, Hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Employee != out[j].Employee {
			return out[i].Employee < out[j].Employee
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
