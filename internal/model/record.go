package model

import "time"

// DailyTip is one (date, tip total) pair extracted from a sales report.
type DailyTip struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// DailyHours is one employee's summed hours for one calendar date.
type DailyHours struct {
	Employee string    `json:"employee"`
	Date     time.Time `json:"date"`
	Hours    float64   `json:"hours"`
}

// EmployeeDayRecord is the canonical normalized unit all sources are
// reconciled into: one employee, one date, hours worked and tips booked.
type EmployeeDayRecord struct {
	Employee string    `json:"employee"`
	Date     time.Time `json:"date"`
	Hours    float64   `json:"hours"`
	Tips     float64   `json:"tips"`
}

// TipDistribution accumulates each employee's tip share across all dates.
type TipDistribution map[string]float64

// DistributionRow is one line of the export table.
type DistributionRow struct {
	Employee string  `json:"employee"`
	Share    float64 `json:"share"`
}
