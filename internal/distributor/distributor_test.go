package distributor

import (
	"math"
	"testing"
	"time"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

const epsilon = 1e-9

func tipsTable(rows [][]string) model.HeaderedTable {
	return model.HeaderedTable{
		Columns: []string{"Shift Date", "Employee Name", "Hours Worked", "Daily Tip Total"},
		Rows:    rows,
	}
}

func TestDistribute_EvenSplitSingleDay(t *testing.T) {
	t.Parallel()

	table := tipsTable([][]string{
		{"2025-06-28", "Alice", "5", "50"},
		{"2025-06-28", "Bob", "5", "50"},
	})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{table}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if res.Mode != ModeTips {
		t.Fatalf("mode: got=%s want=%s", res.Mode, ModeTips)
	}
	if math.Abs(res.Distribution["Alice"]-50) > epsilon || math.Abs(res.Distribution["Bob"]-50) > epsilon {
		t.Fatalf("even split mismatch: %v", res.Distribution)
	}
}

func TestDistribute_TwoDayAccumulation(t *testing.T) {
	t.Parallel()

	// Day 1: 5/5 hours, 100 tips. Day 2: 4/6 hours, 60 tips.
	table := tipsTable([][]string{
		{"2025-06-28", "Alice", "5", "60"},
		{"2025-06-28", "Bob", "5", "40"},
		{"2025-06-29", "Alice", "4", "30"},
		{"2025-06-29", "Bob", "6", "30"},
	})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{table}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if math.Abs(res.Distribution["Alice"]-74) > epsilon {
		t.Fatalf("Alice total: got=%v want=74", res.Distribution["Alice"])
	}
	if math.Abs(res.Distribution["Bob"]-86) > epsilon {
		t.Fatalf("Bob total: got=%v want=86", res.Distribution["Bob"])
	}
	if res.Dates != 2 {
		t.Fatalf("dates: got=%d want=2", res.Dates)
	}
}

func TestDistribute_DailyAllocationsSumToPool(t *testing.T) {
	t.Parallel()

	table := tipsTable([][]string{
		{"2025-06-28", "Alice", "3.5", "41.17"},
		{"2025-06-28", "Bob", "7.25", "33.33"},
		{"2025-06-28", "Cara", "1.25", "25.50"},
	})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{table}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}

	var sum float64
	for _, share := range res.Distribution {
		sum += share
	}
	if math.Abs(sum-100.00) > 1e-6 {
		t.Fatalf("allocations must sum to the pool: got=%v want=100", sum)
	}
}

func TestDistribute_SkipsEmptyPools(t *testing.T) {
	t.Parallel()

	table := tipsTable([][]string{
		// zero hours that day: skipped
		{"2025-06-28", "Alice", "0", "100"},
		// zero tips that day: skipped
		{"2025-06-29", "Alice", "5", "0"},
		{"2025-06-30", "Alice", "5", "20"},
	})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{table}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if res.SkippedDays != 2 {
		t.Fatalf("skipped days: got=%d want=2", res.SkippedDays)
	}
	if math.Abs(res.Distribution["Alice"]-20) > epsilon {
		t.Fatalf("Alice total: got=%v want=20", res.Distribution["Alice"])
	}
}

func TestDistribute_ZeroHourEmployeeGetsNothingThatDay(t *testing.T) {
	t.Parallel()

	table := tipsTable([][]string{
		{"2025-06-28", "Alice", "5", "50"},
		{"2025-06-28", "Bob", "0", "50"},
		{"2025-06-29", "Bob", "4", "40"},
	})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{table}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	// Bob is excluded on the 28th but not on the 29th.
	if math.Abs(res.Distribution["Alice"]-100) > epsilon {
		t.Fatalf("Alice total: got=%v want=100", res.Distribution["Alice"])
	}
	if math.Abs(res.Distribution["Bob"]-40) > epsilon {
		t.Fatalf("Bob total: got=%v want=40", res.Distribution["Bob"])
	}
}

func TestDistribute_ClockOnlyUsesHoursAsProxy(t *testing.T) {
	t.Parallel()

	clock := model.HeaderedTable{
		Columns: []string{"Employee Name", "Clock In Date", "Elapsed Hours"},
		Rows: [][]string{
			{"Gina", "2025-06-28", "3"},
			{"Hank", "2025-06-28", "5"},
		},
	}

	res, err := NewEngine().Distribute(Request{Clock: &clock})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if res.Mode != ModeClockOnly {
		t.Fatalf("mode: got=%s want=%s", res.Mode, ModeClockOnly)
	}
	if res.Distribution["Gina"] != 3 || res.Distribution["Hank"] != 5 {
		t.Fatalf("hours as proxy mismatch: %v", res.Distribution)
	}
}

func TestDistribute_ClockHoursOverrideTipsHours(t *testing.T) {
	t.Parallel()

	tips := tipsTable([][]string{
		{"2025-06-28", "Alice", "1", "60"},
		{"2025-06-28", "Bob", "9", "40"},
	})
	clock := model.HeaderedTable{
		Columns: []string{"Employee Name", "Clock In Date", "Elapsed Hours"},
		Rows: [][]string{
			// Clock data says the day was an even 5/5 split.
			{"Alice", "2025-06-28", "5"},
			{"Bob", "2025-06-28", "5"},
		},
	}

	res, err := NewEngine().Distribute(Request{
		TipsTables: []model.HeaderedTable{tips},
		Clock:      &clock,
	})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if res.Mode != ModeTipsWithClock {
		t.Fatalf("mode: got=%s want=%s", res.Mode, ModeTipsWithClock)
	}
	if math.Abs(res.Distribution["Alice"]-50) > epsilon || math.Abs(res.Distribution["Bob"]-50) > epsilon {
		t.Fatalf("clock override mismatch: %v", res.Distribution)
	}
}

func TestDistribute_BrokenClockDegradesToTipsHours(t *testing.T) {
	t.Parallel()

	tips := tipsTable([][]string{
		{"2025-06-28", "Alice", "5", "50"},
		{"2025-06-28", "Bob", "5", "50"},
	})
	// No recognizable columns: the clock merge fails and must degrade.
	clock := model.HeaderedTable{Columns: []string{"Foo", "Bar", "Baz"}}

	res, err := NewEngine().Distribute(Request{
		TipsTables: []model.HeaderedTable{tips},
		Clock:      &clock,
	})
	if err != nil {
		t.Fatalf("expected degrade, got error: %v", err)
	}
	if res.Mode != ModeTips {
		t.Fatalf("mode: got=%s want=%s", res.Mode, ModeTips)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", res.Warnings)
	}
	if math.Abs(res.Distribution["Alice"]-50) > epsilon {
		t.Fatalf("fallback distribution mismatch: %v", res.Distribution)
	}
}

func TestDistribute_TransposedPairsWithClock(t *testing.T) {
	t.Parallel()

	jun28 := time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)
	jun29 := time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC)

	clock := model.HeaderedTable{
		Columns: []string{"Employee Name", "Clock In Date", "Elapsed Hours"},
		Rows: [][]string{
			{"Alice", "2025-06-28", "5"},
			{"Bob", "2025-06-28", "5"},
			{"Alice", "2025-06-29", "4"},
			{"Bob", "2025-06-29", "6"},
		},
	}

	res, err := NewEngine().Distribute(Request{
		DailyTips: []model.DailyTip{
			{Date: jun28, Amount: 100},
			{Date: jun29, Amount: 60},
		},
		Clock: &clock,
	})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if res.Mode != ModeTransposed {
		t.Fatalf("mode: got=%s want=%s", res.Mode, ModeTransposed)
	}
	if math.Abs(res.Distribution["Alice"]-74) > epsilon {
		t.Fatalf("Alice total: got=%v want=74", res.Distribution["Alice"])
	}
	if math.Abs(res.Distribution["Bob"]-86) > epsilon {
		t.Fatalf("Bob total: got=%v want=86", res.Distribution["Bob"])
	}
}

func TestDistribute_ConcatenatesTipsSources(t *testing.T) {
	t.Parallel()

	day1 := tipsTable([][]string{{"2025-06-28", "Alice", "5", "50"}})
	day2 := tipsTable([][]string{{"2025-06-29", "Alice", "5", "30"}})

	res, err := NewEngine().Distribute(Request{TipsTables: []model.HeaderedTable{day1, day2}})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if math.Abs(res.Distribution["Alice"]-80) > epsilon {
		t.Fatalf("Alice total: got=%v want=80", res.Distribution["Alice"])
	}
}

func TestDistribute_NoInput(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine().Distribute(Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
}
