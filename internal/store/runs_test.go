package store

import (
	"testing"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	run := Run{
		ID:        "run-1",
		Mode:      "tips_with_clock",
		Filenames: []string{"sales.xlsx", "clock.csv"},
		Dates:     2,
		Employees: 2,
		Warnings:  []string{"clock data could not be merged"},
	}
	rows := []model.DistributionRow{
		{Employee: "Alice", Share: 74},
		{Employee: "Bob", Share: 86},
	}

	if err := s.SaveRun(run, rows); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.Mode != "tips_with_clock" || len(got.Filenames) != 2 || len(got.Warnings) != 1 {
		t.Fatalf("unexpected run: %+v", got)
	}

	shares, err := s.GetRunShares("run-1")
	if err != nil {
		t.Fatalf("get shares: %v", err)
	}
	if len(shares) != 2 || shares[0].Employee != "Alice" || shares[0].Share != 74 {
		t.Fatalf("unexpected shares: %v", shares)
	}
}

func TestListRuns(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveRun(Run{ID: id, Mode: "tips"}, nil); err != nil {
			t.Fatalf("save run %s: %v", id, err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count: got=%d want=2", len(runs))
	}
}

func TestGetRun_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.GetRun("missing"); err == nil {
		t.Fatalf("expected error for missing run")
	}
}
