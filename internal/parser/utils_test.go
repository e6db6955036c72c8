package parser

import (
	"testing"
	"time"
)

func TestCleanCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"$1,234.50", 1234.50, true},
		{"$(500.00)", -500, true},
		{"(42)", -42, true},
		{"  $9.99 ", 9.99, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tc := range cases {
		got, ok := CleanCurrency(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CleanCurrency(%q): got=%v,%v want=%v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDate_KnownLayouts(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-06-28", "06/28/2025", "28-Jun-25", "28-Jun-2025", "Jun 28, 2025"} {
		got, ok := ParseDate(in)
		if !ok || !got.Equal(want) {
			t.Fatalf("ParseDate(%q): got=%v,%v want=%v", in, got, ok, want)
		}
	}

	if _, ok := ParseDate("yesterday"); ok {
		t.Fatalf("ParseDate should reject free text")
	}
}

func TestParseDateWithFallbackYear(t *testing.T) {
	t.Parallel()

	got, ok := ParseDateWithFallbackYear("28-Jun", 2025)
	if !ok {
		t.Fatalf("expected fallback year to complete the date")
	}
	want := time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}

	// Complete dates pass through untouched.
	got, ok = ParseDateWithFallbackYear("2024-12-31", 2025)
	if !ok || got.Year() != 2024 {
		t.Fatalf("complete date mangled: got=%v,%v", got, ok)
	}
}

func TestNormalizeColumnName(t *testing.T) {
	t.Parallel()

	if got := NormalizeColumnName("  Employee\n Name\t"); got != "Employee Name" {
		t.Fatalf("got=%q want=%q", got, "Employee Name")
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if got := Similarity("hours", "hours"); got != 1 {
		t.Fatalf("identical strings: got=%v want=1", got)
	}
	if got := Similarity("hours", "huors"); got < FuzzyMatchCutoff {
		t.Fatalf("transposed letters should clear the cutoff: got=%v", got)
	}
	if got := Similarity("tips", "employee"); got >= FuzzyMatchCutoff {
		t.Fatalf("unrelated words must stay below the cutoff: got=%v", got)
	}
}

func TestIsShortDateLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"28-Jun", true},
		{"2-Jan", true},
		{"2025-06-28", false}, // no letters
		{"Grand-Total-For-June", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isShortDateLabel(tc.in); got != tc.want {
			t.Fatalf("isShortDateLabel(%q): got=%v want=%v", tc.in, got, tc.want)
		}
	}
}
