package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount, percent, want string
	}{
		{"100", "15", "15"},
		{"0", "20", "0"},
		// half-cent rounds up
		{"1", "0.5", "0.01"},
	}
	for _, tc := range cases {
		got, err := Tip(dec(tc.amount), dec(tc.percent))
		if err != nil {
			t.Fatalf("Tip(%s, %s): %v", tc.amount, tc.percent, err)
		}
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("Tip(%s, %s): got=%s want=%s", tc.amount, tc.percent, got, tc.want)
		}
	}
}

func TestTotal(t *testing.T) {
	t.Parallel()

	got, err := Total(dec("100"), dec("15"))
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if !got.Equal(dec("115")) {
		t.Fatalf("Total(100, 15): got=%s want=115", got)
	}
}

func TestPay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hours, rate, want string
	}{
		{"40", "15.5", "620"},
		{"0", "100", "0"},
		{"2.345", "10", "23.45"},
	}
	for _, tc := range cases {
		got, err := Pay(dec(tc.hours), dec(tc.rate))
		if err != nil {
			t.Fatalf("Pay(%s, %s): %v", tc.hours, tc.rate, err)
		}
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("Pay(%s, %s): got=%s want=%s", tc.hours, tc.rate, got, tc.want)
		}
	}
}

func TestNegativeInputsRejected(t *testing.T) {
	t.Parallel()

	if _, err := Tip(dec("-1"), dec("10")); err != ErrNegativeInput {
		t.Fatalf("negative amount: got=%v want=%v", err, ErrNegativeInput)
	}
	if _, err := Tip(dec("10"), dec("-5")); err != ErrNegativeInput {
		t.Fatalf("negative percent: got=%v want=%v", err, ErrNegativeInput)
	}
	if _, err := Pay(dec("-2"), dec("10")); err != ErrNegativeInput {
		t.Fatalf("negative hours: got=%v want=%v", err, ErrNegativeInput)
	}
}
