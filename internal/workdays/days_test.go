package workdays

import (
	"testing"
	"time"
)

func TestBusinessDaysUntil_NilTarget(t *testing.T) {
	if got := BusinessDaysUntil(nil, time.Now()); got != nil {
		t.Fatalf("want nil for nil target, got %d", *got)
	}
}

func TestBusinessDaysUntil_SameDay(t *testing.T) {
	ref := time.Date(2025, time.December, 22, 9, 30, 0, 0, time.Local)
	target := time.Date(2025, time.December, 22, 23, 59, 0, 0, time.Local)
	got := BusinessDaysUntil(&target, ref)
	if got == nil || *got != 0 {
		t.Fatalf("same calendar day: want 0, got %v", got)
	}
}

func TestBusinessDaysUntil_ForwardAcrossChristmas(t *testing.T) {
	// Friday 2025-12-19 to Friday 2025-12-26: business days are
	// Dec 22, 23, 24 and 26; the weekend and Christmas are excluded.
	ref := date(2025, time.December, 19)
	target := date(2025, time.December, 26)
	got := BusinessDaysUntil(&target, ref)
	if got == nil || *got != 4 {
		t.Fatalf("want 4, got %v", got)
	}
}

func TestBusinessDaysUntil_HolidayNotCounted(t *testing.T) {
	// Dec 25 is a weekday but a holiday, so the day before expires to 0.
	ref := date(2025, time.December, 24)
	target := date(2025, time.December, 25)
	got := BusinessDaysUntil(&target, ref)
	if got == nil || *got != 0 {
		t.Fatalf("want 0 across Christmas, got %v", got)
	}
}

func TestBusinessDaysUntil_SignSymmetry(t *testing.T) {
	a := date(2025, time.December, 22)
	b := date(2025, time.December, 26)

	forward := BusinessDaysUntil(&b, a)
	backward := BusinessDaysUntil(&a, b)
	if forward == nil || backward == nil {
		t.Fatal("unexpected nil")
	}
	if *forward <= 0 || *backward >= 0 {
		t.Fatalf("want forward > 0 and backward < 0, got %d / %d", *forward, *backward)
	}
	if *forward != -*backward {
		t.Fatalf("want symmetric counts, got %d / %d", *forward, *backward)
	}
}

func TestBusinessDaysUntil_Monotonic(t *testing.T) {
	ref := date(2025, time.September, 15) // Monday
	prev := 0
	for i := 1; i <= 10; i++ {
		target := ref.AddDate(0, 0, i)
		got := BusinessDaysUntil(&target, ref)
		if got == nil {
			t.Fatal("unexpected nil")
		}
		if *got < prev {
			t.Fatalf("counts must be non-decreasing: day %d gave %d after %d", i, *got, prev)
		}
		prev = *got
	}
}

func TestBusinessDaysUntil_CustomCalendar(t *testing.T) {
	// Without a holiday table Christmas counts as a business day.
	var cal Calendar
	ref := date(2025, time.December, 24)
	target := date(2025, time.December, 25)
	got := cal.BusinessDaysUntil(&target, ref)
	if got == nil || *got != 1 {
		t.Fatalf("empty calendar: want 1, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool // non-nil expected
	}{
		{"2026-03-31", true},
		{"", false},
		{"31/03/2026", false},
		{"not-a-date", false},
	}

	for _, tc := range cases {
		got := ParseDate(tc.in)
		if (got != nil) != tc.want {
			t.Fatalf("ParseDate(%q) = %v, want non-nil=%v", tc.in, got, tc.want)
		}
	}
}

func TestFormatBusinessDaysLabel(t *testing.T) {
	cases := []struct {
		diff int
		want string
	}{
		{-3, "Vencida há 3 dias úteis"},
		{-1, "Vencida há 1 dia útil"},
		{0, "Vence hoje"},
		{1, "Vence no próximo dia útil"},
		{7, "7 dias úteis restantes"},
	}

	for _, tc := range cases {
		if got := FormatBusinessDaysLabel(tc.diff); got != tc.want {
			t.Fatalf("label(%d) = %q, want %q", tc.diff, got, tc.want)
		}
	}
}
