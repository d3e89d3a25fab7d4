package workdays

import (
	"fmt"
	"time"
)

// defaultCalendar backs the package-level helpers. Callers needing another
// locale build their own Calendar and use its methods directly.
var defaultCalendar = BR()

// BusinessDaysUntil counts the signed number of business days between ref and
// target using the Brazilian national calendar.
//
// Returns:
//   - nil when target is nil (no deadline set).
//   - 0 when target and ref fall on the same calendar day.
//   - a positive count when target is in the future: business days strictly
//     after ref up to and including target.
//   - a negative count when target is in the past: business days strictly
//     after target up to and including ref, negated.
//
// The function is pure and never errors; it walks one calendar day at a time,
// so cost is bounded by the span between the two dates.
func BusinessDaysUntil(target *time.Time, ref time.Time) *int {
	return defaultCalendar.BusinessDaysUntil(target, ref)
}

// BusinessDaysUntil is the calendar-aware form of the package-level helper.
func (c Calendar) BusinessDaysUntil(target *time.Time, ref time.Time) *int {
	if target == nil {
		return nil
	}

	from := truncateToDate(ref)
	to := truncateToDate(*target)

	count := 0
	switch {
	case to.Equal(from):
		// same calendar day

	case to.After(from):
		for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
			if c.IsBusinessDay(d) {
				count++
			}
		}

	default:
		for d := from; d.After(to); d = d.AddDate(0, 0, -1) {
			if c.IsBusinessDay(d) {
				count--
			}
		}
	}

	return &count
}

// ParseDate parses a YYYY-MM-DD value, returning nil when the input is empty
// or not a valid calendar date. Invalid deadlines degrade to "no deadline"
// rather than erroring, matching BusinessDaysUntil's nil contract.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &d
}

// FormatBusinessDaysLabel renders the signed business-day count as the label
// shown on the postings dashboard.
func FormatBusinessDaysLabel(diff int) string {
	switch {
	case diff < 0:
		n := -diff
		if n == 1 {
			return "Vencida há 1 dia útil"
		}
		return fmt.Sprintf("Vencida há %d dias úteis", n)
	case diff == 0:
		return "Vence hoje"
	case diff == 1:
		return "Vence no próximo dia útil"
	default:
		return fmt.Sprintf("%d dias úteis restantes", diff)
	}
}
