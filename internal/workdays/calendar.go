package workdays

import "time"

// Calendar defines the holiday set used when counting business days.
// Fixed holds annually recurring dates keyed by "MM-DD"; Movable computes
// additional holidays for a given year (e.g. Easter-relative dates).
// The zero Calendar has no holidays: every weekday is a business day.
type Calendar struct {
	Fixed   map[string]struct{}
	Movable func(year int) []time.Time
}

// BR returns the Brazilian national calendar: the eight fixed observances
// plus the movable holidays derived from Easter Sunday.
func BR() Calendar {
	return Calendar{
		Fixed: map[string]struct{}{
			"01-01": {}, // New Year
			"04-21": {}, // Tiradentes
			"05-01": {}, // Labor Day
			"09-07": {}, // Independence Day
			"10-12": {}, // Our Lady Aparecida
			"11-02": {}, // All Souls' Day
			"11-15": {}, // Republic Proclamation
			"12-25": {}, // Christmas
		},
		Movable: movableBR,
	}
}

// movableBR computes the Easter-relative Brazilian holidays for a year:
// Carnival Monday/Tuesday, Good Friday and Corpus Christi.
func movableBR(year int) []time.Time {
	easter := EasterSunday(year)
	return []time.Time{
		easter.AddDate(0, 0, -48), // Carnival Monday
		easter.AddDate(0, 0, -47), // Carnival Tuesday
		easter.AddDate(0, 0, -2),  // Good Friday
		easter.AddDate(0, 0, 60),  // Corpus Christi
	}
}

// IsHoliday reports whether d falls on a holiday of this calendar.
func (c Calendar) IsHoliday(d time.Time) bool {
	if _, ok := c.Fixed[d.Format("01-02")]; ok {
		return true
	}
	if c.Movable == nil {
		return false
	}
	day := truncateToDate(d)
	for _, h := range c.Movable(d.Year()) {
		if truncateToDate(h).Equal(day) {
			return true
		}
	}
	return false
}

// IsBusinessDay reports whether d is a weekday that is not a holiday.
func (c Calendar) IsBusinessDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(d)
}

// EasterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
