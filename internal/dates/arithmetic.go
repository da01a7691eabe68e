// Package dates provides the pure date-shifting primitives used by the
// deadline rule matrix. All operations are date-only: inputs and outputs are
// anchored at midnight UTC and time-of-day never influences a result.
package dates

import (
	"time"

	"claims-engine/internal/holiday"
)

// Parse parses a "YYYY-MM-DD" string without layout parsing.
// Returns zero time and false on invalid input.
func Parse(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for _, i := range [8]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > daysIn(y, m) {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// Format renders a date as "YYYY-MM-DD".
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}

// AddCalendarDays adds n Gregorian days, crossing month and year boundaries
// (leap-year February included).
func AddCalendarDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddCalendarMonths adds n calendar months, preserving the day-of-month where
// the target month has it and clamping to the target month's last day
// otherwise. Go's AddDate normalizes overflow (Jan 31 + 1 month = Mar 2/3),
// which is the wrong semantics for legal terms, so the addition is explicit.
func AddCalendarMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	months := int(m) - 1 + n
	y += months / 12
	months %= 12
	if months < 0 {
		months += 12
		y--
	}
	nm := time.Month(months + 1)
	if max := daysIn(y, nm); d > max {
		d = max
	}
	return time.Date(y, nm, d, 0, 0, 0, 0, t.Location())
}

// AddCalendarYears adds n calendar years with the same clamping semantics
// (Feb 29 + 1 year = Feb 28).
func AddCalendarYears(t time.Time, n int) time.Time {
	return AddCalendarMonths(t, n*12)
}

// AddBusinessDays walks forward one calendar day at a time starting strictly
// after t (the anchor itself is never counted) and returns the date on which
// the n-th working day is reached. A working day is any day cal does not
// classify as a holiday: Saturdays count toward n, Sundays and fixed
// holidays do not. n <= 0 returns t unchanged.
func AddBusinessDays(t time.Time, n int, cal *holiday.Calendar) time.Time {
	counted := 0
	for counted < n {
		t = t.AddDate(0, 0, 1)
		if !cal.IsHoliday(t) {
			counted++
		}
	}
	return t
}

// RollForwardIfSunday moves a Sunday to the following Monday and leaves any
// other day unchanged. Single-step: the rolled date is not re-checked
// against the holiday set, so a holiday Monday is still returned as-is.
func RollForwardIfSunday(t time.Time) time.Time {
	if t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// DaysBetween returns the whole-day difference b - a, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
