// Package holiday classifies non-working days: Sundays plus a fixed set of
// national holidays expressed as year-independent "MM-DD" entries. Saturdays
// are working days here; business-day counting depends on that.
package holiday

import (
	"fmt"
	"time"
)

// defaultEntries are the ten fixed national holidays.
var defaultEntries = []string{
	"01-01", // New Year
	"01-06", // Epiphany
	"04-25", // Liberation Day
	"05-01", // Labour Day
	"06-02", // Republic Day
	"08-15", // Assumption
	"11-01", // All Saints
	"12-08", // Immaculate Conception
	"12-25", // Christmas
	"12-26", // St. Stephen
}

// Calendar is an immutable set of fixed national holidays. Loaded once at
// process start; no mutation path exists after construction.
type Calendar struct {
	fixed   map[string]struct{}
	entries []string
}

// NewCalendar builds a Calendar from "MM-DD" entries. Malformed entries are
// a configuration error.
func NewCalendar(entries []string) (*Calendar, error) {
	c := &Calendar{
		fixed:   make(map[string]struct{}, len(entries)),
		entries: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, err := time.Parse("01-02", e); err != nil {
			return nil, fmt.Errorf("holiday: invalid entry %q: want zero-padded MM-DD", e)
		}
		if _, dup := c.fixed[e]; dup {
			continue
		}
		c.fixed[e] = struct{}{}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns a Calendar with the fixed national holiday set.
func Default() *Calendar {
	c, err := NewCalendar(defaultEntries)
	if err != nil {
		panic(err) // compiled-in entries are well-formed
	}
	return c
}

// DefaultEntries returns a copy of the compiled-in holiday entries.
func DefaultEntries() []string {
	out := make([]string, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// IsHoliday reports whether t falls on a Sunday or on a fixed national
// holiday. Saturday is not a holiday. Total and pure; never fails.
func (c *Calendar) IsHoliday(t time.Time) bool {
	if t.Weekday() == time.Sunday {
		return true
	}
	_, ok := c.fixed[t.Format("01-02")]
	return ok
}

// Entries returns the fixed holiday entries in load order.
func (c *Calendar) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
