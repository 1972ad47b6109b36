// Package week computes calendar-week windows in a fixed reference zone.
//
// A window runs from Monday 00:00 to the last instant before the following
// Monday 00:00, both ends inclusive. The same bound feeds ledger queries and
// the displayed end-of-week label, so the two never disagree about which
// purchases belong to a week.
package week

import (
	"fmt"
	"time"
)

// Policy pins week arithmetic to one location.
type Policy struct {
	Location *time.Location
}

// New returns a policy for loc, falling back to time.Local.
func New(loc *time.Location) Policy {
	if loc == nil {
		loc = time.Local
	}
	return Policy{Location: loc}
}

// LoadPolicy resolves an IANA zone name.
func LoadPolicy(name string) (Policy, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Policy{}, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return New(loc), nil
}

func (p Policy) loc() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// StartOfWeek returns midnight of the Monday on or before t's calendar date.
func (p Policy) StartOfWeek(t time.Time) time.Time {
	t = t.In(p.loc())
	back := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-back, 0, 0, 0, 0, p.loc())
}

// EndOfWeek returns the last instant of t's week: one nanosecond before the
// next Monday's midnight.
func (p Policy) EndOfWeek(t time.Time) time.Time {
	return p.nextStart(t).Add(-time.Nanosecond)
}

func (p Policy) nextStart(t time.Time) time.Time {
	s := p.StartOfWeek(t)
	return time.Date(s.Year(), s.Month(), s.Day()+7, 0, 0, 0, 0, p.loc())
}

// Window returns the inclusive bounds of t's week.
func (p Policy) Window(t time.Time) (start, end time.Time) {
	return p.StartOfWeek(t), p.EndOfWeek(t)
}

// Contains reports whether now falls inside the week containing t.
func (p Policy) Contains(t, now time.Time) bool {
	start, end := p.Window(t)
	return !now.Before(start) && !now.After(end)
}

// Shift moves t by whole weeks and returns the start of the resulting week.
func (p Policy) Shift(t time.Time, weeks int) time.Time {
	s := p.StartOfWeek(t)
	return p.StartOfWeek(time.Date(s.Year(), s.Month(), s.Day()+7*weeks, 12, 0, 0, 0, p.loc()))
}

// Label renders t's date as "3rd March 2024" in the policy zone.
func (p Policy) Label(t time.Time) string {
	t = t.In(p.loc())
	return fmt.Sprintf("%d%s %s", t.Day(), Ordinal(t.Day()), t.Format("January 2006"))
}

// RangeLabel renders the first and last day of t's week.
func (p Policy) RangeLabel(t time.Time) string {
	start, end := p.Window(t)
	return p.Label(start) + " - " + p.Label(end)
}

// Ordinal returns the English suffix for a day of the month.
func Ordinal(day int) string {
	if n := day % 100; n >= 11 && n <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
