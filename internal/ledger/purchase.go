// Package ledger keeps the append-only record of purchases, answers windowed
// aggregation queries over it, and persists it to a Store.
package ledger

import (
	"errors"
	"time"

	"github.com/jask/pyrite/internal/csvrec"
	"github.com/jask/pyrite/internal/money"
)

var (
	// ErrMalformedRecord is returned for a stored row with the wrong shape.
	ErrMalformedRecord = csvrec.ErrMalformedRecord
	// ErrInvalidTimestamp is returned when a stored timestamp does not parse.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrPersistenceUnavailable is returned by Persist on a ledger that was
	// never bound to a store.
	ErrPersistenceUnavailable = errors.New("persistence unavailable: ledger has no backing store")
)

// Purchase is a single recorded spend. Category is not checked against the
// catalog.
type Purchase struct {
	Category  string
	Cost      money.Money
	CreatedAt time.Time
}

// Equal compares every field; timestamps compare as instants.
func (p Purchase) Equal(o Purchase) bool {
	return p.Category == o.Category && p.Cost.Equal(o.Cost) && p.CreatedAt.Equal(o.CreatedAt)
}

// Clock supplies the creation time for new purchases.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return ClockFunc(func() time.Time { return time.Now().In(loc) })
}

// Stored timestamps carry microseconds, so creation times are cut to the
// same resolution to survive a save/load cycle unchanged.
func stamp(t time.Time) time.Time { return t.Truncate(time.Microsecond) }
