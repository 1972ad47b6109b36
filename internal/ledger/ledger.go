package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jask/pyrite/internal/money"
)

// Ledger owns the ordered purchase sequence. It is not safe for concurrent
// use; the caller's event loop is its only writer.
type Ledger struct {
	records []Purchase
	store   Store
	clock   Clock
}

// New returns an empty in-memory ledger. It cannot Persist until Load binds
// a store.
func New(clock Clock) *Ledger {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &Ledger{clock: clock}
}

// Open loads a ledger from store and binds it for later Persist calls.
func Open(ctx context.Context, store Store, clock Clock) (*Ledger, error) {
	l := New(clock)
	if err := l.Load(ctx, store); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces the in-memory records with the contents of store and binds
// it. On error the ledger is left unchanged.
func (l *Ledger) Load(ctx context.Context, store Store) error {
	records, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	l.records = records
	l.store = store
	return nil
}

// Bound reports whether the ledger has a store to persist to.
func (l *Ledger) Bound() bool { return l.store != nil }

// Store returns the bound store, or nil.
func (l *Ledger) Store() Store { return l.store }

// Append records a purchase made now.
func (l *Ledger) Append(category string, cost money.Money) Purchase {
	return l.AppendAt(category, cost, l.clock.Now())
}

// AppendAt records a purchase made at the given instant.
func (l *Ledger) AppendAt(category string, cost money.Money, at time.Time) Purchase {
	p := Purchase{Category: category, Cost: cost, CreatedAt: stamp(at)}
	l.records = append(l.records, p)
	return p
}

// Discard removes the most recent record equal to p. It is used to back out
// a purchase whose save failed.
func (l *Ledger) Discard(p Purchase) bool {
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].Equal(p) {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of every record in order.
func (l *Ledger) Records() []Purchase { return l.Snapshot() }

// Snapshot copies the records so they can be saved off the event loop.
func (l *Ledger) Snapshot() []Purchase {
	return append([]Purchase(nil), l.records...)
}

// Within returns the records with start <= CreatedAt <= end in their
// original order.
func (l *Ledger) Within(start, end time.Time) View {
	return View(l.records).Within(start, end)
}

// Persist rewrites the bound store with the full record set.
func (l *Ledger) Persist(ctx context.Context) error {
	if l.store == nil {
		return ErrPersistenceUnavailable
	}
	return l.PersistTo(ctx, l.store)
}

// PersistTo rewrites store with the full record set without binding it.
func (l *Ledger) PersistTo(ctx context.Context, store Store) error {
	if store == nil {
		return ErrPersistenceUnavailable
	}
	if err := store.Save(ctx, l.Snapshot()); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
