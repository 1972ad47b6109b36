package ledger

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/jask/pyrite/internal/money"
)

var nz = mustLoad("Pacific/Auckland")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func fixedClock(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	l := New(fixedClock(time.Date(2024, 3, 4, 9, 0, 0, 0, nz)))
	l.Append("A", money.MustParse("10.00"))
	l.Append("B", money.MustParse("5.00"))
	l.Append("A", money.MustParse("2.50"))

	got := GroupByCategory(l.Within(time.Time{}, time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)))
	if len(got) != 2 {
		t.Fatalf("groups = %+v, want 2", got)
	}
	if got[0].Category != "A" || got[0].Total.String() != "$12.50" {
		t.Fatalf("group[0] = %s %s, want A $12.50", got[0].Category, got[0].Total)
	}
	if got[1].Category != "B" || got[1].Total.String() != "$5.00" {
		t.Fatalf("group[1] = %s %s, want B $5.00", got[1].Category, got[1].Total)
	}
}

func TestGroupByCategoryEmptyView(t *testing.T) {
	if got := GroupByCategory(nil); len(got) != 0 {
		t.Fatalf("groups = %+v, want none", got)
	}
}

func TestWithinInclusiveAndOrdered(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, nz)
	l := New(nil)
	for i := 0; i < 200; i++ {
		at := base.Add(time.Duration(r.Int63n(int64(60 * 24 * time.Hour))))
		l.AppendAt("c", money.FromCents(int64(i)), at)
	}
	for trial := 0; trial < 50; trial++ {
		start := base.Add(time.Duration(r.Int63n(int64(60 * 24 * time.Hour))))
		end := start.Add(time.Duration(r.Int63n(int64(14 * 24 * time.Hour))))
		got := l.Within(start, end)

		var want View
		for _, p := range l.Records() {
			if (p.CreatedAt.Equal(start) || p.CreatedAt.After(start)) && (p.CreatedAt.Equal(end) || p.CreatedAt.Before(end)) {
				want = append(want, p)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("trial %d: len = %d, want %d", trial, len(got), len(want))
		}
		for i := range got {
			if !got[i].Equal(want[i]) {
				t.Fatalf("trial %d: record %d differs", trial, i)
			}
		}
	}
}

func TestWithinIncludesBothBounds(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, nz)
	end := start.Add(time.Hour)
	l := New(nil)
	l.AppendAt("edge", money.FromCents(1), start)
	l.AppendAt("edge", money.FromCents(2), end)
	l.AppendAt("out", money.FromCents(3), end.Add(time.Microsecond))
	if got := l.Within(start, end); len(got) != 2 {
		t.Fatalf("within = %d records, want 2", len(got))
	}
}

func TestWithinDoesNotMutate(t *testing.T) {
	l := New(nil)
	l.AppendAt("a", money.FromCents(1), time.Date(2024, 1, 1, 0, 0, 0, 0, nz))
	l.AppendAt("b", money.FromCents(1), time.Date(2024, 2, 1, 0, 0, 0, 0, nz))
	_ = l.Within(time.Date(2024, 1, 15, 0, 0, 0, 0, nz), time.Date(2024, 3, 1, 0, 0, 0, 0, nz))
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
}

func TestAppendUsesClockAndTruncates(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 30, 15, 123456789, nz)
	l := New(fixedClock(now))
	p := l.Append("Coffee", money.MustParse("4.5"))
	if !p.CreatedAt.Equal(now.Truncate(time.Microsecond)) {
		t.Fatalf("CreatedAt = %v", p.CreatedAt)
	}
	if p.Cost.String() != "$4.50" {
		t.Fatalf("Cost = %s", p.Cost)
	}
}

func TestPersistWithoutStore(t *testing.T) {
	l := New(nil)
	l.Append("x", money.FromCents(100))
	if err := l.Persist(context.Background()); !errors.Is(err, ErrPersistenceUnavailable) {
		t.Fatalf("err = %v, want ErrPersistenceUnavailable", err)
	}
	if err := l.PersistTo(context.Background(), nil); !errors.Is(err, ErrPersistenceUnavailable) {
		t.Fatalf("err = %v, want ErrPersistenceUnavailable", err)
	}
}

func TestDiscardRemovesLatestMatch(t *testing.T) {
	at := time.Date(2024, 3, 4, 9, 0, 0, 0, nz)
	l := New(fixedClock(at))
	first := l.Append("A", money.FromCents(100))
	l.Append("B", money.FromCents(200))
	if !l.Discard(first) {
		t.Fatalf("Discard returned false")
	}
	if l.Len() != 1 || l.Records()[0].Category != "B" {
		t.Fatalf("records = %+v", l.Records())
	}
	if l.Discard(first) {
		t.Fatalf("second Discard should miss")
	}
}

func TestViewTotals(t *testing.T) {
	v := View{
		{Category: "Food: Groceries", Cost: money.MustParse("20.40")},
		{Category: "Food: Takeaway", Cost: money.MustParse("15.00")},
		{Category: "Transport", Cost: money.MustParse("4.20")},
		{Category: "Refund", Cost: money.MustParse("-5.00")},
	}
	if got := v.Total().String(); got != "$34.60" {
		t.Fatalf("Total = %s", got)
	}
	if got := v.TotalWithPrefix("Food: ").String(); got != "$35.40" {
		t.Fatalf("TotalWithPrefix = %s", got)
	}
}

func TestRecordsStayTimeOrdered(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, nz)
	now := start
	l := New(ClockFunc(func() time.Time { now = now.Add(time.Minute); return now }))
	for i := 0; i < 5; i++ {
		l.Append("c", money.FromCents(1))
	}
	recs := l.Records()
	if !sort.SliceIsSorted(recs, func(i, j int) bool { return recs[i].CreatedAt.Before(recs[j].CreatedAt) }) {
		t.Fatalf("records out of order")
	}
}
