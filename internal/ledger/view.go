package ledger

import (
	"strings"
	"time"

	"github.com/jask/pyrite/internal/money"
)

// View is a read-only slice of purchases, usually one window of a ledger.
type View []Purchase

// Aggregate is the summed cost of one category within a view.
type Aggregate struct {
	Category string
	Total    money.Money
}

// Within filters v to start <= CreatedAt <= end, keeping order.
func (v View) Within(start, end time.Time) View {
	var out View
	for _, p := range v {
		if !p.CreatedAt.Before(start) && !p.CreatedAt.After(end) {
			out = append(out, p)
		}
	}
	return out
}

// GroupByCategory sums v per category. Rows come out in the order each
// category first appears in v, not catalog order.
func GroupByCategory(v View) []Aggregate {
	index := map[string]int{}
	var out []Aggregate
	for _, p := range v {
		i, ok := index[p.Category]
		if !ok {
			index[p.Category] = len(out)
			out = append(out, Aggregate{Category: p.Category, Total: p.Cost})
			continue
		}
		out[i].Total = out[i].Total.Add(p.Cost)
	}
	return out
}

// GroupByCategory is the method form of the package function.
func (v View) GroupByCategory() []Aggregate { return GroupByCategory(v) }

// Total sums every purchase in v.
func (v View) Total() money.Money {
	total := money.Zero()
	for _, p := range v {
		total = total.Add(p.Cost)
	}
	return total
}

// TotalWithPrefix sums purchases whose category starts with prefix.
func (v View) TotalWithPrefix(prefix string) money.Money {
	total := money.Zero()
	for _, p := range v {
		if strings.HasPrefix(p.Category, prefix) {
			total = total.Add(p.Cost)
		}
	}
	return total
}
