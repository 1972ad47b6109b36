package repository

import "time"

// Category represents a category row.
type Category struct {
	ID        string
	Name      string
	Hint      string
	SortOrder int
}

// Purchase represents a purchase row. Seq keeps ledger order.
type Purchase struct {
	ID        string
	Seq       int
	Category  string
	CostCents int64
	CreatedAt time.Time
}
