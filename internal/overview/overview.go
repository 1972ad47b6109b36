// Package overview turns a week's aggregates into the table shown on the
// main screen and works out which cell follows the focused category.
package overview

import (
	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/grid"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/money"
)

// Column headers and the index of the highlighted column.
const (
	CategoryHeader = "Category"
	TotalHeader    = "Total"
	TotalColumn    = 1
)

// Row is one visible line of the overview.
type Row struct {
	Category string
	Total    money.Money
}

// Rows returns the aggregates of categories known to cat, in catalog order.
// Categories without an aggregate and aggregates for unknown categories are
// left out.
func Rows(cat *catalog.Catalog, aggregates []ledger.Aggregate) []Row {
	totals := make(map[string]money.Money, len(aggregates))
	for _, a := range aggregates {
		totals[a.Category] = totals[a.Category].Add(a.Total)
	}
	var rows []Row
	for _, name := range cat.Names() {
		if total, ok := totals[name]; ok {
			rows = append(rows, Row{Category: name, Total: total})
		}
	}
	return rows
}

// VisibleCategories returns the names Rows would show.
func VisibleCategories(cat *catalog.Catalog, aggregates []ledger.Aggregate) []string {
	rows := Rows(cat, aggregates)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Category
	}
	return names
}

// HighlightRow returns the position of focused in ordered.
func HighlightRow(ordered []string, focused string) (int, bool) {
	for i, name := range ordered {
		if name == focused {
			return i, true
		}
	}
	return 0, false
}

// Highlight returns the Total cell of the focused category's row, or nothing
// when that category has no row.
func Highlight(ordered []string, focused string) []grid.Cell {
	row, ok := HighlightRow(ordered, focused)
	if !ok {
		return nil
	}
	return []grid.Cell{{Col: TotalColumn, Row: row}}
}

// Build returns the overview table for aggregates with the focused
// category's total highlighted.
func Build(cat *catalog.Catalog, aggregates []ledger.Aggregate, focused string) *grid.Table {
	t := &grid.Table{Border: grid.NormalBorder, Bordered: true}
	// Headers are distinct constants.
	_ = t.AddColumn(grid.Column{Header: CategoryHeader, Proportional: 2})
	_ = t.AddColumn(grid.Column{Header: TotalHeader, Proportional: 1, Minimum: 10})

	rows := Rows(cat, aggregates)
	ordered := make([]string, len(rows))
	for i, r := range rows {
		t.AddRow(r.Category, r.Total)
		ordered[i] = r.Category
	}
	t.SetHighlights(Highlight(ordered, focused))
	return t
}
