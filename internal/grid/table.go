// Package grid lays tabular data out on a fixed character grid.
//
// Column widths come from a two-pass proportional sizing: a first pass finds
// the columns whose proportional share falls short of their minimum, their
// shortfall is reserved, and a second pass splits what remains. Cells are
// plain text; highlighted cells are reported as spans and only styled at
// Render time.
package grid

import (
	"errors"
	"fmt"
)

// ErrDuplicateColumn is returned when a header is added twice.
var ErrDuplicateColumn = errors.New("duplicate column")

// Column describes one column of a table.
type Column struct {
	Header       string
	Proportional int // share weight of the remaining width
	Minimum      int // width floor in cells
}

// Cell addresses a data cell; Row 0 is the first row under the header.
type Cell struct {
	Col int
	Row int
}

// Table is the logical model a Grid is laid out from.
type Table struct {
	Border   Border
	Bordered bool

	columns     []Column
	rows        [][]any
	highlighted map[Cell]struct{}
}

// NewTable returns a bordered table with one proportional column per header.
func NewTable(headers ...string) (*Table, error) {
	t := &Table{Border: NormalBorder, Bordered: true}
	for _, h := range headers {
		if err := t.AddColumn(Column{Header: h, Proportional: 1}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn appends c. Negative widths are treated as zero.
func (t *Table) AddColumn(c Column) error {
	for _, existing := range t.columns {
		if existing.Header == c.Header {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Header)
		}
	}
	c.Proportional = max(c.Proportional, 0)
	c.Minimum = max(c.Minimum, 0)
	t.columns = append(t.columns, c)
	return nil
}

// Column returns the column named header for in-place adjustment.
func (t *Table) Column(header string) (*Column, bool) {
	for i := range t.columns {
		if t.columns[i].Header == header {
			return &t.columns[i], true
		}
	}
	return nil, false
}

// ColumnIndex returns the position of header, or -1.
func (t *Table) ColumnIndex(header string) int {
	for i, c := range t.columns {
		if c.Header == header {
			return i
		}
	}
	return -1
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column { return append([]Column(nil), t.columns...) }

// Headers returns the column headers in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Header
	}
	return out
}

// AddRow appends a row. Its length need not match the column count.
func (t *Table) AddRow(values ...any) {
	t.rows = append(t.rows, append([]any(nil), values...))
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return len(t.rows) }

// ClearRows drops every data row and highlight.
func (t *Table) ClearRows() {
	t.rows = nil
	t.highlighted = nil
}

// Highlight marks cells for reverse-video rendering.
func (t *Table) Highlight(cells ...Cell) {
	if t.highlighted == nil {
		t.highlighted = make(map[Cell]struct{}, len(cells))
	}
	for _, c := range cells {
		t.highlighted[c] = struct{}{}
	}
}

// SetHighlights replaces the highlight set.
func (t *Table) SetHighlights(cells []Cell) {
	t.highlighted = nil
	t.Highlight(cells...)
}

// ClearHighlights unmarks every cell.
func (t *Table) ClearHighlights() { t.highlighted = nil }

// Highlighted reports whether c is marked.
func (t *Table) Highlighted(c Cell) bool {
	_, ok := t.highlighted[c]
	return ok
}

// ColumnWidths sizes cols to fit width. When bordered, one cell per internal
// boundary is kept back for the separator glyph. Every column gets at least
// its minimum, so the result can exceed width when the minimums do.
func ColumnWidths(cols []Column, width int, bordered bool) []int {
	if len(cols) == 0 {
		return nil
	}
	usable := width
	if bordered {
		usable -= len(cols) - 1
	}
	total := 0
	for _, c := range cols {
		total += c.Proportional
	}
	if total == 0 {
		total = 1
	}

	unit := floorDiv(usable, total)
	adjusted := usable
	for _, c := range cols {
		if short := c.Minimum - c.Proportional*unit; short > 0 {
			adjusted -= short
		}
	}
	unit = floorDiv(adjusted, total)

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = max(c.Minimum, c.Proportional*unit, 0)
	}
	return widths
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
