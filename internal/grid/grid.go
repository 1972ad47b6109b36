package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Span is a run of display cells on one line, [Start, End).
type Span struct {
	Line  int
	Start int
	End   int
}

// Width returns the span length in cells.
func (s Span) Width() int { return s.End - s.Start }

type segment struct {
	text      string
	highlight bool
}

// Grid is a laid-out table: header line, separator line, then one line per
// data row that fits.
type Grid struct {
	Width  int   // target width the layout was computed for
	Widths []int // per-column widths

	header     []Span
	cells      [][]Span
	highlights []Span
	lines      [][]segment
}

// Layout renders t into a grid of the given size. A non-positive height
// means no row limit; otherwise rows that do not fit are dropped. Blank
// lines are never added below the last row.
func (t *Table) Layout(width, height int) Grid {
	g := Grid{Width: width}
	if len(t.columns) == 0 {
		return g
	}
	g.Widths = ColumnWidths(t.columns, width, t.Bordered)

	headers := make([]any, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Header
	}
	segs, spans := t.layoutRow(&g, headers, -1)
	g.lines = append(g.lines, segs)
	g.header = spans
	if height == 1 {
		return g
	}
	g.lines = append(g.lines, t.underline(g.Widths, width))

	for r, row := range t.rows {
		if height > 0 && len(g.lines) >= height {
			break
		}
		segs, spans := t.layoutRow(&g, row, r)
		g.lines = append(g.lines, segs)
		g.cells = append(g.cells, spans)
	}
	return g
}

// layoutRow lays out one line; row is -1 for the header.
func (t *Table) layoutRow(g *Grid, values []any, row int) ([]segment, []Span) {
	var (
		segs  []segment
		spans []Span
	)
	line := len(g.lines)
	x := 0
	for col, w := range g.Widths {
		text := ""
		if col < len(values) {
			text = cellText(values[col])
		}
		area := max(w-1, 0)
		text = ansi.Truncate(text, area, "")
		tw := ansi.StringWidth(text)

		start := min(x+1, x+w)
		span := Span{Line: line, Start: start, End: start + tw}
		spans = append(spans, span)
		lit := row >= 0 && t.Highlighted(Cell{Col: col, Row: row})
		if lit {
			g.highlights = append(g.highlights, span)
		}
		if w > 0 {
			segs = append(segs, segment{text: " "})
		}
		segs = append(segs, segment{text: text, highlight: lit})
		if pad := area - tw; pad > 0 {
			segs = append(segs, segment{text: strings.Repeat(" ", pad)})
		}
		x += w
		if col < len(g.Widths)-1 && t.Bordered {
			segs = append(segs, segment{text: t.Border.Vertical})
			x++
		}
	}
	return segs, spans
}

// underline draws the header separator. Internal boundaries get the
// intersection glyph; the last column's run is plain and reaches the full
// target width.
func (t *Table) underline(widths []int, width int) []segment {
	var b strings.Builder
	x := 0
	for col, w := range widths {
		if col == len(widths)-1 {
			b.WriteString(strings.Repeat(t.Border.Horizontal, max(w, width-x)))
			break
		}
		b.WriteString(strings.Repeat(t.Border.Horizontal, w))
		x += w
		if t.Bordered {
			b.WriteString(t.Border.Intersection)
			x++
		}
	}
	return []segment{{text: b.String()}}
}

func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Empty reports whether the grid has no lines.
func (g Grid) Empty() bool { return len(g.lines) == 0 }

// Lines returns the grid as plain text lines.
func (g Grid) Lines() []string {
	out := make([]string, len(g.lines))
	for i, segs := range g.lines {
		var b strings.Builder
		for _, s := range segs {
			b.WriteString(s.text)
		}
		out[i] = b.String()
	}
	return out
}

// String joins the plain lines with newlines.
func (g Grid) String() string { return strings.Join(g.Lines(), "\n") }

// HeaderSpan returns where column col's header text sits.
func (g Grid) HeaderSpan(col int) (Span, bool) {
	if col < 0 || col >= len(g.header) {
		return Span{}, false
	}
	return g.header[col], true
}

// Span returns where a data cell's text sits. Rows cut off by the height
// limit have no span.
func (g Grid) Span(c Cell) (Span, bool) {
	if c.Row < 0 || c.Row >= len(g.cells) || c.Col < 0 || c.Col >= len(g.cells[c.Row]) {
		return Span{}, false
	}
	return g.cells[c.Row][c.Col], true
}

// Highlights returns the spans of every highlighted cell that was laid out.
func (g Grid) Highlights() []Span { return append([]Span(nil), g.highlights...) }

// Render returns the grid with highlighted cells drawn in style, normally a
// reverse-video style.
func (g Grid) Render(style lipgloss.Style) string {
	out := make([]string, len(g.lines))
	for i, segs := range g.lines {
		var b strings.Builder
		for _, s := range segs {
			if s.highlight && s.text != "" {
				b.WriteString(style.Render(s.text))
				continue
			}
			b.WriteString(s.text)
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// HighlightStyle is reverse video.
var HighlightStyle = lipgloss.NewStyle().Reverse(true)
