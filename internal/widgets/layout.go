package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget draws itself into a width x height box.
type Widget interface {
	Render(width, height int) string
}

// VStack stacks widgets top to bottom. Sizes fixes the height of a child
// when positive; the remaining height is shared evenly by the others.
type VStack struct {
	Widgets []Widget
	Sizes   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitSizes(height, len(v.Widgets), v.Sizes)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		h := max(1, heights[i])
		lines = append(lines, splitToLines(w.Render(width, h), h)...)
	}
	return strings.Join(lines, "\n")
}

// HStack places widgets side by side. Sizes fixes the width of a child when
// positive; the remaining width is shared evenly by the others.
type HStack struct {
	Widgets []Widget
	Sizes   []int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := splitSizes(width, len(h.Widgets), h.Sizes)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		var b strings.Builder
		for i := range rendered {
			if line < len(rendered[i]) {
				b.WriteString(padRight(rendered[i][line], widths[i]))
			} else {
				b.WriteString(strings.Repeat(" ", max(widths[i], 0)))
			}
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

// splitSizes hands fixed children their size (capped by what is left) and
// shares the remainder evenly among the others.
func splitSizes(total, n int, sizes []int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	var flex []int
	left := total
	for i := 0; i < n; i++ {
		if i < len(sizes) && sizes[i] > 0 {
			out[i] = min(sizes[i], max(left, 0))
			left -= out[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 {
		return out
	}
	shares := splitWidths(max(left, 0), len(flex))
	for j, i := range flex {
		out[i] = shares[j]
	}
	return out
}

// splitWidths divides total into n near-equal parts, the earlier parts
// taking the remainder.
func splitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center pads s on both sides to width, extra space going right.
func Center(s string, width int) string {
	s = ansi.Truncate(s, max(width, 0), "")
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
}

// AlignRight pads s on the left to width.
func AlignRight(s string, width int) string {
	s = ansi.Truncate(s, max(width, 0), "")
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
