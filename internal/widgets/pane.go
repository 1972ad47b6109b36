package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	colorText   = lipgloss.Color("#cdd6f4")
	colorBorder = lipgloss.Color("#6c7086")
	colorAccent = lipgloss.Color("#89b4fa")
)

type paneGlyphs struct {
	h, v, tl, tr, bl, br string
}

var (
	normalGlyphs = paneGlyphs{h: "─", v: "│", tl: "┌", tr: "┐", bl: "└", br: "┘"}
	doubleGlyphs = paneGlyphs{h: "═", v: "║", tl: "╔", tr: "╗", bl: "╚", br: "╝"}
)

// Pane is a titled box filling the space it is given. Content lines are
// drawn as-is, so styled text survives; lines are clipped to the inner width.
type Pane struct {
	Title   string
	Content string
	Double  bool
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	height = max(height, 2)

	border := colorBorder
	if p.Focused {
		border = colorAccent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	g := normalGlyphs
	if p.Double {
		g = doubleGlyphs
	}
	innerWidth := width - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(0, innerWidth-3), "") + " "
	}
	titleW := ansi.StringWidth(titleText)
	leftDash := min(1, innerWidth-titleW)
	rightDash := max(0, innerWidth-titleW-leftDash)

	top := borderStyle.Render(g.tl+strings.Repeat(g.h, max(leftDash, 0))) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(g.h, rightDash)+g.tr)

	innerHeight := height - 2
	contentLines := splitLines(p.Content)
	v := borderStyle.Render(g.v)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+padRight(line, innerWidth)+v)
	}
	rows = append(rows, borderStyle.Render(g.bl+strings.Repeat(g.h, innerWidth)+g.br))
	return strings.Join(rows, "\n")
}

// InnerSize returns the content area of a pane drawn at width x height.
func InnerSize(width, height int) (int, int) {
	return max(width, 4) - 2, max(height, 2) - 2
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
