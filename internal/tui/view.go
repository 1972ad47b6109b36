package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pyrite/internal/grid"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/overview"
	"github.com/jask/pyrite/internal/widgets"
)

const (
	menuWidth     = 22
	footerPanes   = 3
	defaultWidth  = 80
	defaultHeight = 24
)

func (a *App) View() string {
	width, height := a.width, a.height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	bodyHeight := max(height-1, footerPanes+2)

	left := widgets.VStack{
		Widgets: []widgets.Widget{
			menuPane{menu: a.menu},
			widgets.Pane{Title: "Enter cost", Content: " $ " + a.entry.String()},
		},
		Sizes: []int{0, footerPanes},
	}
	right := widgets.VStack{
		Widgets: []widgets.Widget{
			overviewPane{app: a},
			timePane{app: a},
		},
		Sizes: []int{0, footerPanes},
	}
	body := widgets.HStack{
		Widgets: []widgets.Widget{left, right},
		Sizes:   []int{menuWidth, 0},
	}.Render(width, bodyHeight)

	if hint, ok := a.catalog.Hint(a.menu.Selected()); ok && hint != "" && !a.hint.Expired() {
		body = widgets.RenderPopup(body, "Examples", hint, width, bodyHeight)
	}
	return body + "\n" + a.statusLine(width)
}

type menuPane struct{ menu *Menu }

func (p menuPane) Render(width, height int) string {
	iw, ih := widgets.InnerSize(width, height)
	return widgets.Pane{Title: "Categories", Content: p.menu.Render(iw, ih), Focused: true}.Render(width, height)
}

type overviewPane struct{ app *App }

func (p overviewPane) Render(width, height int) string {
	a := p.app
	iw, ih := widgets.InnerSize(width, height)
	view := a.selectedWeek()

	// The last two lines hold the subtotals.
	tableHeight := max(ih-2, 1)
	g := overview.Build(a.catalog, view.GroupByCategory(), a.menu.Selected()).Layout(iw, tableHeight)
	lines := strings.Split(g.Render(grid.HighlightStyle), "\n")
	if g.Empty() {
		lines = nil
	}
	for len(lines) < tableHeight {
		lines = append(lines, "")
	}
	lines = append(lines, subtotalLines(view, a.cfg.UI.SubtotalPrefix, iw)...)

	return widgets.Pane{
		Title:   "Overview",
		Content: strings.Join(lines, "\n"),
		Double:  a.policy.Contains(a.pointer, a.now()),
	}.Render(width, height)
}

// subtotalLines formats the prefix subtotal and the week total as whole
// dollars, right aligned with their colons lined up.
func subtotalLines(view ledger.View, prefix string, width int) []string {
	label := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	rows := [][2]string{}
	if label != "" {
		rows = append(rows, [2]string{label, view.TotalWithPrefix(prefix).Whole()})
	}
	rows = append(rows, [2]string{"Total", view.Total().Whole()})

	labelW, valueW := 0, 0
	for _, r := range rows {
		labelW = max(labelW, len(r[0]))
		valueW = max(valueW, len(r[1]))
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		text := fmt.Sprintf("%*s: %-*s ", labelW, r[0], valueW, r[1])
		out[i] = widgets.AlignRight(text, width)
	}
	return out
}

type timePane struct{ app *App }

func (p timePane) Render(width, height int) string {
	a := p.app
	iw, _ := widgets.InnerSize(width, height)
	return widgets.Pane{
		Title:   "← Selected week →",
		Content: widgets.Center(a.policy.RangeLabel(a.pointer), iw),
	}.Render(width, height)
}

// selectedWeek returns the purchases in the displayed week.
func (a *App) selectedWeek() ledger.View {
	start, end := a.policy.Window(a.pointer)
	return a.ledger.Within(start, end)
}

func (a *App) statusLine(width int) string {
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = statusErrStyle
		}
		return style.Render(ansi.Truncate(a.status, width, "…"))
	}
	return helpStyle.Render(ansi.Truncate(strings.Join(a.keys.Help(), "  "), width, "…"))
}
