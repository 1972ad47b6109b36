package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var menuSelectedStyle = lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("#f9e2af"))

// Menu is the category list with a clamped pointer.
type Menu struct {
	items   []string
	pointer int
}

func NewMenu(items []string) *Menu {
	return &Menu{items: append([]string(nil), items...)}
}

func (m *Menu) Len() int { return len(m.items) }

func (m *Menu) Pointer() int { return m.pointer }

// Selected returns the focused item, or "" for an empty menu.
func (m *Menu) Selected() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.pointer]
}

func (m *Menu) Next() {
	if m.pointer < len(m.items)-1 {
		m.pointer++
	}
}

func (m *Menu) Previous() {
	if m.pointer > 0 {
		m.pointer--
	}
}

func (m *Menu) First() { m.pointer = 0 }

func (m *Menu) Last() { m.pointer = max(len(m.items)-1, 0) }

// Render draws one item per line, scrolled so the pointer stays visible.
// Items share the width of the longest one plus a margin.
func (m *Menu) Render(width, height int) string {
	if len(m.items) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	longest := 0
	for _, it := range m.items {
		longest = max(longest, ansi.StringWidth(it))
	}
	itemWidth := min(longest+2, width)

	offset := 0
	if m.pointer >= height {
		offset = m.pointer - height + 1
	}
	end := min(offset+height, len(m.items))
	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		text := " " + m.items[i]
		text = ansi.Truncate(text, itemWidth, "")
		text += strings.Repeat(" ", itemWidth-ansi.StringWidth(text))
		if i == m.pointer {
			text = menuSelectedStyle.Render(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}
