package widgets

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsFixedSizes(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Sizes: []int{5, 0}}
	lines := strings.Split(h.Render(20, 1), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0] != "A    B              " {
		t.Fatalf("line = %q", lines[0])
	}
}

func TestVStackPadsChildrenToHeight(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Sizes: []int{0, 1}}
	lines := strings.Split(v.Render(20, 4), "\n")
	want := []string{"top", "", "", "bottom"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestSplitSizes(t *testing.T) {
	tests := []struct {
		name  string
		total int
		sizes []int
		want  []int
	}{
		{"even", 10, nil, []int{4, 3, 3}},
		{"fixed and flex", 30, []int{22, 0, 0}, []int{22, 4, 4}},
		{"fixed overflow", 10, []int{8, 8, 0}, []int{8, 2, 0}},
		{"flex around fixed", 12, []int{0, 2, 0}, []int{5, 2, 5}},
		{"negative size is flex", 9, []int{-3, 3, 0}, []int{3, 3, 3}},
		{"nothing left", 0, []int{0, 0, 0}, []int{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSizes(tt.total, 3, tt.sizes); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitSizes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaneBorders(t *testing.T) {
	out := Pane{Title: "Overview", Content: "hello"}.Render(20, 4)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20: %q", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "┌─ Overview ") || !strings.HasSuffix(lines[0], "┐") {
		t.Fatalf("top = %q", lines[0])
	}
	if lines[1] != "│hello             │" {
		t.Fatalf("content = %q", lines[1])
	}

	double := ansi.Strip(Pane{Title: "Overview", Double: true}.Render(20, 3))
	if !strings.HasPrefix(double, "╔") || !strings.Contains(double, "║") || !strings.HasSuffix(double, "╝") {
		t.Fatalf("double border missing:\n%s", double)
	}
}

func TestRenderPopupCentres(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 30)+"\n", 9) + strings.Repeat(".", 30)
	out := ansi.Strip(RenderPopup(base, "", "hint", 30, 10))
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d", len(lines))
	}
	found := false
	for _, line := range lines {
		if ansi.StringWidth(line) != 30 {
			t.Fatalf("line width = %d: %q", ansi.StringWidth(line), line)
		}
		if strings.Contains(line, "hint") {
			found = true
			if !strings.HasPrefix(line, "..........") || !strings.HasSuffix(line, "..........") {
				t.Fatalf("popup not centred: %q", line)
			}
		}
	}
	if !found {
		t.Fatalf("popup text missing:\n%s", out)
	}
}

func TestCenterAndAlignRight(t *testing.T) {
	if got := Center("ab", 7); got != "  ab   " {
		t.Fatalf("Center = %q", got)
	}
	if got := AlignRight("ab", 5); got != "   ab" {
		t.Fatalf("AlignRight = %q", got)
	}
	if got := Center("abcdef", 3); got != "abc" {
		t.Fatalf("Center clip = %q", got)
	}
}
