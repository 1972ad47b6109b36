package overview

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/grid"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/money"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		catalog.Category{Name: "Food: Groceries", Hint: "supermarket"},
		catalog.Category{Name: "Food: Takeaway"},
		catalog.Category{Name: "Transport", Hint: "fuel, bus"},
		catalog.Category{Name: "Rent"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func agg(name, cost string) ledger.Aggregate {
	return ledger.Aggregate{Category: name, Total: money.MustParse(cost)}
}

func TestVisibleCategoriesFollowCatalogOrder(t *testing.T) {
	cat := testCatalog(t)
	aggregates := []ledger.Aggregate{
		agg("Rent", "400"),
		agg("Orphan", "1"),
		agg("Food: Groceries", "12.50"),
		agg("Transport", "4.20"),
	}
	got := VisibleCategories(cat, aggregates)
	want := []string{"Food: Groceries", "Transport", "Rent"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}
}

func TestHighlight(t *testing.T) {
	ordered := []string{"Food: Groceries", "Transport", "Rent"}
	tests := []struct {
		name    string
		focused string
		want    []grid.Cell
	}{
		{"third row", "Rent", []grid.Cell{{Col: 1, Row: 2}}},
		{"first row", "Food: Groceries", []grid.Cell{{Col: 1, Row: 0}}},
		{"absent", "Food: Takeaway", nil},
		{"empty name", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(ordered, tt.focused); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Highlight(%q) = %v, want %v", tt.focused, got, tt.want)
			}
		})
	}
	if _, ok := HighlightRow(nil, "Rent"); ok {
		t.Fatalf("empty list should not match")
	}
}

func TestBuild(t *testing.T) {
	cat := testCatalog(t)
	aggregates := []ledger.Aggregate{agg("Transport", "4.20"), agg("Food: Groceries", "12.50")}

	tbl := Build(cat, aggregates, "Transport")
	if got := tbl.Headers(); !reflect.DeepEqual(got, []string{"Category", "Total"}) {
		t.Fatalf("headers = %v", got)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Rows())
	}
	if !tbl.Highlighted(grid.Cell{Col: TotalColumn, Row: 1}) {
		t.Fatalf("Transport total should be highlighted")
	}

	g := tbl.Layout(30, 0)
	if !reflect.DeepEqual(g.Widths, []int{18, 10}) {
		t.Fatalf("widths = %v, want [18 10]", g.Widths)
	}
	lines := g.Lines()
	if !strings.Contains(lines[2], "Food: Groceries") || !strings.Contains(lines[2], "$12.50") {
		t.Fatalf("first row = %q", lines[2])
	}
	if len(g.Highlights()) != 1 || g.Highlights()[0].Line != 3 {
		t.Fatalf("highlights = %+v", g.Highlights())
	}
}

func TestBuildWithoutFocusMatch(t *testing.T) {
	cat := testCatalog(t)
	tbl := Build(cat, []ledger.Aggregate{agg("Rent", "400")}, "Transport")
	if len(tbl.Layout(30, 0).Highlights()) != 0 {
		t.Fatalf("expected no highlight")
	}
	if Build(cat, nil, "Rent").Rows() != 0 {
		t.Fatalf("expected no rows for an empty week")
	}
}
