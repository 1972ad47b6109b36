package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jask/pyrite/internal/csvrec"
)

const sample = `Name,Hint
Food: Groceries,"supermarket, butcher"
Food: Takeaway,pizza
Transport,bus fare
`

func TestLoadKeepsOrderAndHints(t *testing.T) {
	c, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"Food: Groceries", "Food: Takeaway", "Transport"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	hint, ok := c.Hint("Food: Groceries")
	if !ok || hint != "supermarket, butcher" {
		t.Fatalf("Hint = %q, %v", hint, ok)
	}
	if hint, ok := c.Hint("Rent"); ok || hint != "" {
		t.Fatalf("Hint(miss) = %q, %v; want empty, false", hint, ok)
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := Load(strings.NewReader("Name,Hint\nA,x\nB,y\nA,z\n"))
	if !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("err = %v, want ErrDuplicateCategory", err)
	}
	var rerr *csvrec.RecordError
	if !errors.As(err, &rerr) || rerr.Line != 4 {
		t.Fatalf("err = %v, want failing line 4", err)
	}
}

func TestLoadRejectsShortRows(t *testing.T) {
	for _, in := range []string{"Name,Hint\nA\n", "Name,Hint\n,hint\n"} {
		if _, err := Load(strings.NewReader(in)); !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("Load(%q) err = %v, want ErrMalformedRecord", in, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 3 || c.At(2).Name != "Transport" {
		t.Fatalf("catalog = %+v", c.Categories())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	if _, err := New(Category{Name: "A"}, Category{Name: "A"}); !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("err = %v", err)
	}
	c, err := New(Category{Name: "A"}, Category{Name: "B", Hint: "b"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Contains("B") || c.Contains("C") || c.Index("B") != 1 {
		t.Fatalf("lookup mismatch")
	}
}

func TestSuggest(t *testing.T) {
	c, _ := New(Category{Name: "Groceries"}, Category{Name: "Transport"})
	if got, ok := c.Suggest("Grocerys"); !ok || got != "Groceries" {
		t.Fatalf("Suggest = %q, %v", got, ok)
	}
	if _, ok := c.Suggest("zz"); ok {
		t.Fatalf("Suggest(zz) should not match")
	}
	empty, _ := New()
	if _, ok := empty.Suggest("x"); ok {
		t.Fatalf("empty catalog should not suggest")
	}
}
