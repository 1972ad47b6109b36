// Package catalog holds the ordered list of spending categories a user can
// record purchases against. A catalog is built once at startup and only read
// afterwards.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/pyrite/internal/csvrec"
)

var (
	// ErrDuplicateCategory is returned when two entries share a name.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrMalformedRecord is returned for a row missing its name or hint.
	ErrMalformedRecord = csvrec.ErrMalformedRecord
)

// Category is a named bucket with an optional hint shown while it is focused.
type Category struct {
	Name string
	Hint string
}

func (c Category) String() string { return c.Name }

// Catalog is an ordered, duplicate-free sequence of categories.
type Catalog struct {
	categories []Category
}

// New builds a catalog in the given order.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{categories: make([]Category, 0, len(categories))}
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrMalformedRecord)
		}
		if _, dup := seen[cat.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Name)
		}
		seen[cat.Name] = struct{}{}
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// Load reads a header-prefixed CSV of name,hint rows.
func Load(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	seen := map[string]struct{}{}
	err := csvrec.Read(r, 2, func(fields []string) error {
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return fmt.Errorf("%w: empty category name", ErrMalformedRecord)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
		}
		seen[name] = struct{}{}
		c.categories = append(c.categories, Category{Name: name, Hint: strings.TrimSpace(fields[1])})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return c, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open categories: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// At returns the category at position i in catalog order.
func (c *Catalog) At(i int) Category { return c.categories[i] }

// Categories returns a copy of the catalog in order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Names returns category names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Name
	}
	return out
}

// Index returns the position of name, or -1.
func (c *Catalog) Index(name string) int {
	for i, cat := range c.categories {
		if cat.Name == name {
			return i
		}
	}
	return -1
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool { return c.Index(name) >= 0 }

// Hint returns the hint for name. A miss is not an error: purchases may
// reference names the catalog no longer has.
func (c *Catalog) Hint(name string) (string, bool) {
	if i := c.Index(name); i >= 0 {
		return c.categories[i].Hint, true
	}
	return "", false
}

// Suggest returns the catalog name closest to name by edit distance. It
// reports false for an empty catalog or when the best match needs more edits
// than half of name's length.
func (c *Catalog) Suggest(name string) (string, bool) {
	best, bestDist := "", -1
	for _, cat := range c.categories {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(cat.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = cat.Name, d
		}
	}
	if bestDist < 0 || bestDist > len([]rune(name))/2 {
		return "", false
	}
	return best, true
}
