package tui

import (
	"strings"

	"github.com/jask/pyrite/internal/money"
)

// Entry is the cost being typed: digits with at most one decimal point and
// two places after it.
type Entry struct {
	buf string
}

// Add appends the acceptable characters of s. A leading point becomes "0.".
func (e *Entry) Add(s string) {
	for _, r := range s {
		switch {
		case r == '.':
			if strings.Contains(e.buf, ".") {
				continue
			}
			if e.buf == "" {
				e.buf = "0"
			}
			e.buf += "."
		case r >= '0' && r <= '9':
			if i := strings.IndexByte(e.buf, '.'); i >= 0 && len(e.buf)-i-1 >= 2 {
				continue
			}
			e.buf += string(r)
		}
	}
}

// Backspace drops the last character.
func (e *Entry) Backspace() {
	if e.buf != "" {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

func (e *Entry) Clear() { e.buf = "" }

func (e *Entry) Empty() bool { return e.buf == "" }

func (e *Entry) String() string { return e.buf }

// Amount parses the buffer; a trailing point is ignored.
func (e *Entry) Amount() (money.Money, error) {
	return money.Parse(strings.TrimSuffix(e.buf, "."))
}
