// Package csvrec reads the small header-prefixed CSV files pyrite keeps its
// data in, reporting failures against the line they came from.
package csvrec

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedRecord marks a row whose shape is wrong.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError ties a row failure to its 1-based line in the source.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *RecordError) Unwrap() error { return e.Err }

// Read skips the header row and hands every following row to fn. Rows with
// fewer than minFields fields fail with ErrMalformedRecord. Reading stops at the
// first error; any error returned by fn is wrapped in a RecordError.
func Read(r io.Reader, minFields int, fn func(fields []string) error) error {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return &RecordError{Line: 1, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, err)}
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.StartLine
			}
			return &RecordError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, err)}
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < minFields {
			return &RecordError{Line: line, Err: fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, minFields, len(rec))}
		}
		if err := fn(rec); err != nil {
			return &RecordError{Line: line, Err: err}
		}
	}
}
