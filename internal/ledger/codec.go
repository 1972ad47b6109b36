package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jask/pyrite/internal/csvrec"
	"github.com/jask/pyrite/internal/money"
)

// TimestampLayout is the zoned, microsecond timestamp used in the ledger file.
const TimestampLayout = "2006-01-02T15:04:05.000000-0700"

var header = []string{"Timestamp", "Category", "Cost"}

// Decode reads a ledger file: a header row, then timestamp,category,cost rows.
func Decode(r io.Reader) ([]Purchase, error) {
	var out []Purchase
	err := csvrec.Read(r, len(header), func(fields []string) error {
		ts := strings.TrimSpace(fields[0])
		at, err := time.Parse(TimestampLayout, ts)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
		}
		cost, err := money.Parse(fields[2])
		if err != nil {
			return err
		}
		out = append(out, Purchase{Category: fields[1], Cost: cost, CreatedAt: at})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Encode writes the header and one row per purchase.
func Encode(w io.Writer, records []Purchase) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range records {
		row := []string{p.CreatedAt.Format(TimestampLayout), p.Category, p.Cost.Plain()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
