package tui

import (
	"time"

	"github.com/jask/pyrite/internal/ledger"
)

// RolloverMsg tells the app a new week has started.
type RolloverMsg struct{}

type savedMsg struct {
	purchases []ledger.Purchase
	err       error
}

type hintExpiredMsg struct {
	started time.Time
}
