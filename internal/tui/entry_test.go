package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestEntryAdd(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12", "12"},
		{"12.345", "12.34"},
		{".5", "0.5"},
		{"1.2.3", "1.23"},
		{"a1b", "1"},
		{"..", "0."},
		{"-3", "3"},
	}
	for _, tt := range tests {
		var e Entry
		e.Add(tt.in)
		if e.String() != tt.want {
			t.Errorf("Add(%q) = %q, want %q", tt.in, e.String(), tt.want)
		}
	}
}

func TestEntryBackspaceAndAmount(t *testing.T) {
	var e Entry
	e.Add("7.25")
	e.Backspace()
	e.Backspace()
	if e.String() != "7." {
		t.Fatalf("after backspace = %q", e.String())
	}
	amount, err := e.Amount()
	if err != nil {
		t.Fatalf("Amount: %v", err)
	}
	if amount.String() != "$7.00" {
		t.Fatalf("amount = %s", amount)
	}
	e.Clear()
	if !e.Empty() {
		t.Fatalf("expected empty after Clear")
	}
	e.Backspace()
	if _, err := e.Amount(); err == nil {
		t.Fatalf("empty entry should not parse")
	}
}

func TestTimer(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(3*time.Second, func() time.Time { return now })
	if !timer.Expired() {
		t.Fatalf("new timer should start expired")
	}
	timer.Start()
	if timer.Expired() {
		t.Fatalf("timer expired immediately")
	}
	now = now.Add(3 * time.Second)
	if timer.Expired() {
		t.Fatalf("timer should last its full duration")
	}
	now = now.Add(time.Millisecond)
	if !timer.Expired() {
		t.Fatalf("timer should have expired")
	}
	timer.Start()
	timer.Expire()
	if !timer.Expired() {
		t.Fatalf("Expire should end the timer")
	}
}

func TestMenu(t *testing.T) {
	m := NewMenu([]string{"a", "b", "c", "d", "e"})
	m.Previous()
	if m.Selected() != "a" {
		t.Fatalf("Previous at top moved to %q", m.Selected())
	}
	m.Last()
	m.Next()
	if m.Selected() != "e" {
		t.Fatalf("Next at bottom moved to %q", m.Selected())
	}
	if got := ansi.Strip(m.Render(10, 2)); got != " d \n e " {
		t.Fatalf("scrolled render = %q", got)
	}
	m.First()
	if m.Pointer() != 0 {
		t.Fatalf("First pointer = %d", m.Pointer())
	}
	if NewMenu(nil).Selected() != "" {
		t.Fatalf("empty menu should select nothing")
	}
}

