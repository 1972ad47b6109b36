package tui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Actions the keymap can trigger.
const (
	actionQuit      = "quit"
	actionUp        = "up"
	actionDown      = "down"
	actionFirst     = "first"
	actionLast      = "last"
	actionPrevWeek  = "prev-week"
	actionNextWeek  = "next-week"
	actionCommit    = "commit"
	actionBackspace = "backspace"
	actionClear     = "clear"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// Action returns the action bound to the pressed key, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Help returns "key description" pairs for the footer.
func (r *KeyRegistry) Help() []string {
	out := make([]string, 0, len(r.bindings))
	for _, b := range r.bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		out = append(out, b.Keys[0]+" "+b.Description)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit"},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "prev category"},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "next category"},
		{Keys: []string{"pgup", "home"}, Action: actionFirst, Description: "first"},
		{Keys: []string{"pgdown", "end"}, Action: actionLast, Description: "last"},
		{Keys: []string{"left", "h"}, Action: actionPrevWeek, Description: "prev week"},
		{Keys: []string{"right", "l"}, Action: actionNextWeek, Description: "next week"},
		{Keys: []string{"enter"}, Action: actionCommit, Description: "add"},
		{Keys: []string{"backspace"}, Action: actionBackspace},
		{Keys: []string{"esc"}, Action: actionClear},
	}
}

// ApplyActionKeybindings replaces the keys of every action named in
// actionKeys. Unknown action names are an error.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) ([]KeyBinding, error) {
	known := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	var unknown []string
	for action := range actionKeys {
		if !known[action] {
			unknown = append(unknown, action)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown key actions: %s", strings.Join(unknown, ", "))
	}

	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out, nil
}
