package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		event   *tcell.EventKey
		matches bool
	}{
		{
			name:    "named key",
			keys:    []string{"left"},
			event:   tcell.NewEventKey(tcell.KeyLeft, "", tcell.ModNone),
			matches: true,
		},
		{
			name:    "rune key",
			keys:    []string{"h"},
			event:   tcell.NewEventKey(tcell.KeyRune, "h", tcell.ModNone),
			matches: true,
		},
		{
			name:    "other rune",
			keys:    []string{"h"},
			event:   tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone),
			matches: false,
		},
		{
			name:    "enter via return alias",
			keys:    []string{"return"},
			event:   tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone),
			matches: true,
		},
		{
			name:    "ctrl modifier",
			keys:    []string{"ctrl+n"},
			event:   tcell.NewEventKey(tcell.KeyCtrlN, "", tcell.ModCtrl),
			matches: true,
		},
		{
			name:    "modifier required",
			keys:    []string{"alt+x"},
			event:   tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone),
			matches: false,
		},
		{
			name:    "backtab normalizes to shift tab",
			keys:    []string{"backtab"},
			event:   tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone),
			matches: true,
		},
		{
			name:    "nil event",
			keys:    []string{"left"},
			event:   nil,
			matches: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keybind := NewKeybind(tt.keys...)
			if got := Matches(tt.event, keybind); got != tt.matches {
				t.Errorf("Matches = %v, want %v", got, tt.matches)
			}
		})
	}
}

func TestMatchesAnyOfSeveralBinds(t *testing.T) {
	prev := NewKeybind("left", "h")
	next := NewKeybind("right", "l")
	event := tcell.NewEventKey(tcell.KeyRune, "l", tcell.ModNone)

	if Matches(event, prev) {
		t.Error("matched the wrong bind")
	}
	if !Matches(event, prev, next) {
		t.Error("did not match across multiple binds")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Left", "left"},
		{" enter ", "enter"},
		{"Ctrl+N", "ctrl+n"},
		{"control + p", "ctrl+p"},
		{"PageUp", "pgup"},
		{"Escape", "esc"},
		{"shift+ctrl+a", "shift+ctrl+a"},
		{"", ""},
		{"ctrl+", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalizeKey(tt.in); got != tt.want {
				t.Errorf("normalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
