package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/snaketui/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"s", core.ActionDown},
		{"down", core.ActionDown},
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if isQuit {
			t.Errorf("key %q flagged as quit", tc.key)
		}
		if action != tc.action {
			t.Errorf("key %q mapped to %v, expected %v", tc.key, action, tc.action)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("key %q not flagged as quit", key)
		}
		if action != core.ActionQuit {
			t.Errorf("key %q mapped to %v, expected ActionQuit", key, action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("a flagged as quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame missing ActionLeft after 'a'")
	}

	// Unmapped keys leave the frame untouched
	before := len(frame.Actions)
	km.MapKeyToFrame(keyMsg("z"), &frame)
	if len(frame.Actions) != before {
		t.Error("unmapped key modified the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("key %q mapped to %v, expected %v", tc.key, got, tc.action)
		}
	}
}
