package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"w", runeKey("w"), core.ActionRotate, false},
		{"x", runeKey("x"), core.ActionRotate, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionHardDrop, false},
		{"c", runeKey("c"), core.ActionHold, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameAccumulates(t *testing.T) {
	keys := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	keys.MapKeyToFrame(runeKey("a"), &frame)
	keys.MapKeyToFrame(runeKey("c"), &frame)
	keys.MapKeyToFrame(runeKey("z"), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionHold) {
		t.Errorf("frame = %v, want left and hold", frame.Actions)
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key should not set ActionNone")
	}
	if len(frame.Actions) != 2 {
		t.Errorf("frame has %d actions, want 2", len(frame.Actions))
	}
}
