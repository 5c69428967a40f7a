package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.Cmd(core.CmdTurnUp)},
		{"w", runeKey('w'), core.Cmd(core.CmdTurnUp)},
		{"k", runeKey('k'), core.Cmd(core.CmdTurnUp)},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.Cmd(core.CmdTurnDown)},
		{"j", runeKey('j'), core.Cmd(core.CmdTurnDown)},
		{"a", runeKey('a'), core.Cmd(core.CmdTurnLeft)},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.Cmd(core.CmdTurnLeft)},
		{"d", runeKey('d'), core.Cmd(core.CmdTurnRight)},
		{"l", runeKey('l'), core.Cmd(core.CmdTurnRight)},
		{"pause", runeKey('p'), core.Cmd(core.CmdTogglePause)},
		{"mode 1", runeKey('1'), core.SelectMode(1)},
		{"mode 4", runeKey('4'), core.SelectMode(4)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Cmd(core.CmdConfirm)},
		{"restart", runeKey('r'), core.Cmd(core.CmdRestart)},
		{"q", runeKey('q'), core.Cmd(core.CmdQuit)},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Cmd(core.CmdQuit)},
		{"unbound", runeKey('z'), core.Cmd(core.CmdNone)},
		{"mode 5 unbound", runeKey('5'), core.Cmd(core.CmdNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("empty short help")
	}
	var n int
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	if n != 10 {
		t.Errorf("full help lists %d bindings, want 10", n)
	}
}
