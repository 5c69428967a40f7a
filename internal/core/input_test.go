package core

import "testing"

func TestCommandIsTurn(t *testing.T) {
	tests := []struct {
		cmd  Command
		want bool
	}{
		{Cmd(CmdTurnUp), true},
		{Cmd(CmdTurnDown), true},
		{Cmd(CmdTurnLeft), true},
		{Cmd(CmdTurnRight), true},
		{Cmd(CmdTogglePause), false},
		{SelectMode(2), false},
		{Cmd(CmdConfirm), false},
		{Cmd(CmdNone), false},
	}

	for _, tt := range tests {
		if got := tt.cmd.IsTurn(); got != tt.want {
			t.Errorf("%v.IsTurn() = %v, want %v", tt.cmd.Kind, got, tt.want)
		}
	}
}

func TestSelectModeCarriesSlot(t *testing.T) {
	c := SelectMode(3)
	if c.Kind != CmdSelectMode || c.Mode != 3 {
		t.Errorf("SelectMode(3) = %+v", c)
	}
	if s := CommandKind(99).String(); s != "Unknown" {
		t.Errorf("unknown kind String() = %q", s)
	}
}

func TestAlertFunc(t *testing.T) {
	n := 0
	var a Alerter = AlertFunc(func() { n++ })
	a.Alert()
	a.Alert()
	NopAlerter{}.Alert()
	if n != 2 {
		t.Errorf("alerts = %d, want 2", n)
	}
}
