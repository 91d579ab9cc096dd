package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballpit/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space adds ball", tea.KeyMsg{Type: tea.KeySpace}, core.ActionAddBall, false},
		{"p pauses", keyMsg('p'), core.ActionPause, false},
		{"r restarts", keyMsg('r'), core.ActionRestart, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", keyMsg('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", keyMsg('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotQuit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), got, tt.want)
			}
			if gotQuit != tt.wantQuit {
				t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.msg.String(), gotQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrameDigits(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	if quit := km.MapKeyToFrame(keyMsg('3'), &frame); quit {
		t.Error("digit key should not quit")
	}
	if frame.EjectSlot != 3 {
		t.Errorf("EjectSlot = %d, want 3", frame.EjectSlot)
	}

	// Zero is not a slot
	frame = core.NewInputFrame()
	km.MapKeyToFrame(keyMsg('0'), &frame)
	if frame.EjectSlot != 0 {
		t.Errorf("EjectSlot after '0' = %d, want 0", frame.EjectSlot)
	}

	// Ordinary actions still land in the frame
	frame = core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	if !frame.Has(core.ActionAddBall) {
		t.Error("space should set ActionAddBall on the frame")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name        string
		msg         tea.MouseMsg
		wantPress   bool
		wantMotion  bool
		wantRelease bool
	}{
		{
			"left press",
			tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			true, false, false,
		},
		{
			"right press ignored",
			tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			false, false, false,
		},
		{
			"wheel ignored",
			tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			false, false, false,
		},
		{
			"drag motion",
			tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			false, true, false,
		},
		{
			"release",
			tea.MouseMsg{X: 14, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			false, false, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapMouseToFrame(tt.msg, &frame)

			if frame.Pointer.X != tt.msg.X || frame.Pointer.Y != tt.msg.Y {
				t.Errorf("pointer position = (%d, %d), want (%d, %d)",
					frame.Pointer.X, frame.Pointer.Y, tt.msg.X, tt.msg.Y)
			}
			if frame.Pointer.Press != tt.wantPress {
				t.Errorf("Press = %v, want %v", frame.Pointer.Press, tt.wantPress)
			}
			if frame.Pointer.Motion != tt.wantMotion {
				t.Errorf("Motion = %v, want %v", frame.Pointer.Motion, tt.wantMotion)
			}
			if frame.Pointer.Release != tt.wantRelease {
				t.Errorf("Release = %v, want %v", frame.Pointer.Release, tt.wantRelease)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyMsg('k'), MenuActionUp},
		{keyMsg('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{keyMsg('q'), MenuActionQuit},
		{keyMsg('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
