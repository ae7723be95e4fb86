package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"w", runeKey('w'), km.P1Up},
		{"shifted W", runeKey('W'), km.P1Up},
		{"s", runeKey('s'), km.P1Down},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.P2Up},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, km.P2Down},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, km.Launch},
		{"r", runeKey('r'), km.Reset},
		{"q", runeKey('q'), km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, km.Screenshot},
	}

	for _, tc := range tests {
		if !key.Matches(tc.msg, tc.binding) {
			t.Errorf("%s: key %q did not match binding %v", tc.name, tc.msg.String(), tc.binding.Keys())
		}
	}

	// Paddle keys must not overlap.
	if key.Matches(runeKey('w'), km.P2Up) {
		t.Errorf("w should not move the right paddle")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyUp}, km.P1Up) {
		t.Errorf("up arrow should not move the left paddle")
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1700000000, 0)

	if d := h.Direction(core.Player1, t0); d != core.DirNone {
		t.Errorf("Direction() before any press = %v, expected none", d)
	}

	h.Press(core.Player1, core.DirUp, t0)
	h.EndFrame()

	tests := []struct {
		at   time.Duration
		want core.Direction
	}{
		{0, core.DirUp},
		{100 * time.Millisecond, core.DirUp},
		{150 * time.Millisecond, core.DirUp},
		{151 * time.Millisecond, core.DirNone},
	}
	for _, tc := range tests {
		if d := h.Direction(core.Player1, t0.Add(tc.at)); d != tc.want {
			t.Errorf("Direction() at +%v = %v, expected %v", tc.at, d, tc.want)
		}
	}

	if d := h.Direction(core.Player2, t0); d != core.DirNone {
		t.Errorf("player 2 Direction() = %v, expected none", d)
	}
}

func TestHoldTrackerTapSurvivesLateFrame(t *testing.T) {
	h := NewHoldTracker(10 * time.Millisecond)
	t0 := time.Unix(1700000000, 0)

	h.Press(core.Player2, core.DirDown, t0)

	// The frame arrives long after the window; the tap still counts once.
	late := t0.Add(time.Second)
	if d := h.Direction(core.Player2, late); d != core.DirDown {
		t.Errorf("Direction() for late frame = %v, expected down", d)
	}
	h.EndFrame()
	if d := h.Direction(core.Player2, late); d != core.DirNone {
		t.Errorf("Direction() after EndFrame = %v, expected none", d)
	}
}

func TestHoldTrackerUpBeatsDownInSameFrame(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1700000000, 0)

	h.Press(core.Player1, core.DirUp, t0)
	h.Press(core.Player1, core.DirDown, t0)

	if d := h.Direction(core.Player1, t0); d != core.DirUp {
		t.Errorf("Direction() with both tapped = %v, expected up", d)
	}
}

func TestHoldTrackerNewPressReleasesOpposite(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1700000000, 0)

	h.Press(core.Player1, core.DirUp, t0)
	h.EndFrame()
	h.Press(core.Player1, core.DirDown, t0.Add(50*time.Millisecond))
	h.EndFrame()

	if d := h.Direction(core.Player1, t0.Add(100*time.Millisecond)); d != core.DirDown {
		t.Errorf("Direction() after switching = %v, expected down", d)
	}
}

func TestHoldTrackerClear(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1700000000, 0)

	h.Press(core.Player1, core.DirUp, t0)
	h.Press(core.Player2, core.DirDown, t0)
	h.Clear()

	if d := h.Direction(core.Player1, t0); d != core.DirNone {
		t.Errorf("player 1 Direction() after Clear = %v, expected none", d)
	}
	if d := h.Direction(core.Player2, t0); d != core.DirNone {
		t.Errorf("player 2 Direction() after Clear = %v, expected none", d)
	}

	// Unknown players and DirNone are ignored.
	h.Press(core.PlayerID(7), core.DirUp, t0)
	h.Press(core.Player1, core.DirNone, t0)
	if d := h.Direction(core.Player1, t0); d != core.DirNone {
		t.Errorf("Direction() after ignored presses = %v, expected none", d)
	}
}
