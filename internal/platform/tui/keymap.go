package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for the table.
type KeyMap struct {
	P1Up       key.Binding
	P1Down     key.Binding
	P2Up       key.Binding
	P2Down     key.Binding
	Launch     key.Binding
	Reset      key.Binding
	Screenshot key.Binding
	Suspend    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Launch, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Launch, k.Reset},
		{k.Screenshot, k.Suspend, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "p1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "p1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "p2 down"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "serve"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldTracker turns key presses into held directions.
//
// Terminals report presses and auto-repeats but never releases. A direction
// stays held while its last press is within the hold window. Every press
// also counts for the next frame, however late it arrives, so short taps
// are never lost. Pressing one direction releases the other for that
// paddle; when both were tapped in the same frame, up wins.
type HoldTracker struct {
	window time.Duration
	last   [2][2]time.Time // [player][up, down]
	tapped [2][2]bool
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: max(window, 0)}
}

func holdIndex(p core.PlayerID, d core.Direction) (int, int, bool) {
	var pi int
	switch p {
	case core.Player1:
		pi = 0
	case core.Player2:
		pi = 1
	default:
		return 0, 0, false
	}
	switch d {
	case core.DirUp:
		return pi, 0, true
	case core.DirDown:
		return pi, 1, true
	}
	return 0, 0, false
}

// Press records a press of d for player p at now.
func (h *HoldTracker) Press(p core.PlayerID, d core.Direction, now time.Time) {
	pi, di, ok := holdIndex(p, d)
	if !ok {
		return
	}
	h.last[pi][di] = now
	h.tapped[pi][di] = true
	h.last[pi][1-di] = time.Time{}
}

// Direction returns the held direction for player p at now.
func (h *HoldTracker) Direction(p core.PlayerID, now time.Time) core.Direction {
	if h.held(p, core.DirUp, now) {
		return core.DirUp
	}
	if h.held(p, core.DirDown, now) {
		return core.DirDown
	}
	return core.DirNone
}

func (h *HoldTracker) held(p core.PlayerID, d core.Direction, now time.Time) bool {
	pi, di, ok := holdIndex(p, d)
	if !ok {
		return false
	}
	if h.tapped[pi][di] {
		return true
	}
	last := h.last[pi][di]
	return !last.IsZero() && now.Sub(last) <= h.window
}

// EndFrame clears the taps consumed by the frame just stepped.
func (h *HoldTracker) EndFrame() {
	h.tapped = [2][2]bool{}
}

// Clear releases everything.
func (h *HoldTracker) Clear() {
	*h = HoldTracker{window: h.window}
}
