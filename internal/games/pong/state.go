package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Phase is the rally state. It moves in lock-step with the ball velocity:
// the ball only moves while the phase is PhaseActive.
type Phase int

const (
	PhaseIdle   Phase = iota // Centered, waiting for a serve
	PhaseActive              // Ball in play
	PhaseEnded               // Ball reached a boundary wall and froze in place
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State holds every mutable entity of a table. Walls are static and live in
// package-level values; nothing else is shared between games.
type State struct {
	Paddle1      core.Vec2
	Paddle2      core.Vec2
	Ball         core.Vec2
	BallVelocity core.Vec2 // Direction components, scaled by BallSpeed on integration
	Phase        Phase
}

// InitialState returns a table with every entity at its starting position.
func InitialState() State {
	return State{
		Paddle1: Paddle1Start,
		Paddle2: Paddle2Start,
		Ball:    BallStart,
		Phase:   PhaseIdle,
	}
}

// Paddle returns the position of the given player's paddle.
func (s State) Paddle(id core.PlayerID) core.Vec2 {
	if id == core.Player2 {
		return s.Paddle2
	}
	return s.Paddle1
}

func (s *State) paddleRef(id core.PlayerID) *core.Vec2 {
	if id == core.Player2 {
		return &s.Paddle2
	}
	return &s.Paddle1
}
