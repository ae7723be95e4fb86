package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is a read-only copy of the table for the renderer.
// Uses plain values only so it can be handed across goroutines freely.
type Snapshot struct {
	Frame        uint64
	Ball         core.Vec2
	BallVelocity core.Vec2
	Paddle1      core.Vec2
	Paddle2      core.Vec2
	Phase        Phase
}

// Snapshot returns the current table state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:        g.frame,
		Ball:         g.state.Ball,
		BallVelocity: g.state.BallVelocity,
		Paddle1:      g.state.Paddle1,
		Paddle2:      g.state.Paddle2,
		Phase:        g.state.Phase,
	}
}
