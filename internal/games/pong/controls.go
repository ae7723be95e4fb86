package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Start puts the table into its idle state and rewinds the frame counter.
// The host calls it once before the first frame.
func (g *Game) Start() {
	g.Reset()
	g.frame = 0
}

// Reset recenters the ball and both paddles and stops the ball.
// It is valid in every phase.
func (g *Game) Reset() {
	g.state = InitialState()
}

// Launch serves the ball diagonally. It only acts while idle; a ball in
// play keeps its current direction and an ended rally needs a reset first.
// Returns true if the serve happened.
func (g *Game) Launch() bool {
	if g.state.Phase != PhaseIdle {
		return false
	}
	g.state.BallVelocity = LaunchVelocity
	g.state.Phase = PhaseActive
	return true
}

// End freezes the ball where it is. Returns true if a rally in progress was
// ended by this call.
func (g *Game) End() bool {
	wasActive := g.state.Phase == PhaseActive
	g.state.BallVelocity = core.Vec2{}
	g.state.Phase = PhaseEnded
	return wasActive
}
