// Package pong implements the two-player paddle-and-ball simulation.
// Both paddles are human controlled; there is no score, a rally simply ends
// when the ball reaches the left or right edge and waits for a reset.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// SoundSink receives fire-and-forget bounce notifications.
// Implementations must not block the caller.
type SoundSink interface {
	PlayBounce()
}

// SoundFunc adapts a plain function to SoundSink.
type SoundFunc func()

// PlayBounce calls f.
func (f SoundFunc) PlayBounce() {
	f()
}

type silentSink struct{}

func (silentSink) PlayBounce() {}

// players in resolution order.
var players = [...]core.PlayerID{core.Player1, core.Player2}

// StepResult reports what happened during one frame.
type StepResult struct {
	Phase       Phase
	PaddleHits  int  // Paddle collisions resolved this frame (0-2)
	WallBounces int  // Top/bottom wall collisions resolved this frame (0-1)
	RallyEnded  bool // The ball reached a boundary wall while in play
	Launched    bool // A serve was accepted
	WasReset    bool // Entities were recentered before the frame ran
}

// Bounces returns how many sound triggers the frame fired.
func (r StepResult) Bounces() int {
	return r.PaddleHits + r.WallBounces
}

// Game owns one table and advances it frame by frame.
// It is not safe for concurrent use; the host loop drives it from a single
// goroutine.
type Game struct {
	state State
	sound SoundSink
	frame uint64
}

// New creates a game in the idle state. A nil sink silences bounces.
func New(sound SoundSink) *Game {
	if sound == nil {
		sound = silentSink{}
	}
	g := &Game{sound: sound}
	g.Start()
	return g
}

// State returns a copy of the current entity state.
func (g *Game) State() State {
	return g.state
}

// Phase returns the current rally phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Frame returns the number of frames stepped since the game started.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Step advances the simulation by one frame of dt seconds.
//
// Controls in the intent are applied first (reset, then launch). The frame
// then runs in a fixed order that decides every same-frame tie: paddles move,
// boundary walls end the rally, paddle 1 then paddle 2 deflect the ball, the
// top and bottom walls reflect it, and finally the ball moves once using the
// velocity left after all of that.
func (g *Game) Step(in core.Intent, dt float64) StepResult {
	var res StepResult

	if in.Reset {
		g.Reset()
		res.WasReset = true
	}
	if in.Launch {
		res.Launched = g.Launch()
	}
	if dt < 0 {
		dt = 0
	}

	g.frame++
	s := &g.state

	// Paddles are blocked using their position before the move, so a
	// paddle can come to rest slightly past the wall line but never
	// keeps going.
	for _, id := range players {
		g.movePaddle(id, in.Paddle(id), dt)
	}

	ball := BallBox(s.Ball)

	if ball.Overlaps(LeftWall) || ball.Overlaps(RightWall) {
		res.RallyEnded = g.End()
	}

	for _, id := range players {
		paddle := s.Paddle(id)
		if !ball.Overlaps(PaddleBox(paddle)) {
			continue
		}
		g.sound.PlayBounce()
		s.BallVelocity = PaddleBounce(s.Ball, paddle, PaddleHeight, s.BallVelocity, MaxBounceAngle)
		res.PaddleHits++
	}

	if ball.Overlaps(TopWall) || ball.Overlaps(BottomWall) {
		g.sound.PlayBounce()
		s.BallVelocity = WallBounce(s.BallVelocity)
		res.WallBounces++
	}

	s.Ball = s.Ball.Add(s.BallVelocity.Scale(BallSpeed * dt))

	// Deflecting a resting ball puts it back in play.
	if !s.BallVelocity.IsZero() {
		s.Phase = PhaseActive
	}

	res.Phase = s.Phase
	return res
}

// movePaddle applies one frame of vertical intent to a paddle unless it is
// already touching the wall it is heading into.
func (g *Game) movePaddle(id core.PlayerID, dir core.Direction, dt float64) {
	sign := dir.Sign()
	if sign == 0 {
		return
	}

	pos := g.state.paddleRef(id)
	box := PaddleBox(*pos)
	if sign > 0 && box.Overlaps(TopWall) {
		return
	}
	if sign < 0 && box.Overlaps(BottomWall) {
		return
	}
	// A long frame must not carry the paddle through the wall.
	pos.Y = core.ClampF(pos.Y+sign*PaddleSpeed*dt, -HalfHeight, HalfHeight)
}
