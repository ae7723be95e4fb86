package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Playfield dimensions in world units. The origin is the center of the table.
const (
	HalfWidth  = 5.0
	HalfHeight = 3.75
)

// Entity dimensions.
const (
	PaddleWidth  = 0.1
	PaddleHeight = 1.0
	BallWidth    = 0.1
	BallHeight   = 0.1
)

// Motion parameters.
const (
	BallSpeed      = 8.5  // Units per second along each velocity component
	PaddleSpeed    = 7.5  // Units per second
	MaxBounceAngle = 60.0 // Degrees from horizontal at the paddle's tip
)

// MaxFrameDelta caps the seconds a single frame may integrate.
const MaxFrameDelta = 0.1

// Initial entity positions, restored on reset.
var (
	BallStart    = core.Vec2{X: 0, Y: 0}
	Paddle1Start = core.Vec2{X: -4.3, Y: 0}
	Paddle2Start = core.Vec2{X: 4.3, Y: 0}
)

// LaunchVelocity is the serve direction. It is a raw diagonal, not a unit
// vector: the ball travels faster on the serve than after a flat return.
var LaunchVelocity = core.Vec2{X: 1, Y: 1}

// Invisible walls. Bounce walls span the full width with zero height;
// boundary walls span the full height with zero width.
var (
	TopWall    = core.NewBox(core.Vec2{X: 0, Y: HalfHeight}, 2*HalfWidth, 0)
	BottomWall = core.NewBox(core.Vec2{X: 0, Y: -HalfHeight}, 2*HalfWidth, 0)
	LeftWall   = core.NewBox(core.Vec2{X: -HalfWidth, Y: 0}, 0, 2*HalfHeight)
	RightWall  = core.NewBox(core.Vec2{X: HalfWidth, Y: 0}, 0, 2*HalfHeight)
)

// Field is the world rectangle the renderer projects onto the screen.
var Field = core.Viewport{Left: -HalfWidth, Right: HalfWidth, Bottom: -HalfHeight, Top: HalfHeight}

// PaddleBox returns the collision box of a paddle centered at pos.
func PaddleBox(pos core.Vec2) core.Box {
	return core.NewBox(pos, PaddleWidth, PaddleHeight)
}

// BallBox returns the collision box of the ball centered at pos.
func BallBox(pos core.Vec2) core.Box {
	return core.NewBox(pos, BallWidth, BallHeight)
}
