package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PaddleBounce returns the ball direction after striking a paddle.
//
// The vertical offset of the strike from the paddle center is normalized to
// [-1, 1] and mapped onto [-maxAngleDeg, maxAngleDeg]. The horizontal
// component always turns away from the paddle: a ball moving right comes
// back left and anything else goes right.
func PaddleBounce(ball, paddle core.Vec2, paddleHeight float64, v core.Vec2, maxAngleDeg float64) core.Vec2 {
	rad := BounceAngle(ball, paddle, paddleHeight, maxAngleDeg) * math.Pi / 180
	out := core.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	if v.X > 0 {
		out.X = -out.X
	}
	return out
}

// WallBounce reflects a direction off a horizontal wall.
func WallBounce(v core.Vec2) core.Vec2 {
	return core.Vec2{X: v.X, Y: -v.Y}
}

// BounceAngle returns the signed post-bounce angle in degrees that a strike
// at ball against paddle would produce.
func BounceAngle(ball, paddle core.Vec2, paddleHeight, maxAngleDeg float64) float64 {
	offset := core.ClampF((ball.Y-paddle.Y)/(paddleHeight/2), -1, 1)
	return offset * maxAngleDeg
}
