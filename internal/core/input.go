package core

// Direction is a paddle's vertical intent for one frame.
type Direction int

const (
	DirDown Direction = -1
	DirNone Direction = 0
	DirUp   Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Sign returns the direction as a multiplier in {-1, 0, 1}.
// Out-of-range values are folded onto their sign.
func (d Direction) Sign() float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// PlayerID identifies one side of the table.
type PlayerID int

const (
	Player1 PlayerID = 1 // Left paddle
	Player2 PlayerID = 2 // Right paddle
)

// Intent is the distilled input state for a single frame.
// The platform builds it from keyboard state; the simulation never sees keys.
type Intent struct {
	Paddle1 Direction
	Paddle2 Direction
	Launch  bool
	Reset   bool
	Quit    bool
}

// Paddle returns the vertical intent for the given player.
func (in Intent) Paddle(id PlayerID) Direction {
	if id == Player2 {
		return in.Paddle2
	}
	return in.Paddle1
}

// SetPaddle sets the vertical intent for the given player.
func (in *Intent) SetPaddle(id PlayerID, d Direction) {
	if id == Player2 {
		in.Paddle2 = d
		return
	}
	in.Paddle1 = d
}
