package pong

const (
	// PaddleSpeed is how far a paddle travels per second while a key is held.
	PaddleSpeed = 500
	// PaddleMargin is the distance between a paddle and its side of the window.
	PaddleMargin = 50
)

// PaddleSize is fixed for both players.
var PaddleSize = Vec2{X: 30, Y: 120}

// Side identifies a player.
type Side byte

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Paddle is one player's bat. Only Pos.Y changes during play; Pos.X follows
// the window width.
type Paddle struct {
	Side     Side
	Pos      Vec2
	Size     Vec2
	Controls Controls
}

// NewPaddle creates a paddle at the origin. Place it with Fit once the
// window size is known.
func NewPaddle(side Side, controls Controls) *Paddle {
	return &Paddle{
		Side:     side,
		Size:     PaddleSize,
		Controls: controls,
	}
}

func (p *Paddle) Box() Box {
	return Box{Center: p.Pos, Size: p.Size}
}

// Fit moves the paddle to its margin and back inside a window of the
// given size.
func (p *Paddle) Fit(width, height float32) {
	switch p.Side {
	case Left:
		p.Pos.X = PaddleMargin - width/2
	case Right:
		p.Pos.X = width/2 - PaddleMargin
	}
	p.clamp(height)
}

// clamp keeps the paddle inside the window. A window shorter than the
// paddle pins it to the centre line.
func (p *Paddle) clamp(height float32) {
	limit := max(height/2-p.Size.Y/2, 0)
	p.Pos.Y = Clamp(p.Pos.Y, -limit, limit)
}

// Control moves the paddle according to its held keys and keeps it inside a
// window of the given height.
func (p *Paddle) Control(in Input, dt, height float32) {
	var velocity float32
	switch {
	case in.Pressed(p.Controls.Up):
		velocity = PaddleSpeed
	case in.Pressed(p.Controls.Down):
		velocity = -PaddleSpeed
	}

	p.Pos.Y += velocity * dt
	p.clamp(height)
}
