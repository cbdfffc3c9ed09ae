package pong

// BallSpeed is the ball's constant speed in units per second.
const BallSpeed = 250

var (
	// BallSize is fixed.
	BallSize = Vec2{X: 30, Y: 30}

	// ServeRight is the direction after the left player concedes.
	ServeRight = Vec2{X: 0.5, Y: 0.2}.Normalize()
	// ServeLeft is the direction after the right player concedes.
	ServeLeft = Vec2{X: -0.5, Y: -0.2}.Normalize()
)

// Ball holds its direction of travel as a unit vector. Bounces flip one
// component, so the length never drifts.
type Ball struct {
	Pos  Vec2
	Dir  Vec2
	Size Vec2
}

func NewBall() Ball {
	return Ball{Dir: ServeRight, Size: BallSize}
}

func (b *Ball) Box() Box {
	return Box{Center: b.Pos, Size: b.Size}
}

// Move integrates the position over dt seconds.
func (b *Ball) Move(dt float32) {
	b.Pos = b.Pos.Add(b.Dir.Scale(dt * BallSpeed))
}

// Serve puts the ball back in the centre heading along dir.
func (b *Ball) Serve(dir Vec2) {
	b.Pos = Vec2{}
	b.Dir = dir.Normalize()
}

func (b *Ball) BounceX() { b.Dir.X = -b.Dir.X }
func (b *Ball) BounceY() { b.Dir.Y = -b.Dir.Y }

// Deflect applies the bounce for a paddle hit on the given side.
func (b *Ball) Deflect(c Collision) {
	switch c {
	case CollisionLeft, CollisionRight:
		b.BounceX()
	case CollisionTop, CollisionBottom:
		b.BounceY()
	}
}
