package pong

// Collision names the side of box b that box a struck.
type Collision byte

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	}
	return "none"
}

// Box is an axis-aligned rectangle given by its centre and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Collide tests a against b and reports which side of b was hit.
//
// Each axis is classified on its own: a hit on the left or right needs a to
// straddle exactly one vertical edge of b, likewise for top and bottom. When
// both axes classify, the one with the shallower penetration wins, with ties
// going to the horizontal axis. A box that overlaps b without straddling any
// edge reports CollisionNone.
func Collide(a, b Box) Collision {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return CollisionNone
	}

	xHit, xDepth := CollisionNone, float32(0)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xHit, xDepth = CollisionLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xHit, xDepth = CollisionRight, aMin.X-bMax.X
	}

	yHit, yDepth := CollisionNone, float32(0)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		yHit, yDepth = CollisionBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		yHit, yDepth = CollisionTop, aMin.Y-bMax.Y
	}

	switch {
	case xHit != CollisionNone && yHit != CollisionNone:
		if abs(yDepth) < abs(xDepth) {
			return yHit
		}
		return xHit
	case xHit != CollisionNone:
		return xHit
	default:
		return yHit
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
