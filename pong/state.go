package pong

// GoalPause is how long play is suspended after a goal.
const GoalPause = 1.0

// PauseTimer suspends ball movement while it runs down.
type PauseTimer struct {
	Remaining float32
}

// Tick counts the timer down by dt, stopping at zero.
func (p *PauseTimer) Tick(dt float32) {
	if p.Remaining > 0 {
		p.Remaining = max(p.Remaining-dt, 0)
	}
}

func (p *PauseTimer) Set(seconds float32) {
	p.Remaining = seconds
}

func (p PauseTimer) Active() bool {
	return p.Remaining > 0
}

// EventKind classifies what happened during a tick.
type EventKind byte

const (
	EventStart EventKind = iota
	EventPaddleHit
	EventWallBounce
	EventGoal
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventGoal:
		return "goal"
	}
	return "unknown"
}

// Event is something a host may want to react to, e.g. with a sound. Side
// is the paddle hit for EventPaddleHit and the scorer for EventGoal.
type Event struct {
	Kind EventKind
	Side Side
}
