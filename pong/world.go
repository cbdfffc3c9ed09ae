package pong

import "log/slog"

// World is the whole simulation. Hosts call Resize whenever the window
// changes and Tick once per frame; everything else is read-only for them.
type World struct {
	State GameState
	Pause PauseTimer

	Width  float32
	Height float32

	Paddles [2]*Paddle
	Ball    Ball
	Score   Scoreboard
	Display ScoreText

	// Intro is nil once the game has started.
	Intro *Intro

	// Events lists what happened during the last Tick.
	Events []Event

	startKey Key
	log      *slog.Logger
}

// NewWorld sets up both paddles, the ball and the intro for a window of the
// given size. A nil logger falls back to slog.Default.
func NewWorld(width, height float32, b Bindings, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	w := &World{
		State: PreStart,
		Paddles: [2]*Paddle{
			NewPaddle(Left, b.Left),
			NewPaddle(Right, b.Right),
		},
		Ball:     NewBall(),
		Display:  newScoreText(),
		Intro:    NewIntro(b),
		startKey: b.Start,
		log:      log,
	}
	w.Resize(width, height)
	return w
}

// Resize records the new window size and moves the paddles to their margins.
func (w *World) Resize(width, height float32) {
	w.Width, w.Height = width, height
	for _, p := range w.Paddles {
		p.Fit(width, height)
	}
}

// Started reports whether play has begun.
func (w *World) Started() bool {
	return w.State == Playing
}

// Tick runs one frame of dt seconds. The steps always run in the same order:
// pause countdown, start listener and intro, paddles, ball, scoreboard.
func (w *World) Tick(dt float32, in Input) {
	w.Events = w.Events[:0]

	w.Pause.Tick(dt)

	if w.State == PreStart {
		w.listenForStart(in)
	}
	if w.State == PreStart {
		w.Intro.Update(dt, w.log)
	}

	if w.State == Playing {
		for _, p := range w.Paddles {
			p.Control(in, dt, w.Height)
		}
	}

	if w.State == Playing && !w.Pause.Active() {
		w.Ball.Move(dt)
		w.collideBall()
	}

	if w.State == Playing {
		w.Display.refresh(w.Score)
	}
}

func (w *World) listenForStart(in Input) {
	if !in.JustPressed(w.startKey) {
		return
	}
	w.State = Playing
	w.Intro = nil
	w.emit(Event{Kind: EventStart})
	w.log.Info("game started")
}

// collideBall resolves paddle hits first, then checks the walls against the
// position the ball had before any paddle bounce. The wall checks are
// independent, so a corner can both score and bounce in one tick.
func (w *World) collideBall() {
	b := &w.Ball
	ball := b.Box()

	for _, p := range w.Paddles {
		if c := Collide(ball, p.Box()); c != CollisionNone {
			b.Deflect(c)
			w.emit(Event{Kind: EventPaddleHit, Side: p.Side})
		}
	}

	halfW, halfH := w.Width/2, w.Height/2
	half := b.Size.Half()
	pos := ball.Center

	if pos.X < -halfW+half.X {
		b.BounceX()
		w.goal(Right, ServeRight)
	}
	if pos.X > halfW-half.X {
		b.BounceX()
		w.goal(Left, ServeLeft)
	}
	if pos.Y < -halfH+half.Y {
		b.BounceY()
		w.emit(Event{Kind: EventWallBounce})
	}
	if pos.Y > halfH-half.Y {
		b.BounceY()
		w.emit(Event{Kind: EventWallBounce})
	}
}

func (w *World) goal(scorer Side, serve Vec2) {
	w.Score.Credit(scorer)
	w.Ball.Serve(serve)
	w.Pause.Set(GoalPause)
	w.emit(Event{Kind: EventGoal, Side: scorer})
	w.log.Info("goal", "scorer", scorer, "score", w.Score.String())
}

func (w *World) emit(e Event) {
	w.Events = append(w.Events, e)
}
