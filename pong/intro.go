package pong

import (
	"fmt"
	"log/slog"
	"strings"
)

// Font names requested from the host's font loader.
const (
	FontBody  = "FiraSans-Regular"
	FontScore = "PressStart2P-Regular"
)

const (
	// introRise is how far below its resting offset a text starts.
	introRise = 13
	// introRiseRate stretches the slide relative to the fade, so the slide
	// stops short of its resting offset when the fade completes.
	introRiseRate = 0.8

	fadeOutStep  = 0.05
	fadeOutDrift = 0.6
)

// TextAnimation drives the fade-in and slide-in of one intro text.
type TextAnimation struct {
	StartTime float32
	Duration  float32
	Elapsed   float32
	EndPos    float32

	settled bool
}

// Finished reports whether the animate-in window has closed.
func (a TextAnimation) Finished() bool {
	return a.Elapsed-a.StartTime > a.Duration
}

// IntroText is a pre-start caption. Top is an offset in pixels from the top
// of the window.
type IntroText struct {
	Content string
	Font    string
	Size    float64
	Top     float32
	Alpha   float32
	In      TextAnimation

	// FadeOut enables fading the text away FadeOutAfter seconds in.
	FadeOut      bool
	FadeOutAfter float32
}

func (t *IntroText) animateIn(dt float32, log *slog.Logger) {
	a := &t.In
	a.Elapsed += dt

	into := a.Elapsed - a.StartTime
	switch {
	case a.Elapsed < a.StartTime:
		log.Debug("waiting to animate text", "text", t.Content, "remaining", a.StartTime-a.Elapsed)
	case into <= a.Duration:
		log.Debug("animating text in", "text", t.Content, "progress", into/a.Duration)
		t.pose(into)
	case !a.settled:
		t.pose(a.Duration)
		a.settled = true
	}
}

func (t *IntroText) pose(into float32) {
	a := t.In
	t.Alpha = Lerp(0, 1, into, a.Duration)
	t.Top = Lerp(a.EndPos+introRise, a.EndPos, into, a.Duration/introRiseRate)
}

// animateOut only takes over once the animate-in window has closed, so a
// text never has two owners of its alpha within one phase.
func (t *IntroText) animateOut(dt float32, log *slog.Logger) {
	if !t.FadeOut {
		return
	}
	if t.FadeOutAfter > 0 {
		t.FadeOutAfter -= dt
		return
	}
	t.FadeOutAfter = 0
	if !t.In.Finished() {
		return
	}
	if t.Alpha > 0 {
		log.Debug("fading text out", "text", t.Content, "alpha", t.Alpha)
	}
	t.Alpha = max(0, t.Alpha-fadeOutStep)
	t.Top = max(0, t.Top+fadeOutDrift)
}

// Intro is the set of pre-start captions.
type Intro struct {
	Texts []*IntroText
}

// NewIntro builds the instructions and start prompt for the given key layout.
func NewIntro(b Bindings) *Intro {
	return &Intro{
		Texts: []*IntroText{
			{
				Content: fmt.Sprintf("%s/%s and %s/%s to control paddles",
					b.Left.Up, b.Left.Down, b.Right.Up, b.Right.Down),
				Font:         FontBody,
				Size:         50,
				Top:          10,
				In:           TextAnimation{StartTime: 0.5, Duration: 0.5, EndPos: 10},
				FadeOut:      true,
				FadeOutAfter: 2.5,
			},
			{
				Content: fmt.Sprintf("Press %s to start", strings.ToLower(string(b.Start))),
				Font:    FontBody,
				Size:    70,
				Top:     5,
				In:      TextAnimation{StartTime: 3.5, Duration: 0.5, EndPos: 5},
			},
		},
	}
}

// Update advances every text by dt seconds.
func (in *Intro) Update(dt float32, log *slog.Logger) {
	for _, t := range in.Texts {
		t.animateIn(dt, log)
		t.animateOut(dt, log)
	}
}
