package pong

import "fmt"

// Scoreboard counts goals per side. The counters wrap past 255.
type Scoreboard struct {
	Left  uint8
	Right uint8
}

// Credit awards a goal to side.
func (s *Scoreboard) Credit(side Side) {
	if side == Left {
		s.Left++
	} else {
		s.Right++
	}
}

// String formats the score as "LEFT RIGHT".
func (s Scoreboard) String() string {
	return fmt.Sprintf("%d %d", s.Left, s.Right)
}

// ScoreText is the on-screen scoreboard.
type ScoreText struct {
	Text  string
	Font  string
	Size  float64
	Top   float32
	Alpha float32
}

func newScoreText() ScoreText {
	return ScoreText{
		Text: Scoreboard{}.String(),
		Font: FontScore,
		Size: 90,
		Top:  18,
	}
}

func (t *ScoreText) refresh(s Scoreboard) {
	t.Text = s.String()
	t.Alpha = 1
}
