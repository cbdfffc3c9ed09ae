package pong

import (
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a set of coordinates in the 2-D play field. The origin is the
// centre of the window and Y grows upwards.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Lerp interpolates from start to end by elapsed/duration. A zero elapsed
// time yields start exactly, whatever the duration.
func Lerp[T constraints.Float](start, end, elapsed, duration T) T {
	if elapsed == 0 {
		return start
	}
	return start + (end-start)*(elapsed/duration)
}

// GameState is an enum that represents all possible game states
type GameState byte

const (
	PreStart GameState = iota
	Playing
)

func (s GameState) String() string {
	switch s {
	case PreStart:
		return "prestart"
	case Playing:
		return "playing"
	}
	return "unknown"
}

var (
	BgColor     = color.Black
	PaddleColor = color.RGBA{255, 255, 255, 255}
	BallColor   = color.RGBA{230, 230, 230, 255}
	TextColor   = color.RGBA{255, 255, 255, 255}
)
