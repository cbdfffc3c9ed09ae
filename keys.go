package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/jtestard/pong-duel/pong"
)

var ebitenKeys = map[pong.Key]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"0": ebiten.Key0, "1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3,
	"4": ebiten.Key4, "5": ebiten.Key5, "6": ebiten.Key6, "7": ebiten.Key7,
	"8": ebiten.Key8, "9": ebiten.Key9,

	pong.KeyUp:    ebiten.KeyUp,
	pong.KeyDown:  ebiten.KeyDown,
	pong.KeySpace: ebiten.KeySpace,
	pong.KeyEnter: ebiten.KeyEnter,
}

// checkBindings makes sure every bound key exists on an ebiten keyboard.
func checkBindings(b pong.Bindings) error {
	for _, k := range []pong.Key{b.Left.Up, b.Left.Down, b.Right.Up, b.Right.Down, b.Start} {
		if _, ok := ebitenKeys[k]; !ok {
			return fmt.Errorf("key %s has no ebiten equivalent", k)
		}
	}
	return nil
}
