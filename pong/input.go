package pong

import (
	"fmt"
	"strings"
)

// Key is a host independent key name such as "W", "Up" or "Space".
type Key string

const (
	KeyW     Key = "W"
	KeyS     Key = "S"
	KeyUp    Key = "Up"
	KeyDown  Key = "Down"
	KeySpace Key = "Space"
	KeyEnter Key = "Enter"
)

var namedKeys = []Key{KeyUp, KeyDown, KeySpace, KeyEnter}

// ParseKey accepts a single letter or digit, or one of Up, Down, Space and
// Enter, case-insensitively.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Key(c), nil
		}
	}
	for _, k := range namedKeys {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown key %q", s)
}

// Input is the keyboard as seen by the simulation during one tick.
type Input interface {
	// Pressed reports whether k is currently held.
	Pressed(k Key) bool
	// JustPressed reports whether k went down during this tick.
	JustPressed(k Key) bool
}

// Controls binds a paddle to its keys.
type Controls struct {
	Up   Key
	Down Key
}

// Bindings is the full key layout of a game.
type Bindings struct {
	Left  Controls
	Right Controls
	Start Key
}

// DefaultBindings puts the left paddle on W/S, the right paddle on the
// arrow keys and starts on Space.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  Controls{Up: KeyW, Down: KeyS},
		Right: Controls{Up: KeyUp, Down: KeyDown},
		Start: KeySpace,
	}
}
