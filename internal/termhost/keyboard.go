package termhost

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/pong-duel/pong"
)

// Keyboard rebuilds "held" key state from a terminal's key events. Terminals
// only report presses and auto-repeats, never releases, so a key counts as
// held until hold has passed without another event for it.
type Keyboard struct {
	hold  time.Duration
	until map[pong.Key]time.Time
	fresh map[pong.Key]bool
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:  hold,
		until: make(map[pong.Key]time.Time),
		fresh: make(map[pong.Key]bool),
	}
}

// Press records a key event at the given time.
func (k *Keyboard) Press(key pong.Key, at time.Time) {
	if !k.held(key, at) {
		k.fresh[key] = true
	}
	k.until[key] = at.Add(k.hold)
}

func (k *Keyboard) held(key pong.Key, at time.Time) bool {
	until, ok := k.until[key]
	return ok && at.Before(until)
}

// Frame snapshots the keyboard for one tick. Keys pressed since the previous
// frame are reported as just pressed exactly once.
func (k *Keyboard) Frame(now time.Time) Frame {
	f := Frame{
		held: make(map[pong.Key]bool, len(k.until)),
		just: k.fresh,
	}
	for key := range k.until {
		if k.held(key, now) {
			f.held[key] = true
		} else {
			delete(k.until, key)
		}
	}
	for key := range k.fresh {
		f.held[key] = true
	}
	k.fresh = make(map[pong.Key]bool)
	return f
}

// Frame is the pong.Input for a single tick.
type Frame struct {
	held map[pong.Key]bool
	just map[pong.Key]bool
}

func (f Frame) Pressed(key pong.Key) bool     { return f.held[key] }
func (f Frame) JustPressed(key pong.Key) bool { return f.just[key] }

// keyFor maps a tcell key event to a game key.
func keyFor(k tcell.Key, r rune) (pong.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return pong.KeyUp, true
	case tcell.KeyDown:
		return pong.KeyDown, true
	case tcell.KeyEnter:
		return pong.KeyEnter, true
	case tcell.KeyRune:
		if r == ' ' {
			return pong.KeySpace, true
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return pong.Key(unicode.ToUpper(r)), true
		}
	}
	return "", false
}
