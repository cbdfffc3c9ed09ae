// Package termhost runs the game inside a terminal using tcell.
package termhost

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/pong-duel/pong"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Sink receives the events of every tick, e.g. to play sounds.
type Sink interface {
	Play(events []pong.Event)
}

type Host struct {
	screen tcell.Screen
	world  *pong.World
	keys   *Keyboard
	sink   Sink
	log    *slog.Logger
}

// New initialises the terminal and sizes a world to it.
func New(screen tcell.Screen, b pong.Bindings, hold time.Duration, sink Sink, log *slog.Logger) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	w, h := WorldSize(screen.Size())
	return &Host{
		screen: screen,
		world:  pong.NewWorld(w, h, b, log),
		keys:   NewKeyboard(hold),
		sink:   sink,
		log:    log,
	}, nil
}

// Run ticks the game until Esc or Ctrl-C.
func (h *Host) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !h.handle(ev) {
				return
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			h.world.Tick(dt, h.keys.Frame(now))
			if len(h.world.Events) > 0 {
				h.sink.Play(h.world.Events)
			}
			Draw(h.screen, h.world)
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := keyFor(ev.Key(), ev.Rune()); ok {
			h.keys.Press(k, ev.When())
		}

	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := h.screen.Size()
		w, ht := WorldSize(cols, rows)
		h.world.Resize(w, ht)
		h.log.Debug("terminal resized", "cols", cols, "rows", rows)
	}
	return true
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}
