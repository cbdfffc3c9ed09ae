// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/jtestard/pong-duel/pong"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq   float64
	length time.Duration
}

var tones = map[pong.EventKind]tone{
	pong.EventStart:      {freq: 660, length: 80 * time.Millisecond},
	pong.EventPaddleHit:  {freq: 880, length: 50 * time.Millisecond},
	pong.EventWallBounce: {freq: 440, length: 40 * time.Millisecond},
	pong.EventGoal:       {freq: 220, length: 250 * time.Millisecond},
}

// Player turns events into beeps. A Player whose Init failed stays silent,
// the game runs without sound.
type Player struct {
	mu     sync.Mutex
	volume float64
	ready  bool
	log    *slog.Logger
}

func NewPlayer(volume float64, log *slog.Logger) *Player {
	return &Player{volume: volume, log: log}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("opening speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Play queues the cue for each event.
func (p *Player) Play(events []pong.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	for _, e := range events {
		s, err := p.cue(e.Kind)
		if err != nil {
			p.log.Warn("skipping sound", "event", e.Kind, "err", err)
			continue
		}
		speaker.Play(s)
	}
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

func (p *Player) cue(kind pong.EventKind) (beep.Streamer, error) {
	t, ok := tones[kind]
	if !ok {
		return nil, fmt.Errorf("no tone for %s", kind)
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.length), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}
