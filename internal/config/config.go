package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/jtestard/pong-duel/pong"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "pong.toml"

type Configuration struct {
	LogLevel slog.Level `toml:"log_level"`
	Window   Window     `toml:"window"`
	Controls Controls   `toml:"controls"`
	Audio    Audio      `toml:"audio"`
	Terminal Terminal   `toml:"terminal"`
}

type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// Controls holds key names as accepted by pong.ParseKey.
type Controls struct {
	LeftUp    string `toml:"left_up"`
	LeftDown  string `toml:"left_down"`
	RightUp   string `toml:"right_up"`
	RightDown string `toml:"right_down"`
	Start     string `toml:"start"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
	// Volume is a base-2 gain; 0 leaves the tones untouched, -1 halves them.
	Volume float64 `toml:"volume"`
}

type Terminal struct {
	// HoldMS is how long a key counts as held after its last key event.
	HoldMS int `toml:"hold_ms"`
}

func Default() Configuration {
	return Configuration{
		LogLevel: slog.LevelInfo,
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "Pong",
			Resizable: true,
		},
		Controls: Controls{
			LeftUp:    string(pong.KeyW),
			LeftDown:  string(pong.KeyS),
			RightUp:   string(pong.KeyUp),
			RightDown: string(pong.KeyDown),
			Start:     string(pong.KeySpace),
		},
		Audio:    Audio{Enabled: true},
		Terminal: Terminal{HoldMS: 150},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path
// means DefaultPath; a missing file is not an error.
func Load(path string) (Configuration, error) {
	c := Default()
	if path == "" {
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no config file, using defaults", "path", path)
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Warn("ignoring unknown config keys", "path", path, "keys", strings.Join(keys, ","))
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c Configuration) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if minHeight := int(pong.PaddleSize.Y); c.Window.Height < minHeight {
		return fmt.Errorf("window height %d is shorter than a paddle (%d)", c.Window.Height, minHeight)
	}
	if c.Terminal.HoldMS <= 0 {
		return fmt.Errorf("terminal hold_ms %d must be positive", c.Terminal.HoldMS)
	}
	_, err := c.Bindings()
	return err
}

// Bindings parses the configured key names.
func (c Configuration) Bindings() (pong.Bindings, error) {
	names := []struct {
		field string
		value string
	}{
		{"left_up", c.Controls.LeftUp},
		{"left_down", c.Controls.LeftDown},
		{"right_up", c.Controls.RightUp},
		{"right_down", c.Controls.RightDown},
		{"start", c.Controls.Start},
	}

	keys := make([]pong.Key, len(names))
	seen := make(map[pong.Key]string, len(names))
	for i, n := range names {
		k, err := pong.ParseKey(n.value)
		if err != nil {
			return pong.Bindings{}, fmt.Errorf("controls.%s: %w", n.field, err)
		}
		if other, ok := seen[k]; ok {
			return pong.Bindings{}, fmt.Errorf("controls.%s: key %s already bound to %s", n.field, k, other)
		}
		seen[k] = n.field
		keys[i] = k
	}

	return pong.Bindings{
		Left:  pong.Controls{Up: keys[0], Down: keys[1]},
		Right: pong.Controls{Up: keys[2], Down: keys[3]},
		Start: keys[4],
	}, nil
}

func (c Configuration) Hold() time.Duration {
	return time.Duration(c.Terminal.HoldMS) * time.Millisecond
}

// Logger returns a text logger at the configured level, tagged with a
// fresh session id so separate runs can be told apart in shared logs.
func (c Configuration) Logger(w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h).With("session", uuid.NewString())
}
