package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jtestard/pong-duel/pong"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want defaults", c)
	}

	b, err := c.Bindings()
	if err != nil {
		t.Fatalf("Bindings() error = %v", err)
	}
	if b != pong.DefaultBindings() {
		t.Errorf("Bindings() = %+v, want %+v", b, pong.DefaultBindings())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 1280
height = 720

[controls]
left_up = "q"
left_down = "a"
start = "enter"

[audio]
enabled = false
volume = -1.5

[terminal]
hold_ms = 90
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", c.LogLevel)
	}
	if c.Window.Width != 1280 || c.Window.Height != 720 {
		t.Errorf("Window = %+v", c.Window)
	}
	if c.Window.Title != "Pong" || !c.Window.Resizable {
		t.Errorf("unset window fields lost their defaults: %+v", c.Window)
	}
	if c.Audio.Enabled || c.Audio.Volume != -1.5 {
		t.Errorf("Audio = %+v", c.Audio)
	}
	if c.Hold() != 90*time.Millisecond {
		t.Errorf("Hold() = %v, want 90ms", c.Hold())
	}

	b, err := c.Bindings()
	if err != nil {
		t.Fatalf("Bindings() error = %v", err)
	}
	want := pong.Bindings{
		Left:  pong.Controls{Up: "Q", Down: "A"},
		Right: pong.Controls{Up: pong.KeyUp, Down: pong.KeyDown},
		Start: pong.KeyEnter,
	}
	if b != want {
		t.Errorf("Bindings() = %+v, want %+v", b, want)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[window\nwidth = 1", "reading config"},
		{"size", "[window]\nwidth = 0", "window size"},
		{"shorter than paddle", "[window]\nheight = 100", "shorter than a paddle"},
		{"unknown key", "[controls]\nleft_up = \"F13\"", "controls.left_up"},
		{"duplicate key", "[controls]\nright_up = \"W\"", "already bound"},
		{"hold", "[terminal]\nhold_ms = -5", "hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoggerTagsSession(t *testing.T) {
	var buf bytes.Buffer
	c := Default()
	c.Logger(&buf).Info("hello")
	c.Logger(&buf).Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "session=") {
		t.Errorf("log line has no session id: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
}
