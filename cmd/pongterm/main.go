// pongterm plays two-player pong in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/pong-duel/internal/config"
	"github.com/jtestard/pong-duel/internal/sound"
	"github.com/jtestard/pong-duel/internal/termhost"
)

func main() {
	os.Exit(run())
}

func run() int {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// The terminal belongs to the game, so logs go to a file.
	logOut, err := os.OpenFile("pongterm.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening log file:", err)
		return 1
	}
	defer logOut.Close()
	log := cfg.Logger(logOut)
	slog.SetDefault(log)

	bindings, err := cfg.Bindings()
	if err != nil {
		log.Error("bad key bindings", "err", err)
		return 1
	}

	player := sound.NewPlayer(cfg.Audio.Volume, log)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Warn("audio unavailable, playing silently", "err", err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error("creating screen", "err", err)
		return 1
	}
	host, err := termhost.New(screen, bindings, cfg.Hold(), player, log)
	if err != nil {
		log.Error("initialising terminal", "err", err)
		return 1
	}
	defer host.Close()

	log.Info("starting the game")
	host.Run()
	return 0
}
