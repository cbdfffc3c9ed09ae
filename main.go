package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/jtestard/pong-duel/internal/config"
	"github.com/jtestard/pong-duel/internal/sound"
	"github.com/jtestard/pong-duel/pong"
	"golang.org/x/image/font"
)

// Game adapts the simulation to ebiten's run loop.
type Game struct {
	world  *pong.World
	fonts  *fontBook
	sound  *sound.Player
	log    *slog.Logger
	debug  bool
	width  int
	height int
}

// NewGame creates an initializes a new game
func NewGame(cfg config.Configuration, log *slog.Logger) (*Game, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	if err := checkBindings(bindings); err != nil {
		return nil, err
	}
	fb, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		fonts:  fb,
		sound:  sound.NewPlayer(cfg.Audio.Volume, log),
		log:    log,
		debug:  cfg.LogLevel <= slog.LevelDebug,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	g.world = pong.NewWorld(float32(g.width), float32(g.height), bindings, log)

	if cfg.Audio.Enabled {
		if err := g.sound.Init(); err != nil {
			log.Warn("audio unavailable, playing silently", "err", err)
		}
	}
	return g, nil
}

// Pressed implements pong.Input.
func (g *Game) Pressed(k pong.Key) bool {
	return ebiten.IsKeyPressed(ebitenKeys[k])
}

// JustPressed implements pong.Input.
func (g *Game) JustPressed(k pong.Key) bool {
	return inpututil.IsKeyJustPressed(ebitenKeys[k])
}

// Update runs one tick of the game and draws it.
func (g *Game) Update(screen *ebiten.Image) error {
	dt := 1 / float32(ebiten.MaxTPS())
	g.world.Tick(dt, g)
	g.sound.Play(g.world.Events)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.Draw(screen)
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) error {
	screen.Fill(pong.BgColor)

	w := g.world
	for _, p := range w.Paddles {
		g.drawBox(screen, p.Box(), pong.PaddleColor)
	}
	g.drawBox(screen, w.Ball.Box(), pong.BallColor)

	if d := w.Display; d.Alpha > 0 {
		g.drawText(screen, d.Text, d.Font, d.Size, float64(d.Top)+d.Size, d.Alpha)
	}
	if w.Intro != nil {
		for _, t := range w.Intro.Texts {
			if t.Alpha > 0 {
				g.drawText(screen, t.Content, t.Font, t.Size, float64(g.height)*0.7+float64(t.Top), t.Alpha)
			}
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
	}
	return nil
}

// drawBox converts a world box (origin centred, Y up) to screen pixels.
func (g *Game) drawBox(screen *ebiten.Image, b pong.Box, clr color.Color) {
	lo, hi := b.Min(), b.Max()
	x := float64(g.width)/2 + float64(lo.X)
	y := float64(g.height)/2 - float64(hi.Y)
	ebitenutil.DrawRect(screen, x, y, float64(b.Size.X), float64(b.Size.Y), clr)
}

// drawText centres s horizontally with its baseline at y.
func (g *Game) drawText(screen *ebiten.Image, s, name string, size, y float64, alpha float32) {
	face, err := g.fonts.face(name, size)
	if err != nil {
		g.log.Error("drawing text", "text", s, "err", err)
		return
	}
	width := font.MeasureString(face, s).Ceil()
	clr := color.NRGBA{
		R: pong.TextColor.R,
		G: pong.TextColor.G,
		B: pong.TextColor.B,
		A: uint8(pong.Clamp(alpha, 0, 1) * 255),
	}
	text.Draw(screen, s, face, (g.width-width)/2, int(y), clr)
}

// Layout follows the window size so one world unit is one pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.world.Resize(float32(outsideWidth), float32(outsideHeight))
		g.log.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

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
	log := cfg.Logger(os.Stderr)
	slog.SetDefault(log)

	log.Info("bootstrapping new game")
	g, err := NewGame(cfg, log)
	if err != nil {
		log.Error("setting up game", "err", err)
		return 1
	}
	defer g.sound.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(cfg.Window.Resizable)

	log.Info("starting the game")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop stopped", "err", err)
		return 1
	}
	return 0
}
