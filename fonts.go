package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/jtestard/pong-duel/pong"
	"golang.org/x/image/font"
)

const fontDPI = 72

// fontFiles maps the font names the game asks for to embedded TTF data.
var fontFiles = map[string][]byte{
	pong.FontBody:  fonts.MPlus1pRegular_ttf,
	pong.FontScore: fonts.ArcadeN_ttf,
}

type faceKey struct {
	name string
	size float64
}

// fontBook parses fonts once and caches one face per name and size.
type fontBook struct {
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

func loadFonts() (*fontBook, error) {
	b := &fontBook{
		fonts: make(map[string]*truetype.Font, len(fontFiles)),
		faces: make(map[faceKey]font.Face),
	}
	for name, data := range fontFiles {
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", name, err)
		}
		b.fonts[name] = f
	}
	return b, nil
}

func (b *fontBook) face(name string, size float64) (font.Face, error) {
	key := faceKey{name, size}
	if f, ok := b.faces[key]; ok {
		return f, nil
	}
	tt, ok := b.fonts[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %s", name)
	}
	f := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	b.faces[key] = f
	return f, nil
}
