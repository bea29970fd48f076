// Package font5x7 is the 5x7 bitmap font used for plot labels.
//
// It implements tinyfont.Fonter. Glyphs advance 5 px with no spacing column,
// matching the label layout of the plot. Concurrent access is not safe due to
// internal glyph reuse.
package font5x7

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width   = 5
	Height  = 7
	Advance = 5

	firstRune  = 0x20
	asciiCount = 0x7f - firstRune
)

// symbolRunes are the non-ASCII glyphs, stored after the ASCII block.
var symbolRunes = [...]rune{'µ', 'Ω', '°', 'Δ'}

// Font is the shared font instance.
var Font tinyfont.Fonter = &font5x7{}

type font5x7 struct {
	g glyph
}

type glyph struct {
	r rune
}

// Rows returns the 7 bitmap rows of r, bit 4 being the leftmost column.
// Unknown runes map to '?'.
func Rows(r rune) []byte {
	idx := glyphIndex(r)
	return glyphData[idx*Height : idx*Height+Height]
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows := Rows(g.r)
	for row := 0; row < Height; row++ {
		b := rows[row]
		for col := 0; col < Width; col++ {
			if b&(0x10>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Height-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Advance,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func (f *font5x7) GetYAdvance() uint8 { return Height }

func (f *font5x7) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphIndex(r rune) int {
	if r >= firstRune && r < firstRune+asciiCount {
		return int(r - firstRune)
	}
	for i, s := range symbolRunes {
		if r == s {
			return asciiCount + i
		}
	}
	return int('?' - firstRune)
}
