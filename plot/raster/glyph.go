package raster

import (
	"vnaplot/fonts/font5x7"

	"tinygo.org/x/tinyfont"
)

// DrawRefPos draws the reference-position triangle pointing right with its
// tip at (x, y).
func (t *Tile) DrawRefPos(x, y int, c uint16) {
	if y < -3 || y > t.H+3 {
		return
	}
	for j := 0; j < 3; j++ {
		n := 6 - 2*j
		for i := 0; i < n; i++ {
			px := x + i - 5
			t.Set(px, y-j, c)
			if j != 0 {
				t.Set(px, y+j, c)
			}
		}
	}
}

// DrawMarker draws a marker: an 11 row triangle with its tip at (x, y) and
// the label rune ch knocked out of it.
func (t *Tile) DrawMarker(x, y int, c uint16, ch rune) {
	rows := font5x7.Rows(ch)
	for j := 10; j >= 0; j-- {
		half := j / 2
		for i := -half; i <= half; i++ {
			cc := c
			if j <= 9 && j > 2 && i >= -1 && i <= 3 {
				if rows[9-j]&(0x10>>(i+1)) != 0 {
					cc = 0
				}
			}
			t.Set(x+i, y-j, cc)
		}
	}
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font5x7.Font, s)
	return int(w)
}

// DrawString writes s with its top left corner at (x, y).
func (t *Tile) DrawString(x, y int, s string, c uint16) {
	if y <= -font5x7.Height || y >= t.H || x >= t.W {
		return
	}
	tinyfont.WriteLine(t, font5x7.Font, int16(x), int16(y+font5x7.Height-1), s, RGBA(c))
}

// DrawStringInvert writes s like DrawString, or, when invert is set, paints
// the glyph cells in c and leaves the glyph strokes untouched.
func (t *Tile) DrawStringInvert(x, y int, s string, c uint16, invert bool) {
	if !invert {
		t.DrawString(x, y, s, c)
		return
	}
	for _, r := range s {
		rows := font5x7.Rows(r)
		for row := 0; row < font5x7.Height; row++ {
			for col := 0; col < font5x7.Width; col++ {
				if rows[row]&(0x10>>col) == 0 {
					t.Set(x+col, y+row, c)
				}
			}
		}
		x += font5x7.Advance
	}
}
