// Package raster draws into the small RGB565 buffer a single plot tile is
// composed in before it is sent to the display.
//
// All primitives take tile-local coordinates and drop pixels outside the
// tile, so callers may pass geometry that only partly overlaps it.
package raster

import "image/color"

// Tile is a w×h RGB565 pixel buffer, row-major.
type Tile struct {
	Pix []uint16
	W   int
	H   int
}

// New returns a tile able to hold up to maxW×maxH pixels.
func New(maxW, maxH int) *Tile {
	return &Tile{Pix: make([]uint16, maxW*maxH), W: maxW, H: maxH}
}

// Reset resizes the tile to w×h within its backing buffer. Pixel contents
// are left as they are.
func (t *Tile) Reset(w, h int) {
	if w*h > cap(t.Pix) {
		t.Pix = make([]uint16, w*h)
	}
	t.Pix = t.Pix[:w*h]
	t.W, t.H = w, h
}

func (t *Tile) in(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// At returns the pixel at (x, y), 0 outside the tile.
func (t *Tile) At(x, y int) uint16 {
	if !t.in(x, y) {
		return 0
	}
	return t.Pix[y*t.W+x]
}

// Set overwrites the pixel at (x, y).
func (t *Tile) Set(x, y int, c uint16) {
	if t.in(x, y) {
		t.Pix[y*t.W+x] = c
	}
}

// Or combines c into the pixel at (x, y).
func (t *Tile) Or(x, y int, c uint16) {
	if t.in(x, y) {
		t.Pix[y*t.W+x] |= c
	}
}

// Fill sets every pixel to c.
func (t *Tile) Fill(c uint16) {
	for i := range t.Pix {
		t.Pix[i] = c
	}
}

// FillRect sets the pixels of the w×h rectangle at (x, y) to c.
func (t *Tile) FillRect(x, y, w, h int, c uint16) {
	x0, y0 := clampInt(x, 0, t.W), clampInt(y, 0, t.H)
	x1, y1 := clampInt(x+w, 0, t.W), clampInt(y+h, 0, t.H)
	for py := y0; py < y1; py++ {
		row := t.Pix[py*t.W : py*t.W+t.W]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// Size implements drivers.Displayer.
func (t *Tile) Size() (x, y int16) { return int16(t.W), int16(t.H) }

// SetPixel implements drivers.Displayer.
func (t *Tile) SetPixel(x, y int16, c color.RGBA) {
	t.Set(int(x), int(y), RGB565(c.R, c.G, c.B))
}

// Display implements drivers.Displayer. The tile is transferred by its owner.
func (t *Tile) Display() error { return nil }

// RGB565 packs an 8-bit per channel color.
func RGB565(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGBA expands an RGB565 value. Packing the result with RGB565 yields p.
func RGBA(p uint16) color.RGBA {
	r := (p >> 11) & 0x1F
	g := (p >> 5) & 0x3F
	b := p & 0x1F
	return color.RGBA{
		R: uint8((r * 255) / 31),
		G: uint8((g * 255) / 63),
		B: uint8((b * 255) / 31),
		A: 0xff,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
