// Package index packs the pixel position and sweep order of each trace sample
// into one uint32 so the plot engine can both redraw from it and binary
// search it by tile.
//
// Layout, MSB first:
//
//	31..27  TileX0  pixel-x bits 9..5
//	26..22  TileY0  pixel-y bits 9..5
//	21..10  Order   sweep index
//	 9..5   X       pixel-x bits 4..0
//	 4..0   Y       pixel-y bits 4..0
//
// The tile fields sit above everything else, so comparing two packed values
// as plain integers orders them by tile column first and tile row second.
package index

import (
	"math"

	"vnaplot/plot/trace"
)

const (
	TileShift = 5
	TileSize  = 1 << TileShift
	tileMask  = TileSize - 1

	// SweepPointsMax bounds the per-trace table.
	SweepPointsMax = 201

	orderBits = 12
	OrderMax  = 1<<orderBits - 1

	xShift     = 5
	orderShift = 10
	tileYShift = 22
	tileXShift = 27

	keyMask = 0xffc00000
)

// Packed is one encoded sample position.
type Packed uint32

// Fields is the decoded form of a Packed value.
type Fields struct {
	X, Y  int
	Order int
}

// Pack encodes pixel coordinates in [0, 1024) and an order in [0, 4096).
// Out-of-range bits are dropped.
func Pack(x, y, order int) Packed {
	return Packed(uint32(x&0x3e0)<<(tileXShift-xShift) |
		uint32(y&0x3e0)<<(tileYShift-TileShift) |
		uint32(order&OrderMax)<<orderShift |
		uint32(x&tileMask)<<xShift |
		uint32(y&tileMask))
}

// PackFields is Pack over a Fields value.
func PackFields(f Fields) Packed { return Pack(f.X, f.Y, f.Order) }

// Unpack decodes all fields.
func (p Packed) Unpack() Fields {
	return Fields{X: p.X(), Y: p.Y(), Order: p.Order()}
}

// X returns the full pixel-x.
func (p Packed) X() int { return p.TileX0() | int(p>>xShift)&tileMask }

// Y returns the full pixel-y.
func (p Packed) Y() int { return p.TileY0() | int(p)&tileMask }

// Order returns the sweep index the value was computed from.
func (p Packed) Order() int { return int(p>>orderShift) & OrderMax }

// TileX0 returns the pixel-x of the left edge of the containing tile.
func (p Packed) TileX0() int { return int(p>>tileXShift) << TileShift }

// TileY0 returns the pixel-y of the top edge of the containing tile.
func (p Packed) TileY0() int { return int(p>>tileYShift) & 0x1f << TileShift }

// Col returns the tile column.
func (p Packed) Col() int { return int(p >> tileXShift) }

// Row returns the tile row.
func (p Packed) Row() int { return int(p>>tileYShift) & 0x1f }

// TileKey keeps only the tile fields, in place.
func (p Packed) TileKey() uint32 { return uint32(p) & keyMask }

// ColumnKey returns the comparable key of tile column col.
func ColumnKey(col int) uint32 { return uint32(col&0x1f) << tileXShift }

// TileKeyOf returns the comparable key of the tile holding pixel (x, y).
func TileKeyOf(x, y int) uint32 { return Pack(x, y, 0).TileKey() }

// Table holds the packed samples of every trace.
type Table [trace.TracesMax][SweepPointsMax]Packed

// Layout describes the plot area the indices are computed for.
type Layout struct {
	Width       int
	Height      int
	GridY       int
	CellOffsetX int
}

// Radius is the chart radius used by Smith and polar traces.
func (l Layout) Radius() int { return (l.Height - 1) / 2 }

// ColumnX returns the pixel-x of sample i in a sweep of points samples.
func (l Layout) ColumnX(i, points int) int {
	if points < 2 {
		return 0
	}
	return i * (l.Width - 1) / (points - 1)
}

// Compute returns the packed position of sample i of t at pixel-x x. x is
// relative to the plot area and gets the left cell offset added.
func (l Layout) Compute(x int, t *trace.Trace, data []complex64, i int, freq trace.FrequencyFunc) Packed {
	if t.Type.IsChart() {
		cx, cy := l.chart(t, data, i)
		return Pack(cx+l.CellOffsetX, cy, i)
	}
	v := t.Position(data, i, freq)
	switch {
	case math.IsNaN(float64(v)) || v < 0:
		v = 0
	case v > 8:
		v = 8
	}
	return Pack(x+l.CellOffsetX, int(v*float32(l.GridY)), i)
}

func (l Layout) chart(t *trace.Trace, data []complex64, i int) (int, int) {
	if i < 0 || i >= len(data) {
		return l.Width / 2, l.Height / 2
	}
	r := float32(l.Radius())
	scale := float32(1)
	if t.Scale != 0 {
		scale = 1 / t.Scale
	}
	v := data[i]
	x := clampRadius(real(v)*r*scale, r)
	y := clampRadius(imag(v)*r*scale, r)
	return l.Width/2 + int(x), l.Height/2 - int(y)
}

func clampRadius(v, r float32) float32 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v > r:
		return r
	case v < -r:
		return -r
	}
	return v
}
