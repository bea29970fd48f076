// Package search locates samples in the packed index arrays: runs of
// samples inside one tile for the renderer, and extrema or nearest points
// for marker placement.
package search

import "vnaplot/plot/index"

// Series is a read-only sequence of comparable values.
type Series interface {
	Len() int
	At(i int) int
}

// Ints adapts a slice to Series.
type Ints []int

func (s Ints) Len() int     { return len(s) }
func (s Ints) At(i int) int { return s[i] }

// Mode selects which extremum a search looks for.
type Mode uint8

const (
	Max Mode = iota
	Min
)

func (m Mode) String() string {
	if m == Min {
		return "min"
	}
	return "max"
}

// sign maps every comparison onto "greater is better".
func (m Mode) sign() int {
	if m == Min {
		return -1
	}
	return 1
}

// Extremum returns the index of the greatest (Max) or least (Min) value.
// Ties keep the earliest index; an empty series yields -1.
func Extremum(s Series, mode Mode) int {
	n := s.Len()
	if n == 0 {
		return -1
	}
	sg := mode.sign()
	found := 0
	best := s.At(0) * sg
	for i := 1; i < n; i++ {
		if v := s.At(i) * sg; v > best {
			best = v
			found = i
		}
	}
	return found
}

// LeftOf returns the next extremum to the left of from, or -1.
//
// The scan first walks down the slope away from the starting point until a
// value improves, then climbs that rise for as long as values do not get
// worse and returns the last point reached.
func LeftOf(s Series, mode Mode, from int) int {
	return directional(s, mode, from, -1)
}

// RightOf is LeftOf towards higher indices.
func RightOf(s Series, mode Mode, from int) int {
	return directional(s, mode, from, 1)
}

func directional(s Series, mode Mode, from, step int) int {
	n := s.Len()
	if from < 0 || from >= n {
		return -1
	}
	sg := mode.sign()
	value := s.At(from) * sg

	i := from + step
	for ; i >= 0 && i < n; i += step {
		v := s.At(i) * sg
		if v > value {
			break
		}
		value = v
	}

	found := -1
	for ; i >= 0 && i < n; i += step {
		v := s.At(i) * sg
		if v < value {
			break
		}
		found = i
		value = v
	}
	return found
}

// RangeByColumn returns the run [i0, i1] of samples whose tile column is the
// one holding pixel-x x. idx must be ordered by tile column.
func RangeByColumn(idx []index.Packed, x int) (i0, i1 int, ok bool) {
	key := index.ColumnKey(x >> index.TileShift)
	colKey := func(p index.Packed) uint32 { return uint32(p) & index.ColumnKey(0x1f) }
	return rangeBy(idx, key, colKey)
}

// RangeByTile returns the run [i0, i1] of samples inside the tile holding
// pixel (x, y). idx must be ordered by tile column, then row.
func RangeByTile(idx []index.Packed, x, y int) (i0, i1 int, ok bool) {
	return rangeBy(idx, index.TileKeyOf(x, y), index.Packed.TileKey)
}

func rangeBy(idx []index.Packed, key uint32, keyOf func(index.Packed) uint32) (int, int, bool) {
	head, tail := 0, len(idx)
	i := -1
	for head < tail {
		mid := (head + tail) / 2
		k := keyOf(idx[mid])
		if key < k {
			tail = mid
		} else if key > k {
			head = mid + 1
		} else {
			i = mid
			break
		}
	}
	if i < 0 {
		return 0, 0, false
	}
	i0, i1 := i, i
	for i0 > 0 && keyOf(idx[i0-1]) == key {
		i0--
	}
	for i1 < len(idx)-1 && keyOf(idx[i1+1]) == key {
		i1++
	}
	return i0, i1, true
}

// NearestRadius is how far, on either axis, a point may lie from the probe
// and still be picked.
const NearestRadius = 20

// Nearest returns the sample closest to pixel (x, y), or -1 if none lies
// within NearestRadius. Sample positions are shifted by (offX, offY) first.
func Nearest(idx []index.Packed, x, y, offX, offY int) int {
	found := -1
	best := 1 << 30
	for i, p := range idx {
		dx := abs(x - p.X() - offX)
		dy := abs(y - p.Y() - offY)
		if dx > NearestRadius || dy > NearestRadius {
			continue
		}
		if d := dx*dx + dy*dy; d < best {
			best = d
			found = i
		}
	}
	return found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
