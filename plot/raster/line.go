package raster

const (
	outLeft   = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(w, h, x, y int) uint8 {
	var code uint8
	if x < 0 {
		code |= outLeft
	} else if x > w {
		code |= outRight
	}
	if y < 0 {
		code |= outBottom
	} else if y > h {
		code |= outTop
	}
	return code
}

// DrawLine ORs c into every tile pixel on the integer line from (x0, y0) to
// (x1, y1), both ends included.
//
// Segments with both ends beyond the same edge are skipped. Anything else is
// stepped in full with each pixel bounds checked, so a segment crossing the
// tile costs its whole length.
func (t *Tile) DrawLine(x0, y0, x1, y1 int, c uint16) {
	if outcode(t.W, t.H, x0, y0)&outcode(t.W, t.H, x1, y1) != 0 {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	if dx >= dy {
		e := 2*dy - dx
		for x0 != x1 {
			t.Or(x0, y0, c)
			if e > 0 {
				y0 += sy
				e -= 2 * dx
			}
			e += 2 * dy
			x0++
		}
	} else {
		e := 2*dx - dy
		for y0 != y1 {
			t.Or(x0, y0, c)
			if e > 0 {
				x0++
				e -= 2 * dy
			}
			e += 2 * dx
			y0 += sy
		}
	}
	t.Or(x1, y1, c)
}
