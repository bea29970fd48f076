package markmap

// slope is a direction vector compared by cross product, never by ratio.
type slope struct{ dx, dy int }

func (a slope) le(b slope) bool { return a.dy*b.dx <= b.dy*a.dx }
func (a slope) ge(b slope) bool { return a.dy*b.dx >= b.dy*a.dx }

// MarkLine marks every tile the segment from pixel (x0, y0) to (x1, y1)
// crosses, including both end tiles. It walks one tile at a time; when both
// the column and the row still differ it picks the tile edge the segment
// leaves through by comparing its slope with the slopes toward the four
// corners of the current tile.
//
// The walk stops early once it leaves the grid. It returns false if a step
// made no progress, which only a geometry fault can cause; the tiles up to
// that point are marked.
func (m *Map) MarkLine(x0, y0, x1, y1 int) bool {
	m0, n0 := x0>>tileShift, y0>>tileShift
	m1, n1 := x1>>tileShift, y1>>tileShift
	m.Mark(m0, n0)

	dst := slope{x1 - x0, y1 - y0}
	srcX, srcY := x0*2, y0*2
	for m0 != m1 || n0 != n1 {
		switch {
		case m0 == m1:
			n0 += sign(n1 - n0)
		case n0 == n1:
			m0 += sign(m1 - m0)
		default:
			// Tiles span [x-0.5, x+size-0.5] in pixel space; doubled here
			// to stay in integers.
			xLower := (m0<<tileShift)*2 - 1
			xUpper := ((m0+1)<<tileShift)*2 - 1
			yLower := (n0<<tileShift)*2 - 1
			yUpper := ((n0+1)<<tileShift)*2 - 1
			mOrig, nOrig := m0, n0

			tl := slope{xLower - srcX, yLower - srcY}
			tr := slope{xUpper - srcX, yLower - srcY}
			br := slope{xUpper - srcX, yUpper - srcY}
			bl := slope{xLower - srcX, yUpper - srcY}

			if dst.ge(tl) && dst.le(tr) {
				n0-- // top
			}
			if dst.ge(tr) && dst.le(br) {
				m0++ // right
			}
			if dst.ge(br) && dst.le(bl) {
				n0++ // bottom
			}
			if dst.ge(bl) && dst.le(tl) {
				m0-- // left
			}
			if m0 == mOrig && n0 == nOrig {
				return false
			}
		}
		m.Mark(m0, n0)
		if m0 < 0 || m0 >= Cols || n0 < 0 || n0 >= Rows {
			break
		}
	}
	return true
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
