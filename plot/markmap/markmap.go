// Package markmap tracks which 32×32 tiles of the plot need redrawing.
//
// Marks go into the current page. A render pass checks both pages, so a
// mark made while a pass is running survives the page swap at its end and
// the tile is drawn once more by the next pass.
package markmap

const (
	Cols = 16
	Rows = 8

	tileShift = 5
	tileSize  = 1 << tileShift
)

// Map is a double-buffered bitset of dirty tiles, one uint16 per row.
type Map struct {
	pages [2][Rows]uint16
	cur   int
}

// Mark sets tile (col, row) in the current page. Tiles outside the grid are
// ignored.
func (m *Map) Mark(col, row int) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	m.pages[m.cur][row] |= 1 << col
}

// MarkUpperArea marks the whole first row, where the info block is drawn.
func (m *Map) MarkUpperArea() {
	m.pages[m.cur][0] = 0xffff
}

// ForceAll marks every tile.
func (m *Map) ForceAll() {
	for i := range m.pages[m.cur] {
		m.pages[m.cur][i] = 0xffff
	}
}

// IsMarked reports whether tile (col, row) is marked in either page.
func (m *Map) IsMarked(col, row int) bool {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return false
	}
	bit := uint16(1) << col
	return m.pages[0][row]&bit != 0 || m.pages[1][row]&bit != 0
}

// Swap makes the other page current.
func (m *Map) Swap() { m.cur = 1 - m.cur }

// ClearCurrent clears the current page.
func (m *Map) ClearCurrent() { m.pages[m.cur] = [Rows]uint16{} }

// Flush ends a completed pass: the marks made during it are kept in the
// previous page and the new current page starts empty.
func (m *Map) Flush() {
	m.Swap()
	m.ClearCurrent()
}

// Any reports whether any tile is marked.
func (m *Map) Any() bool {
	for row := 0; row < Rows; row++ {
		if m.pages[0][row]|m.pages[1][row] != 0 {
			return true
		}
	}
	return false
}

// MarkPoint marks the tile holding pixel (x, y).
func (m *Map) MarkPoint(x, y int) {
	m.Mark(x>>tileShift, y>>tileShift)
}

// MarkMarker marks the tiles a marker glyph anchored at pixel (x, y) can
// touch: its own tile, the horizontal neighbour when the glyph is within 6
// px of the tile edge and the tile above when within 12 px of the top.
func (m *Map) MarkMarker(x, y int) {
	col, row := x>>tileShift, y>>tileShift
	dx, dy := x&(tileSize-1), y&(tileSize-1)
	m.markHalo(col, row, dx)
	if dy < 12 {
		m.markHalo(col, row-1, dx)
	}
}

func (m *Map) markHalo(col, row, dx int) {
	m.Mark(col, row)
	if dx < 6 {
		m.Mark(col-1, row)
	}
	if dx > tileSize-6 {
		m.Mark(col+1, row)
	}
}

// MarkBehindMenu marks the columns covered by the side menu.
func (m *Map) MarkBehindMenu() {
	m.markRect(7, 9, 0, Rows-1)
}

// MarkBehindNumericInput marks the rows covered by the numeric keypad line.
func (m *Map) MarkBehindNumericInput() {
	m.markRect(0, 9, 6, Rows-1)
}

func (m *Map) markRect(col0, col1, row0, row1 int) {
	for col := col0; col <= col1; col++ {
		for row := row0; row <= row1; row++ {
			m.Mark(col, row)
		}
	}
}
