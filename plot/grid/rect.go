package grid

// Rect is the rectangular grid: vertical lines at a 1-2-5 frequency step
// aligned to the sweep start, horizontal lines every GridY pixels.
//
// Offset and Width are in tenths of a pixel so the line spacing keeps its
// fraction across the plot.
type Rect struct {
	Width int
	GridY int
	Color uint16

	step   int64
	offset int
	width  int
}

// Update recomputes the vertical line step for a sweep starting at start and
// spanning span hertz. The step is the largest of 5, 2 and 1 times a decade
// from 100 MHz down to 1 kHz that still yields at least four divisions.
func (g *Rect) Update(start, span int64) {
	digit := int64(100000000)
	var step int64
	for digit > 100 {
		step = 5 * digit
		if span/step >= 4 {
			break
		}
		step = 2 * digit
		if span/step >= 4 {
			break
		}
		step = digit
		if span/step >= 4 {
			break
		}
		digit /= 10
	}
	g.step = step
	g.offset, g.width = 0, 0
	if span/100 > 0 {
		g.offset = int(int64(g.Width-1) * ((start % step) / 100) / (span / 100))
	}
	if span/1000 > 0 {
		g.width = int(int64(g.Width-1) * (step / 100) / (span / 1000))
	}
}

// Step returns the frequency between two vertical lines.
func (g *Rect) Step() int64 { return g.step }

// Offset returns the phase of the vertical lines in pixels.
func (g *Rect) Offset() int { return g.offset }

// Spacing returns the distance between vertical lines in tenths of a pixel.
func (g *Rect) Spacing() int { return g.width }

// X returns Color when column x carries a vertical line, bg otherwise.
// Columns 0 and Width are the frame.
func (g *Rect) X(x int, bg uint16) uint16 {
	if x < 0 {
		return bg
	}
	if x == 0 || x == g.Width {
		return g.Color
	}
	if g.width > 0 && ((x+g.offset)*10)%g.width < 10 {
		return g.Color
	}
	return bg
}

// Y returns Color when row y carries a horizontal line, bg otherwise.
func (g *Rect) Y(y int, bg uint16) uint16 {
	if y < 0 || g.GridY <= 0 {
		return bg
	}
	if y%g.GridY == 0 {
		return g.Color
	}
	return bg
}
