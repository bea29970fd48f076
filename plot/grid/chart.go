// Package grid decides, pixel by pixel, whether a point of the plot area lies
// on a grid line. Every generator is a pure function of its receiver and the
// pixel, so redrawing a tile always reproduces the same grid.
package grid

// CircleInOut classifies (x, y) against the circle of radius r centred on the
// origin: 1 inside, 0 on the line, -1 outside. A point is on the line when
// x²+y²-r² falls in (-r, r].
func CircleInOut(x, y, r int) int {
	d := x*x + y*y - r*r
	if d <= -r {
		return 1
	}
	if d > r {
		return -1
	}
	return 0
}

// Chart draws the circular grids around a fixed centre.
type Chart struct {
	CenterX int
	CenterY int
	Radius  int
	Color   uint16
}

// Polar returns Color on the polar grid, 0 elsewhere: outer circle, axes,
// circles at each fifth of the radius and the diagonals outside 2/5.
func (g Chart) Polar(x, y int) uint16 {
	c := g.Color
	r := g.Radius
	x -= g.CenterX
	y -= g.CenterY

	d := CircleInOut(x, y, r)
	if d < 0 {
		return 0
	}
	if d == 0 {
		return c
	}
	if x == 0 || y == 0 {
		return c
	}

	for _, k := range [...]int{1, 2} {
		d = CircleInOut(x, y, r*k/5)
		if d == 0 {
			return c
		}
		if d > 0 {
			return 0
		}
	}

	if x == y || x == -y {
		return c
	}

	d = CircleInOut(x, y, r*3/5)
	if d == 0 {
		return c
	}
	if d > 0 {
		return 0
	}
	if CircleInOut(x, y, r*4/5) == 0 {
		return c
	}
	return 0
}

// Smith returns Color on the impedance Smith chart grid, 0 elsewhere.
//
// Constant reactance circles (1/2j, 1j, 2j) are centred on the right edge and
// come in ± pairs, constant resistance circles (1/3, 1, 3) touch the right
// edge. The 1 and 3 resistance discs hide everything inside them.
func (g Chart) Smith(x, y int) uint16 {
	c := g.Color
	r := g.Radius
	x -= g.CenterX
	y -= g.CenterY

	d := CircleInOut(x, y, r)
	if d < 0 {
		return 0
	}
	if d == 0 {
		return c
	}
	if y == 0 {
		return c
	}

	x -= r

	if g.reactancePair(x, y, r/2) {
		return c
	}
	d = CircleInOut(x+r/4, y, r/4)
	if d > 0 {
		return 0
	}
	if d == 0 {
		return c
	}

	if g.reactancePair(x, y, r) {
		return c
	}
	d = CircleInOut(x+r/2, y, r/2)
	if d > 0 {
		return 0
	}
	if d == 0 {
		return c
	}

	if g.reactancePair(x, y, r*2) {
		return c
	}
	if CircleInOut(x+r*3/4, y, r*3/4) == 0 {
		return c
	}
	return 0
}

func (g Chart) reactancePair(x, y, rr int) bool {
	return CircleInOut(x, y+rr, rr) == 0 || CircleInOut(x, y-rr, rr) == 0
}

// circle is one entry of the admittance table: centre offset, radius and
// whether the disc hides what lies inside it.
type circle struct {
	dx, dy, r int
	solid     bool
}

func (g Chart) admittanceCircles() [9]circle {
	r := g.Radius
	return [9]circle{
		{0, r / 4, r / 4, false},
		{r / 8, 0, r / 8, true},
		{0, r / 2, r / 2, false},
		{r / 4, 0, r / 4, true},
		{0, r, r, false},
		{r * 3 / 8, 0, r * 3 / 8, true},
		{0, r * 2, r * 2, false},
		{r / 2, 0, r / 2, true},
		{r * 3 / 4, 0, r * 3 / 4, true},
	}
}

// Admittance returns Color on the combined impedance/admittance grid drawn at
// half scale, 0 elsewhere. Each table circle is tested at its offset and at
// the offset mirrored through the shifted origin.
func (g Chart) Admittance(x, y int) uint16 {
	c := g.Color
	x -= g.CenterX
	y -= g.CenterY

	d := CircleInOut(x, y, g.Radius)
	if d < 0 {
		return 0
	}
	if d == 0 {
		return c
	}

	x -= g.Radius / 2
	for _, cc := range g.admittanceCircles() {
		d = CircleInOut(x+cc.dx, y+cc.dy, cc.r)
		if d == 0 {
			return c
		}
		if d > 0 && cc.solid {
			return 0
		}
		d = CircleInOut(x-cc.dx, y-cc.dy, cc.r)
		if d == 0 {
			return c
		}
		if d > 0 && cc.solid {
			return 0
		}
	}
	return 0
}
