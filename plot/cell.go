package plot

import (
	"vnaplot/plot/grid"
	"vnaplot/plot/search"
	"vnaplot/plot/trace"
)

type gridMode uint8

const (
	gridRect gridMode = 1 << iota
	gridSmith
	gridAdmittance
	gridPolar

	gridCharts = gridSmith | gridAdmittance | gridPolar
)

func (e *Engine) gridMode() gridMode {
	var mode gridMode
	for t := range e.s.Traces {
		tr := &e.s.Traces[t]
		if !tr.Enabled {
			continue
		}
		switch tr.Type {
		case trace.Smith:
			if e.s.Admittance {
				mode |= gridAdmittance
			} else {
				mode |= gridSmith
			}
		case trace.Polar:
			mode |= gridPolar
		default:
			mode |= gridRect
		}
	}
	return mode
}

// drawCell composes tile (m, n) and transfers it.
//
// Tile pixel (px, py) is plot-area pixel (x0+px, y0+py); the grid works in
// plot coordinates, which start CellOffsetX further right.
func (e *Engine) drawCell(m, n int) {
	x0 := m * TileW
	y0 := n * TileH
	x0off := x0 - CellOffsetX
	w, h := TileW, TileH

	shade := e.s.ShadeCells || (e.s.CheckerBoard && (m+n)%2 == 0)
	var bg uint16
	if shade {
		bg = ColorShade
	}

	if x0off+w > AreaWidth {
		w = AreaWidth - x0off
	}
	if y0+h > Height {
		h = Height - y0
	}
	if w <= 0 || h <= 0 {
		return
	}

	tile := e.tile
	tile.Reset(w, h)
	mode := e.gridMode()

	e.rect.Color = e.s.GridColor
	if mode&gridRect != 0 {
		for x := 0; x < w; x++ {
			c := e.rect.X(x+x0off, bg)
			for y := 0; y < h; y++ {
				tile.Set(x, y, c)
			}
		}
		for y := 0; y < h; y++ {
			c := e.rect.Y(y+y0, bg)
			for x := 0; x < w; x++ {
				if px := x + x0off; px >= 0 && px <= Width {
					tile.Or(x, y, c)
				}
			}
		}
	} else {
		tile.Fill(0)
	}

	if mode&gridCharts != 0 {
		chart := grid.Chart{
			CenterX: ChartCenterX,
			CenterY: ChartCenterY,
			Radius:  ChartRadius,
			Color:   e.s.GridColor,
		}
		var at func(x, y int) uint16
		switch {
		case mode&gridSmith != 0:
			at = chart.Smith
		case mode&gridAdmittance != 0:
			at = chart.Admittance
		default:
			at = chart.Polar
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				tile.Or(x, y, at(x+x0off, y+y0))
			}
		}
	}

	e.drawTraces(x0, y0)
	e.drawMarkers(x0, y0)
	if n == 0 {
		e.drawMarkerInfo(m)
	}
	if m == 0 {
		e.drawRefPos(x0, y0)
	}

	if e.cfg.Sink == nil {
		return
	}
	if err := e.cfg.Sink.TransferTile(OffsetX+x0off, OffsetY+y0, w, h, tile.Pix); err != nil {
		e.logf("transfer tile (%d,%d): %v", m, n, err)
	}
}

func (e *Engine) drawTraces(x0, y0 int) {
	points := e.s.Points()
	for t := range e.s.Traces {
		tr := &e.s.Traces[t]
		if !tr.Enabled {
			continue
		}
		idx := e.table[t][:points]
		if tr.Type.IsChart() {
			for i := 1; i < points; i++ {
				p0, p1 := idx[i-1], idx[i]
				e.tile.DrawLine(p0.X()-x0, p0.Y()-y0, p1.X()-x0, p1.Y()-y0, tr.Color)
			}
			continue
		}
		i0, i1, ok := search.RangeByColumn(idx, x0)
		if !ok {
			continue
		}
		if i0 > 0 {
			i0--
		}
		if i1 < points-1 {
			i1++
		}
		for i := i0; i < i1; i++ {
			p0, p1 := idx[i], idx[i+1]
			e.tile.DrawLine(p0.X()-x0, p0.Y()-y0, p1.X()-x0, p1.Y()-y0, tr.Color)
		}
	}
}

func (e *Engine) drawMarkers(x0, y0 int) {
	w, h := e.tile.W, e.tile.H
	for mk := range e.s.Markers {
		if !e.s.Markers[mk].Enabled {
			continue
		}
		i := e.markerIndex(mk)
		for t := range e.s.Traces {
			tr := &e.s.Traces[t]
			if !tr.Enabled {
				continue
			}
			p := e.table[t][i]
			x := p.X() - x0
			y := p.Y() - y0
			if x > -6 && x < w+6 && y >= 0 && y < h+12 {
				e.tile.DrawMarker(x, y, tr.Color, rune('1'+mk))
			}
		}
	}
}

func (e *Engine) drawRefPos(x0, y0 int) {
	w, h := e.tile.W, e.tile.H
	for t := range e.s.Traces {
		tr := &e.s.Traces[t]
		if !tr.Enabled || tr.Type.IsChart() {
			continue
		}
		x := CellOffsetX - x0
		y := 8*GridY - int(tr.RefPos*GridY) - y0
		if x > -5 && x < w && y >= -3 && y < h+3 {
			e.tile.DrawRefPos(x, y, tr.Color)
		}
	}
}
