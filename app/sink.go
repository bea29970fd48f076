package app

import (
	"fmt"

	"vnaplot/hal"
)

// panelSink sends finished plot tiles to the panel, trimming the parts that
// fall off its edges.
type panelSink struct {
	panel hal.Panel
	row   []uint16
}

func (p *panelSink) TransferTile(x, y, w, h int, pix []uint16) error {
	pw, ph := p.panel.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, pw), min(y+h, ph)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	if x0 == x && y0 == y && x1 == x+w && y1 == y+h {
		return p.panel.BlitRGB565(x, y, w, h, pix)
	}

	cw := x1 - x0
	if cap(p.row) < cw {
		p.row = make([]uint16, cw)
	}
	row := p.row[:cw]
	for py := y0; py < y1; py++ {
		off := (py-y)*w + (x0 - x)
		copy(row, pix[off:off+cw])
		if err := p.panel.BlitRGB565(x0, py, cw, 1, row); err != nil {
			return fmt.Errorf("row %d: %w", py, err)
		}
	}
	return nil
}
