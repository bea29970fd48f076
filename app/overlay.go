package app

import (
	"fmt"

	"vnaplot/hal"
	"vnaplot/plot"
	"vnaplot/plot/format"
	"vnaplot/plot/raster"
)

// Screen areas outside the plot.
const (
	footerY = plot.Height
	footerH = plot.ScreenHeight - footerY

	// Labels are padded to clear the longer text of the previous frame.
	footerField = 24

	calX    = 0
	calY    = 100
	calW    = 10
	calStep = 7
	calRows = 6

	spanX = 205
)

// calStatus is the calibration state shown at the left edge.
type calStatus struct {
	Apply        bool
	Interpolated bool
	// Modified means the active correction differs from the saved slot.
	Modified bool
	Slot     int

	Directivity  bool
	Reflection   bool
	Source       bool
	Transmission bool
	Isolation    bool
}

func (c *calStatus) labels() []string {
	var out []string
	if c.Apply {
		b := []byte{'C', byte('0' + c.Slot%10)}
		switch {
		case c.Interpolated:
			b[0] = 'c'
		case c.Modified:
			b[1] = '*'
		}
		out = append(out, string(b))
	}
	for _, term := range []struct {
		on    bool
		label string
	}{
		{c.Directivity, "D"},
		{c.Reflection, "R"},
		{c.Source, "S"},
		{c.Transmission, "T"},
		{c.Isolation, "X"},
	} {
		if term.on {
			out = append(out, term.label)
		}
	}
	return out
}

// fullCal is the state after a complete SOLT calibration saved to slot 0.
func fullCal() calStatus {
	return calStatus{
		Apply:        true,
		Directivity:  true,
		Reflection:   true,
		Source:       true,
		Transmission: true,
		Isolation:    true,
	}
}

// overlay draws the sweep footer and the calibration letters straight to
// the panel.
type overlay struct {
	panel hal.Panel
	log   hal.Logger
	s     *plot.Settings
	eng   *plot.Engine
	cal   *calStatus

	footer *raster.Tile
	status *raster.Tile
}

func newOverlay(panel hal.Panel, log hal.Logger, s *plot.Settings, cal *calStatus) *overlay {
	return &overlay{
		panel:  panel,
		log:    log,
		s:      s,
		cal:    cal,
		footer: raster.New(plot.ScreenWidth, footerH),
		status: raster.New(calW, calRows*calStep),
	}
}

func (o *overlay) blit(x, y int, t *raster.Tile) {
	if err := o.panel.BlitRGB565(x, y, t.W, t.H, t.Pix); err != nil && o.log != nil {
		o.log.WriteLineString(fmt.Sprintf("app: overlay at (%d,%d): %v", x, y, err))
	}
}

// DrawFrequencies draws the footer: the sweep range in the form it was
// entered and the point count.
func (o *overlay) DrawFrequencies() {
	t := o.footer
	t.Reset(plot.ScreenWidth, footerH)
	t.Fill(0)

	s := o.s
	t.DrawString(plot.ScreenWidth/2, 0, fmt.Sprintf("%3d P", s.Points()), plot.ColorWhite)

	if s.Domain == plot.DomainTime {
		t.DrawString(plot.OffsetX, 0, format.Pad("START 0s", footerField), plot.ColorWhite)
		var stop float32
		if o.eng != nil {
			stop = o.eng.TimeOfIndex(s.Points())
		}
		t.DrawString(spanX, 0, format.Pad(fmt.Sprintf("STOP %d ns", uint16(stop*1e9)), footerField), plot.ColorWhite)
		o.blit(0, footerY, t)
		return
	}

	sw := s.Sweep
	switch {
	case sw.IsCW():
		x := plot.OffsetX
		t.DrawStringInvert(x, 0, "CW", plot.ColorWhite, s.Lever == plot.LeverCenter)
		x += 5 * 2
		t.DrawString(x, 0, format.Pad(" "+format.Frequency(sw.Freq0), footerField), plot.ColorWhite)
	case sw.IsCenterSpan():
		x := plot.OffsetX
		t.DrawStringInvert(x, 0, "CENTER", plot.ColorWhite, s.Lever == plot.LeverCenter)
		x += 5 * 6
		t.DrawString(x, 0, format.Pad(" "+format.Frequency(sw.Center()), footerField), plot.ColorWhite)
		x = spanX
		t.DrawStringInvert(x, 0, "SPAN", plot.ColorWhite, s.Lever == plot.LeverSpan)
		x += 5 * 4
		t.DrawString(x, 0, format.Pad(" "+format.Frequency(sw.Span()), footerField), plot.ColorWhite)
	default:
		t.DrawString(plot.OffsetX, 0, format.Pad("START "+format.Frequency(sw.Start()), footerField), plot.ColorWhite)
		t.DrawString(spanX, 0, format.Pad("STOP "+format.Frequency(sw.Stop()), footerField), plot.ColorWhite)
	}
	o.blit(0, footerY, t)
}

// DrawCalStatus draws one line per active correction term.
func (o *overlay) DrawCalStatus() {
	t := o.status
	t.Reset(calW, calRows*calStep)
	t.Fill(0)
	y := 0
	for _, l := range o.cal.labels() {
		t.DrawString(0, y, l, plot.ColorWhite)
		y += calStep
	}
	o.blit(calX, calY, t)
}
