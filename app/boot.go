package app

import (
	"vnaplot/hal"
	"vnaplot/internal/buildinfo"
	"vnaplot/plot"
	"vnaplot/plot/raster"
)

// bootScreen logs a boot step and shows it with the firmware banner until
// the first frame replaces it.
func bootScreen(h hal.HAL, msg string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
	panel := h.Panel()
	if panel == nil {
		return
	}
	t := raster.New(plot.ScreenWidth, 2*calStep+2)
	t.Fill(0)
	t.DrawString(plot.OffsetX, 1, buildinfo.Line(), plot.ColorWhite)
	t.DrawString(plot.OffsetX, calStep+2, msg, plot.ColorGrid)
	_ = panel.BlitRGB565(0, calY, t.W, t.H, t.Pix)
}
