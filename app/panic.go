package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"vnaplot/fonts/font5x7"
	"vnaplot/hal"
	"vnaplot/plot/raster"
)

// guard wraps step so a panic in the render loop is logged, painted on the
// panel and returned as an error instead of taking the process down.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := string(debug.Stack())
			reportPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack string) {
	var lines []string
	lines = append(lines, "vnaplot panic:", fmt.Sprintf("panic: %v", v))
	if stack != "" {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(stack, "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	panel := h.Panel()
	if panel == nil {
		return
	}
	w, ph := panel.Size()
	if w <= 0 || ph <= 0 {
		return
	}
	_ = panel.FillRGB565(0, 0, w, ph, raster.RGB565(0xff, 0xff, 0xff))

	strip := raster.New(w, font5x7.Height+1)
	fg := raster.RGB565(0, 0, 0)
	white := raster.RGB565(0xff, 0xff, 0xff)
	cols := w / font5x7.Advance
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+strip.H > ph {
				return
			}
			chunk, rest := takeRunes(line, cols)
			strip.Fill(white)
			strip.DrawString(0, 0, chunk, fg)
			if err := panel.BlitRGB565(0, y, strip.W, strip.H, strip.Pix); err != nil {
				return
			}
			y += strip.H
			line = strings.TrimLeft(rest, " \t")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
