// Package hal is the boundary between the analyzer firmware and the board it
// runs on: display panel, front-panel keys, tick source and log output.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrOutOfBounds    = errors.New("rectangle outside the panel")
)

// Panel is an RGB565 display written in rectangles.
type Panel interface {
	Size() (w, h int)
	// BlitRGB565 copies w*h row-major pixels to the rectangle at (x, y).
	BlitRGB565(x, y, w, h int, pix []uint16) error
	FillRGB565(x, y, w, h int, c uint16) error
}

// KeyCode is a front-panel key.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
	KeyF3
)

// KeyEvent is a keyboard event. Text input carries Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined, one millisecond on every current
// platform.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Panel() Panel
	Keyboard() Keyboard
	Time() Time
}

func clipRect(pw, ph, x, y, w, h int) error {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > pw || y+h > ph {
		return ErrOutOfBounds
	}
	return nil
}
