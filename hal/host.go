//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host panel size matches the analyzer LCD in landscape.
const (
	HostWidth  = 320
	HostHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *Framebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     NewFramebuffer(HostWidth, HostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Panel() Panel       { return h.fb }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }
func (h *hostHAL) Time() Time         { return h.t }

// NewHost returns a host HAL that logs to w, together with its in-memory
// panel for read-back. Nothing drives its tick stream.
func NewHost(w io.Writer) (HAL, *Framebuffer) {
	h := newHost(w)
	return h, h.fb
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
