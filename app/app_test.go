package app

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"vnaplot/app/sim"
	"vnaplot/hal"
	"vnaplot/kernel"
	"vnaplot/plot"
)

type lines struct {
	mu sync.Mutex
	l  []string
}

func (l *lines) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l = append(l.l, s)
}

func (l *lines) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lines) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.l {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type testHAL struct {
	fb  *hal.Framebuffer
	log *lines
}

func newTestHAL() *testHAL {
	return &testHAL{fb: hal.NewFramebuffer(plot.ScreenWidth, plot.ScreenHeight), log: &lines{}}
}

func (h *testHAL) Logger() hal.Logger { return h.log }
func (h *testHAL) Panel() hal.Panel {
	if h.fb == nil {
		return nil
	}
	return h.fb
}
func (h *testHAL) Keyboard() hal.Keyboard { return nil }
func (h *testHAL) Time() hal.Time         { return nil }

func newTestSystem(t *testing.T, sc sim.Scenario) (*system, *testHAL) {
	t.Helper()
	h := newTestHAL()
	s, err := newSystem(h, Config{Points: 101, Scenario: sc})
	if err != nil {
		t.Fatalf("newSystem() = %v", err)
	}
	return s, h
}

func mustStep(t *testing.T, s *system) {
	t.Helper()
	if err := s.step(); err != nil {
		t.Fatalf("step() = %v", err)
	}
}

const yellow = 0xffe0

func TestStepDrawsSweep(t *testing.T) {
	s, h := newTestSystem(t, sim.Constant)
	s.set.Traces[1].Enabled = false
	s.set.Traces[2].Enabled = false
	mustStep(t, s)

	if s.frames != 1 || s.sweeps != 1 {
		t.Fatalf("frames, sweeps = %d, %d, want 1, 1", s.frames, s.sweeps)
	}
	// 0.5 is -6 dB: 1.6 divisions below the top at 10 dB/div, refpos 7.
	if got := h.fb.At(plot.OffsetX+150, 46); got&yellow != yellow {
		t.Fatalf("trace pixel = %#04x, want yellow bits", got)
	}
	if got := h.fb.At(plot.OffsetX+150, 56); got&yellow == yellow {
		t.Fatalf("pixel below trace = %#04x, want no trace", got)
	}
	if s.eng.Pending() != 0 {
		t.Fatalf("Pending() = %v after a full frame", s.eng.Pending())
	}
}

func TestPausedSourceKeepsLastSweep(t *testing.T) {
	s, _ := newTestSystem(t, sim.Constant)
	mustStep(t, s)
	s.send(kernel.MsgPause, 1)
	mustStep(t, s)
	mustStep(t, s)
	if s.sweeps != 1 || s.frames != 3 {
		t.Fatalf("sweeps, frames = %d, %d, want 1, 3", s.sweeps, s.frames)
	}
	if !s.src.Paused() {
		t.Fatalf("source not paused")
	}
	if s.eng.Pending() != 0 {
		t.Fatalf("Pending() = %v, want nothing to draw", s.eng.Pending())
	}
}

func TestPackKey(t *testing.T) {
	for _, ev := range []hal.KeyEvent{
		{Code: hal.KeyF3, Press: true},
		{Press: true, Rune: 'Δ'},
		{Press: true, Rune: '+'},
	} {
		if got := unpackKey(packKey(ev)); got != ev {
			t.Fatalf("unpackKey(packKey(%v)) = %v", ev, got)
		}
	}
}

func TestJogMovesActiveMarker(t *testing.T) {
	s, _ := newTestSystem(t, sim.Constant)
	mustStep(t, s)

	s.handleKey(hal.KeyEvent{Code: hal.KeyRight, Press: true})
	if got := s.set.Markers[0].Index; got != 31 {
		t.Fatalf("marker index after Right = %d, want 31", got)
	}
	s.set.Markers[0].Index = 0
	s.handleKey(hal.KeyEvent{Code: hal.KeyLeft, Press: true})
	if got := s.set.Markers[0].Index; got != 0 {
		t.Fatalf("marker index after Left at 0 = %d, want 0", got)
	}
}

func TestSearchKeys(t *testing.T) {
	s, _ := newTestSystem(t, sim.Filter)
	mustStep(t, s)

	s.handleKey(hal.KeyEvent{Code: hal.KeyF2, Press: true})
	if got := s.set.Markers[0].Index; got != 50 {
		t.Fatalf("marker after minimum search = %d, want 50", got)
	}
	s.set.ActiveMarker = -1
	s.handleKey(hal.KeyEvent{Code: hal.KeyF1, Press: true})
	if got := s.set.Markers[0].Index; got != 50 {
		t.Fatalf("search without active marker moved marker 0 to %d", got)
	}
}

func TestMarkerSelection(t *testing.T) {
	s, _ := newTestSystem(t, sim.Constant)
	s.handleRune('m')
	if s.set.PreviousMarker != 0 {
		t.Fatalf("PreviousMarker after table toggle = %d, want 0", s.set.PreviousMarker)
	}
	s.handleRune('3')
	if s.set.ActiveMarker != 2 || !s.set.Markers[2].Enabled {
		t.Fatalf("ActiveMarker = %d, enabled %v, want 2, true", s.set.ActiveMarker, s.set.Markers[2].Enabled)
	}
	if s.set.PreviousMarker != 0 {
		t.Fatalf("PreviousMarker = %d, want 0", s.set.PreviousMarker)
	}

	s.handleRune('0')
	if s.set.Markers[2].Enabled || s.set.ActiveMarker != 0 {
		t.Fatalf("after disable: enabled %v, active %d, want false, 0", s.set.Markers[2].Enabled, s.set.ActiveMarker)
	}
}

func TestNextPointsWaitsForMatchingSweep(t *testing.T) {
	s, _ := newTestSystem(t, sim.Constant)
	mustStep(t, s)

	s.handleRune('n')
	if got := s.set.Points(); got != 201 {
		t.Fatalf("Points() = %d, want 201", got)
	}
	if !s.stale {
		t.Fatalf("stale = false before the new sweep arrived")
	}
	mustStep(t, s)
	if s.stale || len(s.data[0]) != 201 {
		t.Fatalf("after step: stale %v, %d samples, want false, 201", s.stale, len(s.data[0]))
	}
	if s.frames != 2 {
		t.Fatalf("frames = %d, want 2", s.frames)
	}
}

func TestLeverRetunesSource(t *testing.T) {
	s, h := newTestSystem(t, sim.Constant)
	mustStep(t, s)
	if got := h.fb.At(plot.OffsetX, footerY); got != 0 {
		t.Fatalf("START label corner = %#04x, want 0", got)
	}

	s.handleKey(hal.KeyEvent{Code: hal.KeyEnter, Press: true})
	if s.set.Lever != plot.LeverCenter || !s.set.Sweep.IsCenterSpan() {
		t.Fatalf("lever %v, center/span %v after Enter", s.set.Lever, s.set.Sweep.IsCenterSpan())
	}
	s.handleKey(hal.KeyEvent{Code: hal.KeyRight, Press: true})
	wantStart := s.set.Sweep.Start()
	if wantStart <= 50_000 {
		t.Fatalf("Start() = %d, want moved up", wantStart)
	}
	mustStep(t, s)

	cfg := s.src.Config()
	if cfg.Start != wantStart || cfg.Stop != s.set.Sweep.Stop() {
		t.Fatalf("source sweep = %d..%d, want %d..%d", cfg.Start, cfg.Stop, wantStart, s.set.Sweep.Stop())
	}
	// CENTER is drawn inverted while it is the lever.
	if got := h.fb.At(plot.OffsetX, footerY); got != plot.ColorWhite {
		t.Fatalf("CENTER label corner = %#04x, want white", got)
	}
}

func TestSweepOutOfRangeIgnored(t *testing.T) {
	s, h := newTestSystem(t, sim.Constant)
	s.set.Lever = plot.LeverSpan
	for i := 0; i < 3; i++ {
		s.handleKey(hal.KeyEvent{Code: hal.KeyRight, Press: true})
	}
	if got := s.set.Sweep.Stop(); got > maxFreq {
		t.Fatalf("Stop() = %d beyond %d", got, maxFreq)
	}
	if !h.log.contains("out of range") {
		t.Fatalf("no log line for the rejected sweep")
	}
}

func TestCalStatusToggle(t *testing.T) {
	s, h := newTestSystem(t, sim.Constant)
	mustStep(t, s)
	if !anyLit(h.fb, calX, calY, calW, calRows*calStep) {
		t.Fatalf("no calibration letters drawn")
	}
	s.handleRune('k')
	mustStep(t, s)
	if anyLit(h.fb, calX, calY, calW, calRows*calStep) {
		t.Fatalf("calibration letters left after cal off")
	}
}

func anyLit(fb *hal.Framebuffer, x, y, w, h int) bool {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if fb.At(px, py) != 0 {
				return true
			}
		}
	}
	return false
}

func TestCalLabels(t *testing.T) {
	c := fullCal()
	if got := strings.Join(c.labels(), ","); got != "C0,D,R,S,T,X" {
		t.Fatalf("labels() = %q", got)
	}
	c.Interpolated = true
	if got := c.labels()[0]; got != "c0" {
		t.Fatalf("interpolated label = %q, want c0", got)
	}
	c.Interpolated, c.Modified = false, true
	if got := c.labels()[0]; got != "C*" {
		t.Fatalf("modified label = %q, want C*", got)
	}
	if got := (&calStatus{}).labels(); len(got) != 0 {
		t.Fatalf("labels() with no cal = %v", got)
	}
}

func TestPanelSinkClips(t *testing.T) {
	fb := hal.NewFramebuffer(8, 4)
	p := &panelSink{panel: fb}
	pix := []uint16{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	if err := p.TransferTile(-2, 1, 4, 2, pix); err != nil {
		t.Fatalf("TransferTile() = %v", err)
	}
	if got := fb.At(0, 1); got != 3 {
		t.Fatalf("At(0, 1) = %d, want 3", got)
	}
	if got := fb.At(1, 2); got != 8 {
		t.Fatalf("At(1, 2) = %d, want 8", got)
	}
	if err := p.TransferTile(20, 0, 4, 2, pix); err != nil {
		t.Fatalf("TransferTile(off panel) = %v", err)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newTestHAL()
	step := guard(h, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("step() = %v, want panic error", err)
	}
	if !h.log.contains("vnaplot panic:") {
		t.Fatalf("panic not logged")
	}
	if got := h.fb.At(plot.ScreenWidth-1, plot.ScreenHeight-1); got != 0xffff {
		t.Fatalf("panic screen corner = %#04x, want white", got)
	}
}

func TestNewWithConfigWithoutPanel(t *testing.T) {
	h := &testHAL{log: &lines{}}
	step := NewWithConfig(h, DefaultConfig())
	if err := step(); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("step() = %v, want ErrNotImplemented", err)
	}
}

func TestBootScreen(t *testing.T) {
	_, h := newTestSystem(t, sim.Constant)
	if !h.log.contains("boot: constant, 101 points") {
		t.Fatalf("boot step not logged: %v", h.log.l)
	}
	if !anyLit(h.fb, plot.OffsetX, calY, 100, calStep) {
		t.Fatalf("banner not drawn")
	}
}
