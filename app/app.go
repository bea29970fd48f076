// Package app wires the plot engine to a HAL: a simulated measurement
// source feeds sweeps through the kernel, key presses arrive as messages and
// the render loop draws whatever changed.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vnaplot/app/sim"
	"vnaplot/hal"
	"vnaplot/kernel"
	"vnaplot/plot"
	"vnaplot/plot/search"
	"vnaplot/plot/trace"
)

// Config selects the simulated sweep and the display options at power on.
type Config struct {
	Points   int
	Scenario sim.Scenario
	Noise    float64
	Seed     int64
	// SweepPeriod is the time between sweeps of the source goroutine. Zero
	// measures one sweep per step on the render loop instead.
	SweepPeriod  time.Duration
	CheckerBoard bool
	// StatusEvery logs frame and sweep counts every so many ticks; zero
	// disables it.
	StatusEvery uint64
}

// DefaultConfig returns the power-on configuration.
func DefaultConfig() Config {
	return Config{
		Points:      101,
		Scenario:    sim.Filter,
		Noise:       0.002,
		SweepPeriod: 50 * time.Millisecond,
		StatusEvery: 10_000,
	}
}

type system struct {
	h   hal.HAL
	log hal.Logger
	k   *kernel.System
	src *sim.Source
	eng *plot.Engine
	ov  *overlay

	set plot.Settings
	cal calStatus

	period  time.Duration
	async   bool
	seq     uint32
	stale   bool
	data    trace.Data
	in      trace.Data
	scratch trace.Data

	frames     uint64
	sweeps     uint64
	lastStatus uint64
	every      uint64
	searchMode search.Mode
	scenario   sim.Scenario
	paused     bool
}

// New starts the analyzer with the default config and returns the render
// step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig starts the analyzer and returns the render step. Call it
// once per display frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	s.start()
	return guard(h, s.step)
}

// Run starts the analyzer and renders forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig is Run with an explicit config.
func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("app: " + err.Error())
			}
			select {}
		}
		time.Sleep(16 * time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	s := &system{
		h:        h,
		log:      h.Logger(),
		k:        kernel.NewSystem(),
		set:      plot.DefaultSettings(),
		cal:      fullCal(),
		period:   cfg.SweepPeriod,
		async:    cfg.SweepPeriod > 0,
		every:    cfg.StatusEvery,
		scenario: cfg.Scenario,
	}
	if cfg.Points > 0 {
		s.set.SweepPoints = cfg.Points
	}
	s.set.CheckerBoard = cfg.CheckerBoard

	src, err := sim.New(sim.Config{
		Start:    s.set.Sweep.Start(),
		Stop:     s.set.Sweep.Stop(),
		Points:   s.set.Points(),
		Scenario: cfg.Scenario,
		Noise:    cfg.Noise,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("app: source: %w", err)
	}
	s.src = src

	panel := h.Panel()
	if panel == nil {
		return nil, fmt.Errorf("app: no panel: %w", hal.ErrNotImplemented)
	}
	_ = panel.FillRGB565(0, 0, plot.ScreenWidth, plot.ScreenHeight, 0)
	bootScreen(h, fmt.Sprintf("%s, %d points", cfg.Scenario, s.set.Points()))

	s.ov = newOverlay(panel, s.log, &s.set, &s.cal)
	s.eng = plot.New(plot.Config{
		Settings: &s.set,
		Sink:     &panelSink{panel: panel},
		Overlay:  s.ov,
		Tick:     s.tick,
		Log:      s.log,
	})
	s.ov.eng = s.eng
	s.eng.Initialize()
	return s, nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf("app: "+format, args...))
}

// start launches the producers: tick forwarding, key forwarding and, in
// async mode, the sweep source.
func (s *system) start() {
	if ht := s.h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					s.k.TickTo(seq)
				}
			}()
		}
	}
	if kbd := s.h.Keyboard(); kbd != nil {
		if ch := kbd.Events(); ch != nil {
			go func() {
				for ev := range ch {
					if !ev.Press {
						continue
					}
					if !s.k.Send(kernel.EPUI, kernel.EPUI, kernel.MsgKey, packKey(ev)) {
						s.logf("key queue full, dropped %v", ev.Code)
					}
				}
			}()
		}
	}
	if s.async {
		go func() {
			err := s.src.Run(context.Background(), s.k, s.period, func(err error) { s.logf("source: %v", err) })
			if err != nil && !errors.Is(err, context.Canceled) {
				s.logf("source stopped: %v", err)
			}
		}()
	}
}

// tick lets the engine abandon a pass as soon as input is waiting.
func (s *system) tick() bool {
	return !s.k.Pending(kernel.EPUI)
}

// step serves one frame: input, new sweep data, then the redraw.
func (s *system) step() error {
	for {
		msg, ok := s.k.TryRecv(kernel.EPUI)
		if !ok {
			break
		}
		if msg.Kind == kernel.MsgKey {
			s.handleKey(unpackKey(msg.Arg))
		}
	}

	if !s.async {
		if err := s.src.Step(s.k, &s.scratch); err != nil {
			s.logf("source: %v", err)
		}
	}
	s.pollSweep()
	if s.stale {
		return nil
	}

	s.eng.DrawAll()
	s.frames++
	s.status()
	return nil
}

// pollSweep takes the latest sweep if it matches the displayed point count.
// Sweeps still measured with the previous count are dropped. The engine keeps
// the slices it was given, so reads alternate between two buffers.
func (s *system) pollSweep() {
	seq, ok := s.k.Sweeps().ReadSince(s.seq, &s.in)
	if !ok {
		return
	}
	s.seq = seq
	if len(s.in[0]) != s.set.Points() {
		return
	}
	s.data, s.in = s.in, s.data
	s.stale = false
	s.sweeps++
	s.eng.RecomputeIndices(s.data)
}

// recompute replots the last sweep after a display setting changed.
func (s *system) recompute() {
	if len(s.data[0]) != s.set.Points() {
		return
	}
	s.eng.RecomputeIndices(s.data)
}

func (s *system) status() {
	if s.every == 0 {
		return
	}
	now := s.k.Ticks()
	if now-s.lastStatus < s.every {
		return
	}
	s.lastStatus = now
	s.logf("%d frames, %d sweeps", s.frames, s.sweeps)
}
