// Package sim is a stand-in for the analyzer front end. It produces sweeps
// of a modeled device under test: reflection on channel 0 and transmission
// on channel 1.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"time"

	"vnaplot/kernel"
	"vnaplot/plot/index"
	"vnaplot/plot/trace"

	"gonum.org/v1/gonum/floats"
)

// Scenario selects the modeled device.
type Scenario int32

const (
	// Filter is a series RLC between the ports, resonant mid-sweep. Its
	// resistance drifts slowly so successive sweeps differ.
	Filter Scenario = iota
	// Open is an open-ended 1 ns cable with a little port leakage.
	Open
	// Constant reflects and transmits 0.5 at every frequency.
	Constant

	scenarioCount
)

var scenarioNames = [scenarioCount]string{
	Filter:   "filter",
	Open:     "open",
	Constant: "constant",
}

func (s Scenario) String() string {
	if s < 0 || s >= scenarioCount {
		return fmt.Sprintf("scenario(%d)", int32(s))
	}
	return scenarioNames[s]
}

// Next cycles through the scenarios.
func (s Scenario) Next() Scenario {
	if s < 0 {
		return 0
	}
	return (s + 1) % scenarioCount
}

// ParseScenario returns the scenario named name.
func ParseScenario(name string) (Scenario, error) {
	for i, n := range scenarioNames {
		if n == name {
			return Scenario(i), nil
		}
	}
	return 0, fmt.Errorf("sim: unknown scenario %q", name)
}

const (
	z0         = 50.0
	seriesR    = 5.0
	filterQ    = 5.0
	cableDelay = 1e-9
	leakage    = 0.02

	// PointsMax bounds the sweep length.
	PointsMax = index.SweepPointsMax
)

var ErrBadSweep = errors.New("sim: invalid sweep")

// Config describes the simulated sweep.
type Config struct {
	Start    int64
	Stop     int64
	Points   int
	Scenario Scenario
	// Noise is the standard deviation added to both quadratures.
	Noise float64
	Seed  int64
}

// Source produces sweeps. It is not safe for concurrent use; Run owns it
// once started.
type Source struct {
	cfg    Config
	freqs  []float64
	rng    *rand.Rand
	sweeps int
	paused bool
}

// New returns a source for cfg.
func New(cfg Config) (*Source, error) {
	s := &Source{rng: rand.New(rand.NewSource(cfg.Seed))}
	s.cfg = cfg
	if err := s.Configure(cfg.Start, cfg.Stop, cfg.Points); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure retunes the sweep.
func (s *Source) Configure(start, stop int64, points int) error {
	if points < 1 || points > PointsMax {
		return fmt.Errorf("%w: %d points", ErrBadSweep, points)
	}
	if start <= 0 || stop < start {
		return fmt.Errorf("%w: %d..%d Hz", ErrBadSweep, start, stop)
	}
	s.cfg.Start, s.cfg.Stop, s.cfg.Points = start, stop, points
	if cap(s.freqs) < points {
		s.freqs = make([]float64, points)
	}
	s.freqs = s.freqs[:points]
	if points == 1 {
		s.freqs[0] = float64(start)
		return nil
	}
	floats.Span(s.freqs, float64(start), float64(stop))
	return nil
}

// SetScenario switches the modeled device.
func (s *Source) SetScenario(sc Scenario) error {
	if sc < 0 || sc >= scenarioCount {
		return fmt.Errorf("sim: unknown scenario %d", int32(sc))
	}
	s.cfg.Scenario = sc
	return nil
}

// Config returns the current sweep configuration.
func (s *Source) Config() Config { return s.cfg }

// Frequencies returns the stimulus table in Hz. The slice is reused by the
// next Configure.
func (s *Source) Frequencies() []float64 { return s.freqs }

// Measure fills dst with one sweep, reusing its slices when large enough.
func (s *Source) Measure(dst *trace.Data) {
	n := len(s.freqs)
	for ch := range dst {
		if cap(dst[ch]) < n {
			dst[ch] = make([]complex64, n)
		}
		dst[ch] = dst[ch][:n]
	}
	center := (float64(s.cfg.Start) + float64(s.cfg.Stop)) / 2
	r := seriesR * (1 + 0.5*math.Sin(float64(s.sweeps)*0.1))
	for i, f := range s.freqs {
		s11, s21 := s.response(f, center, r)
		dst[0][i] = s.noisy(s11)
		dst[1][i] = s.noisy(s21)
	}
	s.sweeps++
}

func (s *Source) response(f, center, r float64) (s11, s21 complex128) {
	switch s.cfg.Scenario {
	case Open:
		rot := cmplx.Exp(complex(0, -2*math.Pi*f*2*cableDelay))
		return rot, complex(leakage, 0) * rot
	case Constant:
		return 0.5, 0.5
	}
	// Series RLC: Z = R + jwL + 1/(jwC), resonant at center.
	w := 2 * math.Pi * f
	w0 := 2 * math.Pi * center
	l := filterQ * (2*z0 + r) / w0
	c := 1 / (w0 * w0 * l)
	z := complex(r, w*l-1/(w*c))
	d := z + 2*z0
	return z / d, 2 * z0 / d
}

func (s *Source) noisy(v complex128) complex64 {
	if s.cfg.Noise <= 0 {
		return complex64(v)
	}
	re := real(v) + s.rng.NormFloat64()*s.cfg.Noise
	im := imag(v) + s.rng.NormFloat64()*s.cfg.Noise
	return complex(float32(re), float32(im))
}

// Handle applies one control message addressed to the source.
func (s *Source) Handle(msg kernel.Message) error {
	switch msg.Kind {
	case kernel.MsgSetPoints:
		return s.Configure(s.cfg.Start, s.cfg.Stop, int(msg.Arg))
	case kernel.MsgSetStart:
		return s.Configure(int64(msg.Arg), s.cfg.Stop, s.cfg.Points)
	case kernel.MsgSetStop:
		return s.Configure(s.cfg.Start, int64(msg.Arg), s.cfg.Points)
	case kernel.MsgSetScenario:
		return s.SetScenario(Scenario(msg.Arg))
	case kernel.MsgPause:
		s.paused = msg.Arg != 0
		return nil
	}
	return fmt.Errorf("sim: unexpected message kind %d", msg.Kind)
}

// Paused reports whether the last MsgPause stopped the source.
func (s *Source) Paused() bool { return s.paused }

// Step drains the source mailbox and, unless paused, publishes one sweep.
// Bad control messages are returned after the sweep.
func (s *Source) Step(sys *kernel.System, scratch *trace.Data) error {
	var errs []error
	for {
		msg, ok := sys.TryRecv(kernel.EPSource)
		if !ok {
			break
		}
		if err := s.Handle(msg); err != nil {
			errs = append(errs, err)
		}
	}
	if !s.paused {
		s.Measure(scratch)
		sys.Sweeps().Write(*scratch)
	}
	return errors.Join(errs...)
}

// Run publishes a sweep every period until ctx is done. Errors from control
// messages go to report, which may be nil.
func (s *Source) Run(ctx context.Context, sys *kernel.System, period time.Duration, report func(error)) error {
	if period <= 0 {
		return fmt.Errorf("sim: invalid period %v", period)
	}
	t := time.NewTicker(period)
	defer t.Stop()

	var scratch trace.Data
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := s.Step(sys, &scratch); err != nil && report != nil {
				report(err)
			}
		}
	}
}
