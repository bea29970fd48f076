package grid

// Sweep is the stimulus range in one of three forms. With Freq1 > 0 it is
// start Freq0 / stop Freq1, with Freq1 < 0 it is centre Freq0 / span -Freq1,
// and with Freq1 == 0 a single frequency Freq0 (CW).
type Sweep struct {
	Freq0 int64
	Freq1 int64
}

// StartStop returns a sweep from start to stop.
func StartStop(start, stop int64) Sweep { return Sweep{Freq0: start, Freq1: stop} }

// CenterSpan returns a sweep of span hertz around center.
func CenterSpan(center, span int64) Sweep { return Sweep{Freq0: center, Freq1: -span} }

// CW returns a zero-span sweep at freq.
func CW(freq int64) Sweep { return Sweep{Freq0: freq} }

// IsCenterSpan reports whether the sweep is shown as centre and span.
func (s Sweep) IsCenterSpan() bool { return s.Freq1 < 0 }

// IsCW reports whether the sweep has zero span.
func (s Sweep) IsCW() bool { return s.Freq1 == 0 }

// Start returns the first frequency.
func (s Sweep) Start() int64 {
	if s.Freq1 < 0 {
		return s.Freq0 + s.Freq1/2
	}
	return s.Freq0
}

// Span returns stop minus start.
func (s Sweep) Span() int64 {
	switch {
	case s.Freq1 > 0:
		return s.Freq1 - s.Freq0
	case s.Freq1 < 0:
		return -s.Freq1
	}
	return 0
}

// Stop returns the last frequency.
func (s Sweep) Stop() int64 { return s.Start() + s.Span() }

// Center returns the middle frequency.
func (s Sweep) Center() int64 {
	if s.Freq1 > 0 {
		return s.Freq0 + (s.Freq1-s.Freq0)/2
	}
	return s.Freq0
}

// FrequencyAt returns the frequency of sample i of points evenly spaced
// samples.
func (s Sweep) FrequencyAt(i, points int) int64 {
	if points < 2 {
		return s.Start()
	}
	return s.Start() + s.Span()*int64(i)/int64(points-1)
}
