package app

import (
	"vnaplot/hal"
	"vnaplot/kernel"
	"vnaplot/plot"
	"vnaplot/plot/grid"
	"vnaplot/plot/search"
	"vnaplot/plot/trace"
)

// Tuning limits of the front end.
const (
	minFreq = 10_000
	maxFreq = 1_500_000_000
	minSpan = 1_000

	edelayStep   = 10 // picoseconds
	smithFormats = 5
)

var pointSteps = [...]int{11, 51, 101, 201}

// packKey squeezes a key press into a message argument: the code above bit
// 21, the rune below.
func packKey(ev hal.KeyEvent) int32 {
	return int32(ev.Code)<<21 | int32(ev.Rune&0x1fffff)
}

func unpackKey(arg int32) hal.KeyEvent {
	return hal.KeyEvent{Code: hal.KeyCode(arg >> 21), Press: true, Rune: rune(arg & 0x1fffff)}
}

func (s *system) handleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyUnknown:
		s.handleRune(ev.Rune)
	case hal.KeyLeft:
		s.jog(-1)
	case hal.KeyRight:
		s.jog(1)
	case hal.KeyEnter:
		s.nextLever()
	case hal.KeyUp:
		s.nextType()
	case hal.KeyDown:
		s.nextChannel()
	case hal.KeyTab:
		s.nextTrace()
	case hal.KeyF1:
		s.searchMode = search.Max
		s.placeActive(s.eng.MarkerSearch(search.Max))
	case hal.KeyF2:
		s.searchMode = search.Min
		s.placeActive(s.eng.MarkerSearch(search.Min))
	case hal.KeyF3:
		if m := s.set.ActiveMarker; m >= 0 {
			s.placeActive(s.eng.MarkerSearchRight(s.searchMode, s.set.Markers[m].Index))
		}
	case hal.KeyEscape:
		if m := s.set.ActiveMarker; m >= 0 {
			s.placeActive(s.eng.MarkerSearchLeft(s.searchMode, s.set.Markers[m].Index))
		}
	}
}

func (s *system) handleRune(r rune) {
	set := &s.set
	switch {
	case r >= '1' && r < '1'+trace.MarkersMax:
		s.selectMarker(int(r - '1'))
	case r == '0':
		s.disableActive()
	case r == 'm':
		if set.PreviousMarker == -1 {
			set.PreviousMarker = set.ActiveMarker
		} else {
			set.PreviousMarker = -1
		}
		s.refreshInfo()
	case r == 'd':
		set.MarkerDelta = !set.MarkerDelta
		s.refreshInfo()
	case r == 't':
		if set.Domain == plot.DomainFrequency {
			set.Domain = plot.DomainTime
		} else {
			set.Domain = plot.DomainFrequency
		}
		s.eng.RequestRedraw(plot.RedrawFrequency)
		s.refreshInfo()
	case r == 'c':
		set.CheckerBoard = !set.CheckerBoard
		s.eng.RequestFullRegrid()
	case r == 's':
		set.ShadeCells = !set.ShadeCells
		s.eng.RequestFullRegrid()
	case r == 'a':
		set.Admittance = !set.Admittance
		s.eng.RequestFullRegrid()
	case r == 'f':
		set.SmithFormat = (set.SmithFormat + 1) % smithFormats
		s.refreshInfo()
	case r == '+' || r == '-':
		s.zoom(r == '+')
	case r == 'n':
		s.nextPoints()
	case r == 'p':
		s.paused = !s.paused
		arg := int32(0)
		if s.paused {
			arg = 1
		}
		s.send(kernel.MsgPause, arg)
	case r == 'o':
		s.scenario = s.scenario.Next()
		s.send(kernel.MsgSetScenario, int32(s.scenario))
	case r == 'k':
		if s.cal.Apply {
			s.cal = calStatus{}
		} else {
			s.cal = fullCal()
		}
		s.eng.RequestRedraw(plot.RedrawCalStatus)
	case r == 'e':
		set.ElectricalDelay += edelayStep
		s.refreshInfo()
	case r == 'E':
		set.ElectricalDelay = 0
		s.refreshInfo()
	}
}

func (s *system) send(kind kernel.Kind, arg int32) {
	if !s.k.Send(kernel.EPUI, kernel.EPSource, kind, arg) {
		s.logf("source queue full, dropped message %d", kind)
	}
}

// refreshInfo redraws the info rows at the top of the plot.
func (s *system) refreshInfo() {
	s.eng.RequestMarkerRedraw(s.set.ActiveMarker, true)
}

// placeActive moves the active marker to sample i.
func (s *system) placeActive(i int) {
	m := s.set.ActiveMarker
	if i < 0 || m < 0 {
		return
	}
	s.eng.RequestMarkerRedraw(m, false)
	s.set.Markers[m].Index = i
	s.eng.RequestMarkerRedraw(m, true)
}

func (s *system) selectMarker(m int) {
	set := &s.set
	mk := &set.Markers[m]
	mk.Enabled = true
	if set.ActiveMarker != m {
		if set.PreviousMarker != -1 && set.ActiveMarker >= 0 {
			set.PreviousMarker = set.ActiveMarker
		}
		set.ActiveMarker = m
	}
	s.eng.RequestMarkerRedraw(m, true)
}

func (s *system) disableActive() {
	set := &s.set
	m := set.ActiveMarker
	if m < 0 {
		return
	}
	s.eng.RequestMarkerRedraw(m, true)
	set.Markers[m].Enabled = false
	set.ActiveMarker = -1
	for i := range set.Markers {
		if set.Markers[i].Enabled {
			set.ActiveMarker = i
			break
		}
	}
	if set.PreviousMarker == m {
		set.PreviousMarker = set.ActiveMarker
	}
}

func (s *system) jog(dir int) {
	set := &s.set
	sw := set.Sweep
	switch set.Lever {
	case plot.LeverMarker:
		m := set.ActiveMarker
		if m < 0 {
			return
		}
		i := set.Markers[m].Index + dir
		if i < 0 || i >= set.Points() {
			return
		}
		s.placeActive(i)
	case plot.LeverCenter:
		step := sw.Span() / 10
		if step == 0 {
			step = 1_000_000
		}
		s.setSweep(grid.CenterSpan(sw.Center()+int64(dir)*step, sw.Span()))
	case plot.LeverSpan:
		span := sw.Span()
		if dir > 0 {
			span *= 2
		} else {
			span /= 2
		}
		if span < minSpan {
			span = minSpan
		}
		s.setSweep(grid.CenterSpan(sw.Center(), span))
	}
}

// setSweep retunes display and source. Ranges outside the front end are
// ignored.
func (s *system) setSweep(sw grid.Sweep) {
	start, stop := sw.Start(), sw.Stop()
	if start < minFreq || stop > maxFreq {
		s.logf("sweep %d..%d Hz out of range", start, stop)
		return
	}
	old := s.set.Sweep.Start()
	s.set.Sweep = sw
	s.eng.UpdateGrid()
	// Keep start <= stop at the source between the two messages.
	if start > old {
		s.send(kernel.MsgSetStop, int32(stop))
		s.send(kernel.MsgSetStart, int32(start))
	} else {
		s.send(kernel.MsgSetStart, int32(start))
		s.send(kernel.MsgSetStop, int32(stop))
	}
}

func (s *system) nextLever() {
	set := &s.set
	set.Lever = (set.Lever + 1) % 3
	if set.Lever != plot.LeverMarker && !set.Sweep.IsCenterSpan() && !set.Sweep.IsCW() {
		set.Sweep = grid.CenterSpan(set.Sweep.Center(), set.Sweep.Span())
	}
	s.eng.RequestRedraw(plot.RedrawFrequency)
	s.refreshInfo()
}

func (s *system) currentTrace() *trace.Trace {
	t := s.set.CurrentTrace
	if t < 0 || t >= trace.TracesMax {
		return nil
	}
	return &s.set.Traces[t]
}

func (s *system) nextType() {
	tr := s.currentTrace()
	if tr == nil {
		return
	}
	tr.Type = tr.Type.Next()
	tr.Scale = tr.Type.DefaultScale()
	s.recompute()
	s.eng.RequestFullRegrid()
}

func (s *system) nextChannel() {
	tr := s.currentTrace()
	if tr == nil {
		return
	}
	tr.Channel = (tr.Channel + 1) % trace.ChannelsMax
	s.recompute()
	s.refreshInfo()
}

func (s *system) nextTrace() {
	set := &s.set
	for i := 1; i <= trace.TracesMax; i++ {
		t := (set.CurrentTrace + i) % trace.TracesMax
		if set.Traces[t].Enabled {
			set.CurrentTrace = t
			s.refreshInfo()
			return
		}
	}
}

func (s *system) zoom(in bool) {
	tr := s.currentTrace()
	if tr == nil {
		return
	}
	if in {
		tr.Scale /= 2
	} else {
		tr.Scale *= 2
	}
	s.recompute()
	s.eng.RequestFullRegrid()
}

// nextPoints steps the sweep length. The plot waits for the first sweep
// with the new length before it draws again.
func (s *system) nextPoints() {
	n := pointSteps[0]
	for _, p := range pointSteps {
		if p > s.set.Points() {
			n = p
			break
		}
	}
	s.set.SweepPoints = n
	for i := range s.set.Markers {
		if mk := &s.set.Markers[i]; mk.Index >= n {
			mk.Index = n - 1
		}
	}
	s.stale = true
	s.send(kernel.MsgSetPoints, int32(n))
	s.eng.RequestFullRegrid()
	s.eng.RequestRedraw(plot.RedrawFrequency)
}
