// Package trace holds the trace and marker model read by the plot engine and
// the transforms from a complex reflection coefficient to displayed values.
package trace

const (
	TracesMax   = 4
	MarkersMax  = 4
	ChannelsMax = 2
)

// Type selects how a trace transforms its channel data.
type Type uint8

const (
	LogMag Type = iota
	Phase
	Delay
	Smith
	Polar
	Linear
	SWR
	Real
	Imag
	R
	X

	typeCount
)

var typeNames = [typeCount]string{
	LogMag: "LOGMAG",
	Phase:  "PHASE",
	Delay:  "DELAY",
	Smith:  "SMITH",
	Polar:  "POLAR",
	Linear: "LINEAR",
	SWR:    "SWR",
	Real:   "REAL",
	Imag:   "IMAG",
	R:      "R",
	X:      "X",
}

var defaultScales = [typeCount]float32{
	LogMag: 10,
	Phase:  90,
	Delay:  1e-9,
	Smith:  1,
	Polar:  1,
	Linear: 0.125,
	SWR:    1,
	Real:   0.25,
	Imag:   0.25,
	R:      100,
	X:      100,
}

func (t Type) String() string {
	if t >= typeCount {
		return "?"
	}
	return typeNames[t]
}

// IsChart reports whether the type plots on a circular chart instead of
// rectangular axes.
func (t Type) IsChart() bool { return t == Smith || t == Polar }

// DefaultScale returns the per-division scale a freshly selected type uses.
func (t Type) DefaultScale() float32 {
	if t >= typeCount {
		return 1
	}
	return defaultScales[t]
}

// Next cycles through the types in display order.
func (t Type) Next() Type {
	return (t + 1) % typeCount
}

// Trace is one plotted transform of a measurement channel.
//
// Scale is the value per vertical division (full scale for charts) and RefPos
// the division, counted from the bottom, that the value zero sits on.
type Trace struct {
	Enabled bool
	Channel uint8
	Type    Type
	Scale   float32
	RefPos  float32
	Color   uint16
}

// Marker is a cursor pinned to a sample index.
type Marker struct {
	Enabled bool
	Index   int
}

// Data is the latest sweep: one slice of complex samples per channel, indexed
// by sweep order.
type Data [ChannelsMax][]complex64

// SmithFormat selects how Smith trace values are written.
type SmithFormat uint8

const (
	SmithLin SmithFormat = iota
	SmithLog
	SmithReIm
	SmithRX
	SmithRLC
)

// FrequencyFunc returns the stimulus frequency of sample i in Hz.
type FrequencyFunc func(i int) int64

// Defaults returns the power-on trace set: two log-magnitude traces, a Smith
// chart and a phase trace, the first three enabled.
func Defaults(colors [TracesMax]uint16) [TracesMax]Trace {
	return [TracesMax]Trace{
		{Enabled: true, Channel: 0, Type: LogMag, Scale: 10, RefPos: 7, Color: colors[0]},
		{Enabled: true, Channel: 1, Type: LogMag, Scale: 10, RefPos: 7, Color: colors[1]},
		{Enabled: true, Channel: 0, Type: Smith, Scale: 1, RefPos: 0, Color: colors[2]},
		{Enabled: false, Channel: 1, Type: Phase, Scale: 90, RefPos: 4, Color: colors[3]},
	}
}
