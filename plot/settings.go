package plot

import (
	"vnaplot/plot/grid"
	"vnaplot/plot/index"
	"vnaplot/plot/raster"
	"vnaplot/plot/trace"
)

// Screen geometry, in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 240

	OffsetX     = 15
	OffsetY     = 0
	Width       = 291
	Height      = 233
	CellOffsetX = 5
	AreaWidth   = Width + CellOffsetX*2
	GridY       = 29

	TileW = index.TileSize
	TileH = index.TileSize

	// Chart centre and radius in plot-area coordinates.
	ChartCenterX = 146
	ChartCenterY = 116
	ChartRadius  = 116

	SweepPointsMax = index.SweepPointsMax
)

// Redraw request flags.
type RedrawFlags uint8

const (
	RedrawCells RedrawFlags = 1 << iota
	RedrawFrequency
	RedrawCalStatus
)

// Domain selects whether the sweep is shown over frequency or, after the
// transform, over time.
type Domain uint8

const (
	DomainFrequency Domain = iota
	DomainTime
)

// Lever is what the rotary/jog control currently adjusts; the selected item
// is drawn inverted.
type Lever uint8

const (
	LeverMarker Lever = iota
	LeverCenter
	LeverSpan
)

// Colors.
var (
	ColorWhite = raster.RGB565(0xff, 0xff, 0xff)
	ColorShade = raster.RGB565(40, 40, 40)
	ColorGrid  = raster.RGB565(128, 128, 128)
)

// DefaultTraceColors are the power-on trace colors.
var DefaultTraceColors = [trace.TracesMax]uint16{
	raster.RGB565(255, 255, 0),
	raster.RGB565(0, 255, 255),
	raster.RGB565(0, 255, 0),
	raster.RGB565(255, 0, 255),
}

// Settings is the display state the engine reads. It is owned by the
// application; after changing it call the matching Request method.
type Settings struct {
	Traces  [trace.TracesMax]trace.Trace
	Markers [trace.MarkersMax]trace.Marker

	// ActiveMarker, PreviousMarker and CurrentTrace are -1 when unset.
	ActiveMarker   int
	PreviousMarker int
	CurrentTrace   int
	MarkerDelta    bool
	Lever          Lever

	SmithFormat     trace.SmithFormat
	Domain          Domain
	VelocityFactor  float32
	ElectricalDelay float32 // picoseconds

	GridColor    uint16
	CheckerBoard bool
	ShadeCells   bool
	Admittance   bool

	Sweep       grid.Sweep
	SweepPoints int
	FFTSize     int
}

// DefaultSettings returns the power-on display state.
func DefaultSettings() Settings {
	return Settings{
		Traces: trace.Defaults(DefaultTraceColors),
		Markers: [trace.MarkersMax]trace.Marker{
			{Enabled: true, Index: 30},
			{Enabled: false, Index: 40},
			{Enabled: false, Index: 60},
			{Enabled: false, Index: 80},
		},
		ActiveMarker:   0,
		PreviousMarker: -1,
		CurrentTrace:   0,
		SmithFormat:    trace.SmithRX,
		VelocityFactor: 0.7,
		GridColor:      ColorGrid,
		Sweep:          grid.StartStop(50000, 900000000),
		SweepPoints:    101,
		FFTSize:        256,
	}
}

// Points returns the sweep point count clamped to the index table.
func (s *Settings) Points() int {
	switch {
	case s.SweepPoints < 1:
		return 1
	case s.SweepPoints > SweepPointsMax:
		return SweepPointsMax
	}
	return s.SweepPoints
}
