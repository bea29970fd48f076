// Package plot renders measurement traces on the instrument display tile by
// tile, redrawing only the tiles whose content changed.
//
// New sweep data goes through RecomputeIndices, which remembers where every
// sample is drawn and marks the tiles touched by both the old and the new
// trace positions. DrawAll then composes the marked tiles and hands each one
// to the TileSink. The engine is not safe for concurrent use.
package plot

import (
	"fmt"

	"vnaplot/hal"
	"vnaplot/plot/grid"
	"vnaplot/plot/index"
	"vnaplot/plot/markmap"
	"vnaplot/plot/raster"
	"vnaplot/plot/search"
	"vnaplot/plot/trace"
)

// TileSink receives finished tiles. x and y are screen coordinates; pix
// holds w*h RGB565 pixels, row-major, and is reused after the call returns.
type TileSink interface {
	TransferTile(x, y, w, h int, pix []uint16) error
}

// Overlay draws the parts of the screen outside the plot area.
type Overlay interface {
	DrawFrequencies()
	DrawCalStatus()
}

// Config wires an Engine to its collaborators.
type Config struct {
	Settings *Settings
	// Freq returns the stimulus of sample i. Nil derives it from
	// Settings.Sweep.
	Freq trace.FrequencyFunc
	Sink TileSink
	// Overlay may be nil.
	Overlay Overlay
	// Tick is called after every drawn tile; returning false cancels the
	// pass. Nil never cancels.
	Tick func() bool
	// Log may be nil.
	Log hal.Logger
}

// Engine is the plot renderer.
type Engine struct {
	cfg    Config
	s      *Settings
	layout index.Layout

	table index.Table
	data  trace.Data
	mm    markmap.Map
	tile  *raster.Tile
	rect  grid.Rect

	request  RedrawFlags
	canceled bool
}

// New returns an engine. Call Initialize before the first DrawAll.
func New(cfg Config) *Engine {
	if cfg.Settings == nil {
		s := DefaultSettings()
		cfg.Settings = &s
	}
	e := &Engine{
		cfg: cfg,
		s:   cfg.Settings,
		layout: index.Layout{
			Width:       Width,
			Height:      Height,
			GridY:       GridY,
			CellOffsetX: CellOffsetX,
		},
		tile: raster.New(TileW, TileH),
		rect: grid.Rect{Width: Width, GridY: GridY},
	}
	return e
}

// Settings returns the display state the engine reads.
func (e *Engine) Settings() *Settings { return e.s }

// Initialize forces a full redraw of the plot and the surrounding overlay.
func (e *Engine) Initialize() {
	e.UpdateGrid()
	e.mm.ForceAll()
	e.request |= RedrawCells | RedrawFrequency | RedrawCalStatus
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Log == nil {
		return
	}
	e.cfg.Log.WriteLineString(fmt.Sprintf("plot: "+format, args...))
}

// FrequencyAt returns the stimulus frequency of sample i.
func (e *Engine) FrequencyAt(i int) int64 {
	if e.cfg.Freq != nil {
		return e.cfg.Freq(i)
	}
	return e.s.Sweep.FrequencyAt(i, e.s.Points())
}

// Index returns the packed positions of trace t for the current sweep.
func (e *Engine) Index(t int) []index.Packed {
	if t < 0 || t >= trace.TracesMax {
		return nil
	}
	return e.table[t][:e.s.Points()]
}

// Pending returns the redraw requests not yet served.
func (e *Engine) Pending() RedrawFlags { return e.request }

// IsMarked reports whether tile (col, row) is waiting to be drawn.
func (e *Engine) IsMarked(col, row int) bool { return e.mm.IsMarked(col, row) }

// RecomputeIndices stores a new sweep and recomputes every sample position.
// Tiles under the old and the new positions, and under every marker, are
// marked for redraw.
func (e *Engine) RecomputeIndices(d trace.Data) {
	e.markCellsFromIndex()
	e.data = d

	points := e.s.Points()
	for i := 0; i < points; i++ {
		x := e.layout.ColumnX(i, points)
		for t := range e.s.Traces {
			tr := &e.s.Traces[t]
			if !tr.Enabled {
				continue
			}
			e.table[t][i] = e.layout.Compute(x, tr, e.channel(tr), i, e.FrequencyAt)
		}
	}

	e.markCellsFromIndex()
	e.markAllMarkers()
	e.request |= RedrawCells
}

func (e *Engine) channel(tr *trace.Trace) []complex64 {
	if int(tr.Channel) >= len(e.data) {
		return nil
	}
	return e.data[tr.Channel]
}

// markCellsFromIndex marks every tile crossed by the polyline of each
// enabled trace.
func (e *Engine) markCellsFromIndex() {
	points := e.s.Points()
	stalled := false
	for t := range e.s.Traces {
		if !e.s.Traces[t].Enabled {
			continue
		}
		idx := e.table[t][:points]
		e.mm.MarkPoint(idx[0].X(), idx[0].Y())
		for i := 1; i < points; i++ {
			p0, p1 := idx[i-1], idx[i]
			if !e.mm.MarkLine(p0.X(), p0.Y(), p1.X(), p1.Y()) {
				stalled = true
			}
		}
	}
	if stalled {
		e.logf("tile walk made no progress")
	}
}

func (e *Engine) markerIndex(m int) int {
	i := e.s.Markers[m].Index
	if points := e.s.Points(); i >= points {
		i = points - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (e *Engine) markMarker(m int) {
	if m < 0 || m >= trace.MarkersMax || !e.s.Markers[m].Enabled {
		return
	}
	i := e.markerIndex(m)
	for t := range e.s.Traces {
		if !e.s.Traces[t].Enabled {
			continue
		}
		p := e.table[t][i]
		e.mm.MarkMarker(p.X(), p.Y())
	}
}

func (e *Engine) markAllMarkers() {
	for m := range e.s.Markers {
		e.markMarker(m)
	}
	e.mm.MarkUpperArea()
}

// RequestRedraw adds redraw requests served by the next DrawAll.
func (e *Engine) RequestRedraw(flags RedrawFlags) { e.request |= flags }

// RequestFullRegrid marks every tile, e.g. after a scale change.
func (e *Engine) RequestFullRegrid() {
	e.mm.ForceAll()
	e.request |= RedrawCells
}

// UpdateGrid recomputes the rectangular grid from the sweep range and
// schedules a full redraw including the frequency overlay.
func (e *Engine) UpdateGrid() {
	e.rect.Update(e.s.Sweep.Start(), e.s.Sweep.Span())
	e.mm.ForceAll()
	e.request |= RedrawCells | RedrawFrequency
}

// RequestMarkerRedraw marks the tiles under marker m and, with updateInfo,
// the info row.
func (e *Engine) RequestMarkerRedraw(m int, updateInfo bool) {
	e.request |= RedrawCells
	e.markMarker(m)
	if updateInfo {
		e.mm.MarkUpperArea()
	}
}

// RedrawMarker redraws the tiles under marker m immediately.
func (e *Engine) RedrawMarker(m int, updateInfo bool) {
	e.RequestMarkerRedraw(m, updateInfo)
	e.DrawAllCells(true)
}

// RequestCellsBehindMenu schedules the tiles a closing side menu uncovers.
func (e *Engine) RequestCellsBehindMenu() {
	e.mm.MarkBehindMenu()
	e.request |= RedrawCells
}

// RequestCellsBehindNumericInput schedules the tiles a closing numeric
// input line uncovers.
func (e *Engine) RequestCellsBehindNumericInput() {
	e.mm.MarkBehindNumericInput()
	e.request |= RedrawCells
}

// Cancel aborts the running pass after the current tile.
func (e *Engine) Cancel() { e.canceled = true }

// DrawAll serves the pending redraw requests. A canceled pass keeps the
// cells request pending; the tiles it did not reach stay marked.
func (e *Engine) DrawAll() {
	e.canceled = false
	req := e.request
	e.request = 0
	if req&RedrawCells != 0 && !e.DrawAllCells(true) {
		e.request |= RedrawCells
	}
	if e.cfg.Overlay != nil {
		if req&RedrawFrequency != 0 {
			e.cfg.Overlay.DrawFrequencies()
		}
		if req&RedrawCalStatus != 0 {
			e.cfg.Overlay.DrawCalStatus()
		}
	}
}

// DrawAllCells draws every marked tile, yielding to Tick after each. With
// flush it retires the marks once all tiles are drawn. It returns false if
// the pass was canceled, in which case no marks are retired.
func (e *Engine) DrawAllCells(flush bool) bool {
	cols := (AreaWidth + TileW - 1) / TileW
	rows := (Height + TileH - 1) / TileH
	for m := 0; m < cols; m++ {
		for n := 0; n < rows; n++ {
			if !e.mm.IsMarked(m, n) {
				continue
			}
			e.drawCell(m, n)
			if e.cfg.Tick != nil && !e.cfg.Tick() {
				e.canceled = true
			}
			if e.canceled {
				return false
			}
		}
	}
	if flush {
		e.mm.Flush()
	}
	return true
}

type elevation []index.Packed

func (v elevation) Len() int     { return len(v) }
func (v elevation) At(i int) int { return -v[i].Y() }

func (e *Engine) currentSeries() (elevation, bool) {
	t := e.s.CurrentTrace
	if t < 0 || t >= trace.TracesMax {
		return nil, false
	}
	return elevation(e.Index(t)), true
}

// MarkerSearch returns the sample of the current trace drawn highest (Max)
// or lowest (Min), or -1 without a current trace.
func (e *Engine) MarkerSearch(mode search.Mode) int {
	v, ok := e.currentSeries()
	if !ok {
		return -1
	}
	return search.Extremum(v, mode)
}

// MarkerSearchLeft returns the next peak (Max) or dip (Min) of the current
// trace left of sample from, or -1.
func (e *Engine) MarkerSearchLeft(mode search.Mode, from int) int {
	v, ok := e.currentSeries()
	if !ok {
		return -1
	}
	return search.LeftOf(v, mode, from)
}

// MarkerSearchRight is MarkerSearchLeft towards higher frequencies.
func (e *Engine) MarkerSearchRight(mode search.Mode, from int) int {
	v, ok := e.currentSeries()
	if !ok {
		return -1
	}
	return search.RightOf(v, mode, from)
}

// NearestIndex returns the sample of trace t closest to screen pixel (x, y),
// or -1 if none is within reach.
func (e *Engine) NearestIndex(x, y, t int) int {
	return search.Nearest(e.Index(t), x, y, OffsetX-CellOffsetX, OffsetY)
}

// MarkerPosition returns where marker m sits on trace t, in plot
// coordinates including the left cell offset.
func (e *Engine) MarkerPosition(m, t int) (x, y int) {
	if m < 0 || m >= trace.MarkersMax || t < 0 || t >= trace.TracesMax {
		return 0, 0
	}
	p := e.table[t][e.markerIndex(m)]
	return p.X(), p.Y()
}
