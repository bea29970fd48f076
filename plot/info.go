package plot

import (
	"unicode/utf8"

	"vnaplot/plot/format"
)

const (
	lineHeight   = 7
	speedOfLight = 299792458
)

// drawMarkerInfo writes the info block into a tile of row 0. Positions are
// plot coordinates shifted into the tile of column m.
func (e *Engine) drawMarkerInfo(m int) {
	s := e.s
	if s.ActiveMarker < 0 || s.ActiveMarker >= len(s.Markers) {
		return
	}
	shift := m*TileW - CellOffsetX
	idx := e.markerIndex(s.ActiveMarker)
	tile := e.tile

	j := 0
	if s.PreviousMarker != -1 && s.CurrentTrace >= 0 && s.CurrentTrace < len(s.Traces) {
		tr := &s.Traces[s.CurrentTrace]
		data := e.channel(tr)
		for mk := range s.Markers {
			if !s.Markers[mk].Enabled {
				continue
			}
			x := 1 + (j%2)*146 - shift
			y := 1 + (j/2)*lineHeight
			tile.DrawStringInvert(x, y, "MK"+string(rune('1'+mk)), tr.Color, mk == s.ActiveMarker)
			x += 20
			i := e.markerIndex(mk)
			delta := s.MarkerDelta && mk != s.ActiveMarker
			freq := e.FrequencyAt(i)
			if delta {
				tile.DrawString(x, y, format.FrequencyShort(freq-e.FrequencyAt(idx), format.Delta), tr.Color)
			} else {
				tile.DrawString(x, y, format.FrequencyShort(freq, 0), tr.Color)
			}
			x += 64
			var v string
			if delta {
				v = tr.DeltaString(data, i, idx, e.FrequencyAt, s.SmithFormat)
			} else {
				v = tr.ValueString(data, i, e.FrequencyAt, s.SmithFormat)
			}
			tile.DrawString(x, y, v, ColorWhite)
			j++
		}

		prev := s.PreviousMarker
		if !s.MarkerDelta && prev >= 0 && prev < len(s.Markers) && prev != s.ActiveMarker && s.Markers[prev].Enabled {
			idx0 := e.markerIndex(prev)
			x := 192 - shift
			y := 1 + (j/2)*lineHeight
			tile.DrawString(x, y, string(format.Delta)+string(rune('1'+prev))+":", ColorWhite)
			x += 19
			var v string
			if s.Domain == DomainFrequency {
				v = format.Frequency(e.FrequencyAt(idx) - e.FrequencyAt(idx0))
			} else {
				v = format.ValueWithPrefix(e.TimeOfIndex(idx)-e.TimeOfIndex(idx0), 's') + " " +
					format.ValueWithPrefix(e.DistanceOfIndex(idx)-e.DistanceOfIndex(idx0), 'm')
			}
			tile.DrawString(x, y, format.Clip(v), ColorWhite)
		}
	} else {
		for t := range s.Traces {
			tr := &s.Traces[t]
			if !tr.Enabled {
				continue
			}
			x := 1 + (j%2)*146 - shift
			y := 1 + (j/2)*lineHeight
			tile.DrawStringInvert(x, y, "CH"+string(rune('0'+tr.Channel)), tr.Color, t == s.CurrentTrace)
			x += 20
			tile.DrawString(x, y, tr.Info(), tr.Color)
			x += 64
			tile.DrawString(x, y, tr.ValueString(e.channel(tr), idx, e.FrequencyAt, s.SmithFormat), ColorWhite)
			j++
		}

		x := 192 + 5 - shift
		y := 1 + (j/2)*lineHeight
		tile.DrawStringInvert(x, y, string(rune('1'+s.ActiveMarker))+":", ColorWhite, s.Lever == LeverMarker)
		x += 14
		var v string
		if s.Domain == DomainFrequency {
			v = format.Frequency(e.FrequencyAt(idx))
		} else {
			v = format.ValueWithPrefix(e.TimeOfIndex(idx), 's') + " " +
				format.ValueWithPrefix(e.DistanceOfIndex(idx), 'm')
		}
		tile.DrawString(x, y, format.Clip(v), ColorWhite)
	}

	if s.ElectricalDelay != 0 {
		x := 21 - shift
		y := 1 + ((j+1)/2)*lineHeight
		tile.DrawString(x, y, "Edelay", ColorWhite)
		x += 7 * 5
		v := format.ValueWithPrefix(s.ElectricalDelay*1e-12, 's')
		tile.DrawString(x, y, v, ColorWhite)
		x += utf8.RuneCountInString(v)*5 + 5
		tile.DrawString(x, y, format.ValueWithPrefix(s.ElectricalDelay*speedOfLight*1e-12*s.VelocityFactor, 'm'), ColorWhite)
	}
}

// TimeOfIndex returns the time of transformed sample idx in seconds.
func (e *Engine) TimeOfIndex(idx int) float32 {
	df := float32(e.FrequencyAt(1) - e.FrequencyAt(0))
	if df == 0 || e.s.FFTSize <= 0 {
		return 0
	}
	return 1 / df / float32(e.s.FFTSize) * float32(idx)
}

// DistanceOfIndex returns the one-way cable length of transformed sample idx
// in metres.
func (e *Engine) DistanceOfIndex(idx int) float32 {
	df := float32(e.FrequencyAt(1) - e.FrequencyAt(0))
	if df == 0 || e.s.FFTSize <= 0 {
		return 0
	}
	d := float32(idx) * speedOfLight / (df * float32(e.s.FFTSize) * 2)
	return d * e.s.VelocityFactor
}
