package trace

import (
	"fmt"
	"math"

	"vnaplot/plot/format"
)

const twoPi = 6.283184

// Info returns the trace heading, e.g. "LOGMAG 10dB/".
func (t *Trace) Info() string {
	name := t.Type.String()
	switch t.Type {
	case LogMag:
		return format.Clip(fmt.Sprintf("%s %ddB/", name, int(t.Scale)))
	case Phase:
		return format.Clip(fmt.Sprintf("%s %d%c/", name, int(t.Scale), format.Degree))
	case Smith, Polar:
		return format.Clip(fmt.Sprintf("%s %.1fFS", name, t.Scale))
	default:
		return format.Clip(name + " " + format.ValueWithPrefix(t.Scale, '/'))
	}
}

// ValueString formats the trace value at sample i.
func (t *Trace) ValueString(data []complex64, i int, freq FrequencyFunc, sf SmithFormat) string {
	if i < 0 || i >= len(data) {
		return ""
	}
	v := data[i]
	switch t.Type {
	case LogMag:
		db := LogMagDB(v)
		if math.IsInf(float64(db), -1) {
			return "-INF dB"
		}
		return fmt.Sprintf("%.2fdB", db)
	case Phase:
		return fmt.Sprintf("%.2f%c", PhaseDeg(v), format.Degree)
	case Delay:
		return format.ValueWithPrefix(GroupDelayAt(data, i, freq), 's')
	case Linear:
		return fmt.Sprintf("%.2f", Magnitude(v))
	case SWR:
		return fmt.Sprintf("%.2f", VSWR(v))
	case Smith:
		var hz int64
		if freq != nil {
			hz = freq(i)
		}
		return SmithValue(v, hz, sf)
	case Real:
		return fmt.Sprintf("%.2f", real(v))
	case Imag:
		return fmt.Sprintf("%.2fj", imag(v))
	case R:
		return format.ValueWithPrefix(Resistance(v), format.Ohm)
	case X:
		return format.ValueWithPrefix(Reactance(v), format.Ohm)
	case Polar:
		return fmt.Sprintf("%.2f %.2fj", real(v), imag(v))
	}
	return ""
}

// DeltaString formats the difference between samples i and ref. Chart and
// impedance types have no meaningful difference and show the absolute value.
func (t *Trace) DeltaString(data []complex64, i, ref int, freq FrequencyFunc, sf SmithFormat) string {
	if i < 0 || i >= len(data) || ref < 0 || ref >= len(data) {
		return ""
	}
	v, w := data[i], data[ref]
	switch t.Type {
	case LogMag:
		d := LogMagDB(v) - LogMagDB(w)
		if math.IsInf(float64(d), 0) || math.IsNaN(float64(d)) {
			return fmt.Sprintf("%c-INF dB", format.Delta)
		}
		return format.Clip(fmt.Sprintf("%c%.2fdB", format.Delta, d))
	case Phase:
		return format.Clip(fmt.Sprintf("%c%.2f%c", format.Delta, PhaseDeg(v)-PhaseDeg(w), format.Degree))
	case Delay:
		d := GroupDelayAt(data, i, freq) - GroupDelayAt(data, ref, freq)
		return format.Clip(string(format.Delta) + format.ValueWithPrefix(d, 's'))
	case Linear:
		return format.Clip(fmt.Sprintf("%c%.2f", format.Delta, Magnitude(v)-Magnitude(w)))
	case SWR:
		return format.Clip(fmt.Sprintf("%c%.2f", format.Delta, VSWR(v)-VSWR(w)))
	case Real:
		return format.Clip(fmt.Sprintf("%c%.2f", format.Delta, real(v)-real(w)))
	case Imag:
		return format.Clip(fmt.Sprintf("%c%.2fj", format.Delta, imag(v)-imag(w)))
	}
	return t.ValueString(data, i, freq, sf)
}

// SmithValue formats a reflection coefficient in the selected Smith marker
// format. hz is needed by the RLC form only.
func SmithValue(v complex64, hz int64, sf SmithFormat) string {
	zr, zi := Impedance(v)
	switch sf {
	case SmithLin:
		return format.Clip(fmt.Sprintf("%.2f %.1f%c", Magnitude(v), PhaseDeg(v), format.Degree))
	case SmithLog:
		db := LogMagDB(v)
		if math.IsInf(float64(db), -1) {
			return "-INF dB"
		}
		return format.Clip(fmt.Sprintf("%.1fdB %.1f%c", db, PhaseDeg(v), format.Degree))
	case SmithReIm:
		s := format.ValueWithPrefix(real(v), 0)
		if imag(v) >= 0 {
			s += "+"
		}
		return format.Clip(s + format.ValueWithPrefix(imag(v), 'j'))
	case SmithRX:
		s := format.ValueWithPrefix(zr, format.Ohm)
		if zi >= 0 {
			s += " "
		}
		return format.Clip(s + format.ValueWithPrefix(zi, 'j'))
	case SmithRLC:
		s := format.ValueWithPrefix(zr, format.Ohm) + " "
		if hz == 0 {
			return format.Clip(s)
		}
		if zi < 0 {
			c := -1 / (twoPi * float32(hz) * zi)
			return format.Clip(s + format.ValueWithPrefix(c, 'F'))
		}
		l := zi / (twoPi * float32(hz))
		return format.Clip(s + format.ValueWithPrefix(l, 'H'))
	}
	return ""
}
