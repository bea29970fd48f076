// Package format renders measurement values and frequencies into the short
// label strings shown on the plot.
//
// Every function returns at most MaxLen runes, mirroring the fixed label
// buffers of the display code.
package format

import (
	"fmt"
	"strings"
)

// MaxLen is the longest label any formatter produces.
const MaxLen = 23

// Symbols used by labels.
const (
	Micro  = 'µ'
	Ohm    = 'Ω'
	Degree = '°'
	Delta  = 'Δ'
)

// ValueWithPrefix formats val with an SI prefix (f..G) and an optional unit
// rune (0 for none). Three significant digits are kept below 100.
func ValueWithPrefix(val float32, unit rune) string {
	var b strings.Builder
	if val < 0 {
		val = -val
		b.WriteByte('-')
	}

	var prefix rune
	switch {
	case val == 0:
	case val < 1e-12:
		prefix = 'f'
		val *= 1e15
	case val < 1e-9:
		prefix = 'p'
		val *= 1e12
	case val < 1e-6:
		prefix = 'n'
		val *= 1e9
	case val < 1e-3:
		prefix = Micro
		val *= 1e6
	case val < 1:
		prefix = 'm'
		val *= 1e3
	case val < 1e3:
	case val < 1e6:
		prefix = 'k'
		val /= 1e3
	case val < 1e9:
		prefix = 'M'
		val /= 1e6
	default:
		prefix = 'G'
		val /= 1e9
	}

	switch {
	case val < 10:
		fmt.Fprintf(&b, "%.2f", val)
	case val < 100:
		fmt.Fprintf(&b, "%.1f", val)
	default:
		fmt.Fprintf(&b, "%d", int(val))
	}
	if prefix != 0 {
		b.WriteRune(prefix)
	}
	if unit != 0 {
		b.WriteRune(unit)
	}
	return Clip(b.String())
}

// Frequency formats hz as "N Hz", "N.NNN kHz" or "N.NNN NNN MHz".
func Frequency(hz int64) string {
	sign := ""
	if hz < 0 {
		hz = -hz
		sign = "-"
	}
	var s string
	switch {
	case hz < 1000:
		s = fmt.Sprintf("%d Hz", hz)
	case hz < 1000000:
		s = fmt.Sprintf("%d.%03d kHz", hz/1000, hz%1000)
	default:
		s = fmt.Sprintf("%d.%03d %03d MHz", hz/1000000, (hz/1000)%1000, hz%1000)
	}
	return Clip(sign + s)
}

// FrequencyShort formats hz for the marker table. A non-zero prefix rune is
// written first (Delta for relative values). The MHz form keeps the first
// nine runes and appends the unit.
func FrequencyShort(hz int64, prefix rune) string {
	var b strings.Builder
	if prefix != 0 {
		b.WriteRune(prefix)
	}
	if hz < 0 {
		hz = -hz
		b.WriteByte('-')
	}
	switch {
	case hz < 1000:
		fmt.Fprintf(&b, "%d Hz", hz)
	case hz < 1000000:
		fmt.Fprintf(&b, "%d.%03dkHz", hz/1000, hz%1000)
	default:
		fmt.Fprintf(&b, "%d.%06d", hz/1000000, hz%1000000)
		r := []rune(b.String())
		if len(r) > 9 {
			r = r[:9]
		}
		return Clip(string(r) + "MHz")
	}
	return Clip(b.String())
}

// Pad right-pads s with spaces to n-1 runes, clearing stale characters of a
// previous, longer label drawn at the same place.
func Pad(s string, n int) string {
	r := []rune(s)
	if len(r) >= n-1 {
		if n-1 < 0 {
			return ""
		}
		return string(r[:n-1])
	}
	return s + strings.Repeat(" ", n-1-len(r))
}

// Clip truncates s to MaxLen runes.
func Clip(s string) string {
	if len(s) <= MaxLen {
		return s
	}
	r := []rune(s)
	if len(r) <= MaxLen {
		return s
	}
	return string(r[:MaxLen])
}
