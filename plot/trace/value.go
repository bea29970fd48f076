package trace

import (
	"math"
	"math/cmplx"
)

// Z0 is the reference impedance used for R/X conversions.
const Z0 = 50

// LogMagDB returns 10·log10(|v|²); -Inf for v == 0.
func LogMagDB(v complex64) float32 {
	re, im := float64(real(v)), float64(imag(v))
	return float32(math.Log10(re*re+im*im) * 10)
}

// PhaseDeg returns the argument of v in degrees, (-180, 180].
func PhaseDeg(v complex64) float32 {
	return float32(math.Atan2(float64(imag(v)), float64(real(v))) * 180 / math.Pi)
}

// Magnitude returns |v|.
func Magnitude(v complex64) float32 {
	re, im := float64(real(v)), float64(imag(v))
	return float32(math.Sqrt(re*re + im*im))
}

// VSWR returns (1+|v|)/(1-|v|), +Inf once |v| exceeds one.
func VSWR(v complex64) float32 {
	x := Magnitude(v)
	if x > 1 {
		return float32(math.Inf(1))
	}
	return (1 + x) / (1 - x)
}

// Impedance converts a reflection coefficient into series R and X in ohms.
func Impedance(v complex64) (r, x float32) {
	re, im := real(v), imag(v)
	d := Z0 / ((1-re)*(1-re) + im*im)
	r = ((1+re)*(1-re) - im*im) * d
	x = 2 * im * d
	return r, x
}

// Resistance returns the real part of the load impedance.
func Resistance(v complex64) float32 {
	r, _ := Impedance(v)
	return r
}

// Reactance returns the imaginary part of the load impedance.
func Reactance(v complex64) float32 {
	_, x := Impedance(v)
	return x
}

// GroupDelay returns the delay implied by the phase change from v to w over
// deltaF hertz.
func GroupDelay(v, w complex64, deltaF float32) float32 {
	if v == 0 || deltaF == 0 {
		return 0
	}
	q := complex128(w) / complex128(v)
	return float32(cmplx.Phase(q) / (2 * math.Pi * float64(deltaF)))
}

// GroupDelayAt estimates the group delay at sample i: a one-sided difference
// at both ends of the sweep, a centered one elsewhere.
func GroupDelayAt(data []complex64, i int, freq FrequencyFunc) float32 {
	n := len(data)
	if n < 2 || i < 0 || i >= n || freq == nil {
		return 0
	}
	switch i {
	case 0:
		return GroupDelay(data[0], data[1], float32(freq(1)-freq(0)))
	case n - 1:
		return GroupDelay(data[i-1], data[i], float32(freq(i)-freq(i-1)))
	default:
		return GroupDelay(data[i-1], data[i+1], float32(freq(i+1)-freq(i-1)))
	}
}

// Position returns the vertical position of sample i in divisions from the
// top of the plot. The result is unclamped; chart types return 0.
func (t *Trace) Position(data []complex64, i int, freq FrequencyFunc) float32 {
	if i < 0 || i >= len(data) {
		return 0
	}
	refpos := 8 - t.RefPos
	scale := float32(1)
	if t.Scale != 0 {
		scale = 1 / t.Scale
	}
	v := data[i]
	switch t.Type {
	case LogMag:
		return refpos - LogMagDB(v)*scale
	case Phase:
		return refpos - PhaseDeg(v)*scale
	case Delay:
		return refpos - GroupDelayAt(data, i, freq)*scale
	case Linear:
		return refpos - Magnitude(v)*scale
	case SWR:
		return refpos + (1-VSWR(v))*scale
	case Real:
		return refpos - real(v)*scale
	case Imag:
		return refpos - imag(v)*scale
	case R:
		return refpos - Resistance(v)*scale
	case X:
		return refpos - Reactance(v)*scale
	}
	return 0
}
