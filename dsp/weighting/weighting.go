package weighting

import (
	"fmt"
	"math"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole for A, B, C
	f2 = 107.65265 // single pole for A
	f3 = 158.48932 // single pole for B
	f4 = 737.86223 // single pole for A
	f5 = 12194.217 // double pole for A, B, C
)

// referenceFreq is the normalization frequency; all curves have unity gain here.
const referenceFreq = 1000.0

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672.
	// It approximates the 40-phon equal-loudness contour and is the most
	// widely used weighting for noise measurements.
	TypeA Type = iota

	// TypeB is the B-weighting curve per IEC 61672.
	// It approximates the 70-phon equal-loudness contour and is rarely
	// used in modern practice.
	TypeB

	// TypeC is the C-weighting curve per IEC 61672.
	// It approximates the 100-phon equal-loudness contour and is used
	// for peak measurements and C-A difference calculations.
	TypeC

	// TypeZ is the Z-weighting (zero-weighting) per IEC 61672.
	// It applies no frequency weighting (unity gain at all frequencies).
	TypeZ

	typeCount // sentinel for validation
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known weighting type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// Gain returns the linear magnitude gain of the weighting curve at freqHz,
// normalized so that Gain(t, 1000) == 1.
//
// The gain is evaluated from the analog IEC 61672 transfer function
// magnitude, not from a discretized filter, so it is exact at any frequency
// and independent of a sample rate. Gain(t, 0) is 0 for A, B, and C (all
// three have zeros at DC) and 1 for Z. Negative frequencies are evaluated
// by symmetry.
func Gain(t Type, freqHz float64) float64 {
	if t == TypeZ {
		return 1
	}

	freqHz = math.Abs(freqHz)

	return rawGain(t, freqHz) / rawGain(t, referenceFreq)
}

// GainDB returns the weighting gain at freqHz in decibels.
// Returns -Inf where the gain is zero (DC for A, B, and C).
func GainDB(t Type, freqHz float64) float64 {
	g := Gain(t, freqHz)
	if g <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(g)
}

// Curve evaluates the weighting gain at each frequency in freqsHz and
// returns the gains as a new slice.
func Curve(t Type, freqsHz []float64) []float64 {
	if len(freqsHz) == 0 {
		return nil
	}

	out := make([]float64, len(freqsHz))
	for i, f := range freqsHz {
		out[i] = Gain(t, f)
	}

	return out
}

// Apply multiplies each element of gains by the weighting gain at the
// corresponding frequency, in place.
//
// freqsHz and gains must have the same length.
func Apply(t Type, freqsHz, gains []float64) error {
	if len(freqsHz) != len(gains) {
		return fmt.Errorf("weighting: frequency/gain length mismatch: %d != %d", len(freqsHz), len(gains))
	}

	for i, f := range freqsHz {
		gains[i] *= Gain(t, f)
	}

	return nil
}

// rawGain evaluates the unnormalized analog magnitude response.
//
// The curves are products of first- and second-order pole magnitudes with
// zeros at DC:
//
//	|H_A(f)| = f5^2 * f^4 / ((f^2+f1^2) * sqrt((f^2+f2^2)*(f^2+f4^2)) * (f^2+f5^2))
//	|H_B(f)| = f5^2 * f^3 / ((f^2+f1^2) * sqrt(f^2+f3^2) * (f^2+f5^2))
//	|H_C(f)| = f5^2 * f^2 / ((f^2+f1^2) * (f^2+f5^2))
func rawGain(t Type, f float64) float64 {
	ff := f * f

	switch t {
	case TypeA:
		num := f5 * f5 * ff * ff
		den := (ff + f1*f1) * math.Sqrt((ff+f2*f2)*(ff+f4*f4)) * (ff + f5*f5)

		return num / den
	case TypeB:
		num := f5 * f5 * ff * f
		den := (ff + f1*f1) * math.Sqrt(ff+f3*f3) * (ff + f5*f5)

		return num / den
	case TypeC:
		num := f5 * f5 * ff
		den := (ff + f1*f1) * (ff + f5*f5)

		return num / den
	default:
		return 1
	}
}
