// Package frequency computes statistics of one-sided spectra: band powers,
// spectral tilt, centroid, and flatness. These are the measurements used to
// verify the spectral character of synthesized or augmented signals
// (e.g. that pink noise actually falls off at -3 dB per octave).
package frequency

import (
	"fmt"
	"math"
)

// Stats holds summary statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	Sum      float64 // sum of magnitudes
	Max      float64
	MaxBin   int
	Average  float64
	Energy   float64 // sum of squared magnitudes
	Power    float64 // Energy / BinCount
	Centroid float64 // spectral centroid (Hz)
	Flatness float64 // spectral flatness (Wiener entropy), 0..1
}

// binFreq returns the frequency in Hz of a given bin index of a one-sided
// spectrum with binCount bins (DC through Nyquist).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes summary statistics from a magnitude spectrum
// (linear scale, NOT dB).
//
// The magnitude slice represents bins from 0 (DC) to Nyquist (one-sided
// spectrum, length = FFTSize/2 + 1).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.DC = magnitude[0]
	s.Max = magnitude[0]

	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}
	s.Average = s.Sum / float64(n)
	s.Power = s.Energy / float64(n)

	if n > 1 {
		s.Centroid = centroid(magnitude, sampleRate, s.Sum)
		s.Flatness = flatness(magnitude)
	}

	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}
	return weightedSum / sumMag
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
//	flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin (index 0) is excluded. White noise approaches 1; a pure tone
// approaches 0. If any considered bin is zero, 0 is returned (the geometric
// mean collapses).
func Flatness(magnitude []float64) float64 {
	return flatness(magnitude)
}

func flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	nBins := n - 1
	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for i := 1; i < n; i++ {
		v := magnitude[i]
		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(nBins)
	if meanLin == 0 || hasZero {
		return 0
	}

	meanLog := sumLog / float64(nBins)

	return math.Exp(meanLog) / meanLin
}

// BandPower returns the mean of the power bins whose center frequency lies
// in [freqLo, freqHi].
//
// power is a one-sided power spectrum (squared magnitudes, DC through
// Nyquist). Returns an error if the band is empty or inverted.
func BandPower(power []float64, sampleRate, freqLo, freqHi float64) (float64, error) {
	if len(power) < 2 {
		return 0, fmt.Errorf("frequency: band power requires at least 2 bins: %d", len(power))
	}
	if freqHi < freqLo {
		return 0, fmt.Errorf("frequency: inverted band: [%g, %g]", freqLo, freqHi)
	}

	sum := 0.0
	count := 0
	for i := range power {
		f := binFreq(i, sampleRate, len(power))
		if f < freqLo || f > freqHi {
			continue
		}
		sum += power[i]
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("frequency: no bins in band [%g, %g] Hz", freqLo, freqHi)
	}

	return sum / float64(count), nil
}

// TiltDBPerOctave estimates the spectral tilt of a one-sided power spectrum
// as the least-squares slope of 10*log10(P) against log2(f), in dB per
// octave, over bins whose frequency lies in [freqLo, freqHi].
//
// White noise measures close to 0, pink noise close to -3.01, Brownian
// noise close to -6.02. The DC bin and zero-power bins are skipped since
// both coordinates are undefined there.
func TiltDBPerOctave(power []float64, sampleRate, freqLo, freqHi float64) (float64, error) {
	if len(power) < 2 {
		return 0, fmt.Errorf("frequency: tilt requires at least 2 bins: %d", len(power))
	}
	if freqHi < freqLo {
		return 0, fmt.Errorf("frequency: inverted band: [%g, %g]", freqLo, freqHi)
	}

	var sumX, sumY, sumXX, sumXY float64
	count := 0

	for i := 1; i < len(power); i++ {
		f := binFreq(i, sampleRate, len(power))
		if f < freqLo || f > freqHi || power[i] <= 0 {
			continue
		}
		x := math.Log2(f)
		y := 10 * math.Log10(power[i])
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
		count++
	}
	if count < 2 {
		return 0, fmt.Errorf("frequency: tilt needs at least 2 usable bins in [%g, %g] Hz, got %d", freqLo, freqHi, count)
	}

	n := float64(count)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, fmt.Errorf("frequency: tilt regression is degenerate")
	}

	return (n*sumXY - sumX*sumY) / denom, nil
}
