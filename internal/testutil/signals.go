package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Silence generates an all-zero signal.
func Silence(length int) []float64 {
	return make([]float64, length)
}

// StereoSine generates a two-channel buffer with sines of the given
// frequencies, one per channel.
func StereoSine(leftHz, rightHz, sampleRate, amplitude float64, length int) [][]float64 {
	return [][]float64{
		DeterministicSine(leftHz, sampleRate, amplitude, length),
		DeterministicSine(rightHz, sampleRate, amplitude, length),
	}
}

// CloneChannels deep-copies a multichannel buffer.
func CloneChannels(chans [][]float64) [][]float64 {
	out := make([][]float64, len(chans))
	for ch := range chans {
		out[ch] = append([]float64(nil), chans[ch]...)
	}
	return out
}
