// Package spectrum provides helpers for working with one-sided magnitude
// spectra: complex-to-magnitude/power conversion, bin-to-frequency mapping,
// and piecewise-linear resampling of frequency-domain envelopes.
//
// A one-sided spectrum covers DC through Nyquist in binCount bins, where
// binCount = fftSize/2 + 1. Conversions are SIMD-accelerated via
// algo-vecmath where available.
package spectrum
