package colorednoise

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultMinSNRDB              = 5.0
	defaultMaxSNRDB              = 40.0
	defaultMinDecay              = -6.0
	defaultMaxDecay              = 6.0
	defaultProbability           = 0.5
	defaultAWeightingProbability = 0.0
	defaultFFTSize               = 128
)

type config struct {
	minSNRDB    float64
	maxSNRDB    float64
	minDecay    float64
	maxDecay    float64
	p           float64
	pAWeighting float64
	fftSize     int
	rng         *rand.Rand
}

func defaultConfig() config {
	return config{
		minSNRDB:    defaultMinSNRDB,
		maxSNRDB:    defaultMaxSNRDB,
		minDecay:    defaultMinDecay,
		maxDecay:    defaultMaxDecay,
		p:           defaultProbability,
		pAWeighting: defaultAWeightingProbability,
		fftSize:     defaultFFTSize,
	}
}

// Option configures a [Transform].
type Option func(*config) error

// WithSNRRange sets the bounds of the per-call signal-to-noise ratio draw
// in dB (default [5, 40]). minDB must not exceed maxDB.
func WithSNRRange(minDB, maxDB float64) Option {
	return func(cfg *config) error {
		if !isFinite(minDB) || !isFinite(maxDB) {
			return fmt.Errorf("colorednoise: SNR bounds must be finite: [%f, %f]", minDB, maxDB)
		}
		if minDB > maxDB {
			return fmt.Errorf("colorednoise: inverted SNR range: [%f, %f]", minDB, maxDB)
		}

		cfg.minSNRDB = minDB
		cfg.maxSNRDB = maxDB

		return nil
	}
}

// WithDecayRange sets the bounds of the per-call spectral decay draw in
// dB per octave (default [-6, 6]). Negative decays darken the noise
// (pink, Brownian), positive decays brighten it (blue, violet).
// minDecay must not exceed maxDecay.
func WithDecayRange(minDecay, maxDecay float64) Option {
	return func(cfg *config) error {
		if !isFinite(minDecay) || !isFinite(maxDecay) {
			return fmt.Errorf("colorednoise: decay bounds must be finite: [%f, %f]", minDecay, maxDecay)
		}
		if minDecay > maxDecay {
			return fmt.Errorf("colorednoise: inverted decay range: [%f, %f]", minDecay, maxDecay)
		}

		cfg.minDecay = minDecay
		cfg.maxDecay = maxDecay

		return nil
	}
}

// WithDecay fixes the spectral decay to a single value, typically one of the
// Decay... constants. Equivalent to WithDecayRange(decay, decay).
func WithDecay(decay float64) Option {
	return WithDecayRange(decay, decay)
}

// WithProbability sets the probability of applying the transform per call
// (default 0.5). Must lie in [0, 1].
func WithProbability(p float64) Option {
	return func(cfg *config) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("colorednoise: probability must be in [0, 1]: %f", p)
		}

		cfg.p = p

		return nil
	}
}

// WithAWeightingProbability sets the probability of additionally shaping the
// noise spectrum with the IEC 61672 A-weighting curve (default 0).
// Must lie in [0, 1].
func WithAWeightingProbability(p float64) Option {
	return func(cfg *config) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("colorednoise: A-weighting probability must be in [0, 1]: %f", p)
		}

		cfg.pAWeighting = p

		return nil
	}
}

// WithFFTSize sets the resolution of the target spectral envelope
// (default 128). The envelope is defined on fftSize/2 + 1 frequency points
// and resampled onto the synthesis grid, so this is a curve resolution, not
// a filter length. Must be at least 2.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < 2 {
			return fmt.Errorf("colorednoise: FFT size must be >= 2: %d", n)
		}

		cfg.fftSize = n

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible
// output. The generator is the only mutable state the transform holds; share
// one across goroutines only with external synchronization.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
