package colorednoise

import (
	"fmt"
	"math/rand/v2"
)

// Transform injects synthetic colored noise into a signal at a randomly
// sampled signal-to-noise ratio. The noise's power spectral density follows
// a power-law decay drawn from the configured range, optionally reshaped by
// the IEC 61672 A-weighting curve. A probability gate decides per call
// whether the transform applies at all.
//
// The configuration is immutable after construction; the injected random
// number generator is the only mutable state. Distinct Transform values
// never share state, so independent instances may be used concurrently.
type Transform struct {
	cfg config
	rng *rand.Rand
}

// params holds the randomized per-call parameters.
type params struct {
	apply     bool
	snrDB     float64
	decay     float64
	aWeighted bool
}

// New creates a colored-noise transform. The default configuration draws
// the SNR uniformly from [5, 40] dB and the spectral decay uniformly from
// [-6, 6] dB per octave, applies with probability 0.5, never A-weights, and
// defines the target envelope on 128/2+1 frequency points.
func New(opts ...Option) (*Transform, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	tr := &Transform{cfg: cfg, rng: cfg.rng}
	if tr.rng == nil {
		tr.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return tr, nil
}

// draw samples the per-call parameters. The gate is drawn first; when it
// fails, no further random numbers are consumed. The remaining draws happen
// in a fixed order (SNR, decay, A-weighting), which is part of the
// reproducibility contract.
func (t *Transform) draw() params {
	var p params

	p.apply = t.rng.Float64() < t.cfg.p
	if !p.apply {
		return p
	}

	p.snrDB = t.cfg.minSNRDB + t.rng.Float64()*(t.cfg.maxSNRDB-t.cfg.minSNRDB)
	p.decay = t.cfg.minDecay + t.rng.Float64()*(t.cfg.maxDecay-t.cfg.minDecay)
	p.aWeighted = t.rng.Float64() < t.cfg.pAWeighting

	return p
}

// Apply runs the transform on a mono buffer. When the probability gate
// fails, the input slice itself is returned; otherwise a new buffer of the
// same length is returned and the input is left untouched.
func (t *Transform) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	out, err := t.ApplyMultichannel([][]float64{samples}, sampleRate)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// ApplyMultichannel runs the transform on one buffer per channel. All
// channels must have the same length. One parameter draw covers the whole
// clip; the noise itself is generated independently per channel, and the
// SNR is computed from the power over all channels.
//
// When the probability gate fails, the input is returned as-is. Otherwise
// the result is a fresh buffer of identical shape; the input is never
// modified.
func (t *Transform) ApplyMultichannel(channels [][]float64, sampleRate float64) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("colorednoise: sample rate must be > 0: %f", sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("colorednoise: no channels")
	}

	length := len(channels[0])
	for ch := range channels {
		if len(channels[ch]) != length {
			return nil, fmt.Errorf("colorednoise: ragged channels: channel %d has %d samples, channel 0 has %d",
				ch, len(channels[ch]), length)
		}
	}

	p := t.draw()
	if !p.apply || length == 0 {
		return channels, nil
	}

	shape, err := noiseShape(p.decay, p.aWeighted, t.cfg.fftSize/2+1, sampleRate)
	if err != nil {
		return nil, err
	}

	noise := make([][]float64, len(channels))
	for ch := range channels {
		noise[ch], err = synthesize(t.rng, shape, length, sampleRate)
		if err != nil {
			return nil, err
		}
	}

	return mixSNR(channels, noise, p.snrDB), nil
}

// SNRRange returns the configured SNR bounds in dB.
func (t *Transform) SNRRange() (minDB, maxDB float64) {
	return t.cfg.minSNRDB, t.cfg.maxSNRDB
}

// DecayRange returns the configured spectral decay bounds in dB per octave.
func (t *Transform) DecayRange() (minDecay, maxDecay float64) {
	return t.cfg.minDecay, t.cfg.maxDecay
}

// Probability returns the per-call application probability.
func (t *Transform) Probability() float64 { return t.cfg.p }

// AWeightingProbability returns the per-call A-weighting probability.
func (t *Transform) AWeightingProbability() float64 { return t.cfg.pAWeighting }

// FFTSize returns the resolution of the target spectral envelope.
func (t *Transform) FFTSize() int { return t.cfg.fftSize }
