// Package reverse plays audio backwards. Reversal is a cheap augmentation
// with a dramatic effect on the temporal structure of a signal while its
// long-term spectrum stays untouched.
package reverse

import (
	"fmt"
	"math/rand/v2"
)

// Transform time-reverses each channel of a clip, gated by an application
// probability.
type Transform struct {
	p   float64
	rng *rand.Rand
}

// Option configures a [Transform].
type Option func(*Transform) error

// WithProbability sets the probability of applying the transform per call
// (default 0.5). Must lie in [0, 1].
func WithProbability(p float64) Option {
	return func(tr *Transform) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("reverse: probability must be in [0, 1]: %f", p)
		}

		tr.p = p

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible
// gating.
func WithRNG(rng *rand.Rand) Option {
	return func(tr *Transform) error {
		tr.rng = rng
		return nil
	}
}

// New creates a reverse transform with application probability 0.5.
func New(opts ...Option) (*Transform, error) {
	tr := &Transform{p: 0.5}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(tr); err != nil {
			return nil, err
		}
	}

	if tr.rng == nil {
		tr.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return tr, nil
}

// Probability returns the per-call application probability.
func (t *Transform) Probability() float64 { return t.p }

// Apply runs the transform on a mono buffer. When the probability gate
// fails, the input slice itself is returned; otherwise a new reversed
// buffer is returned and the input is left untouched.
func (t *Transform) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	out, err := t.ApplyMultichannel([][]float64{samples}, sampleRate)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// ApplyMultichannel reverses every channel. One gate draw covers the clip.
func (t *Transform) ApplyMultichannel(channels [][]float64, sampleRate float64) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("reverse: sample rate must be > 0: %f", sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("reverse: no channels")
	}

	if t.rng.Float64() >= t.p {
		return channels, nil
	}

	out := make([][]float64, len(channels))
	for ch := range channels {
		n := len(channels[ch])
		out[ch] = make([]float64, n)
		for i, v := range channels[ch] {
			out[ch][n-1-i] = v
		}
	}

	return out, nil
}
