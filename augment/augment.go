// Package augment defines the transform interface shared by all audio
// data-augmentation operators and a sequential composition of them.
//
// A transform takes a finite, in-memory signal buffer and returns a buffer
// of the same shape. Transforms draw their per-call parameters from an
// injected random source and gate themselves on a configured probability,
// so composing several transforms yields a randomized augmentation pipeline
// for machine-learning training data.
package augment

import "fmt"

// Transform is a single audio augmentation operator.
//
// Apply processes a mono buffer; ApplyMultichannel processes one buffer per
// channel (all of equal length). Implementations must return the input
// unchanged when their probability gate decides not to apply, and must never
// modify the input buffers when they do apply.
type Transform interface {
	Apply(samples []float64, sampleRate float64) ([]float64, error)
	ApplyMultichannel(channels [][]float64, sampleRate float64) ([][]float64, error)
}

// Compose applies transforms in order, feeding each output into the next.
// It satisfies [Transform] itself, so pipelines nest.
type Compose []Transform

// Apply runs the pipeline on a mono buffer.
func (c Compose) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	out := samples
	for i, tr := range c {
		var err error
		out, err = tr.Apply(out, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("augment: transform %d: %w", i, err)
		}
	}
	return out, nil
}

// ApplyMultichannel runs the pipeline on a multichannel buffer.
func (c Compose) ApplyMultichannel(channels [][]float64, sampleRate float64) ([][]float64, error) {
	out := channels
	for i, tr := range c {
		var err error
		out, err = tr.ApplyMultichannel(out, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("augment: transform %d: %w", i, err)
		}
	}
	return out, nil
}
