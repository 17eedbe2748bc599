// Package colorednoise adds colored background noise to audio at a randomly
// sampled signal-to-noise ratio.
//
// The noise color is expressed as a power spectral density decay in dB per
// octave, drawn uniformly from a configured range on every call. Well-known
// colors correspond to fixed decays: white 0, pink -3.01, Brownian -6.02,
// blue +3.01, violet +6.02 (see the Decay... constants). The synthesized
// noise can additionally be shaped by the IEC 61672 A-weighting curve with a
// configurable probability, which concentrates its energy where human
// hearing is most sensitive.
//
// Synthesis works in the frequency domain: a white gaussian draw is
// transformed, its magnitude envelope is replaced by the target power-law
// curve (phases stay untouched), and the result is transformed back. The
// noise is then scaled so that the mix hits the sampled SNR exactly,
// measured against the input's mean-square power. Silent inputs pass
// through unchanged rather than dividing by zero.
//
// The transform is gated by an application probability, making it suitable
// as one randomized stage in a machine-learning augmentation pipeline.
package colorednoise
