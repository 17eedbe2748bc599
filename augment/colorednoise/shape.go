package colorednoise

import (
	"fmt"
	"math"

	"github.com/crlandsc/audiomentations/dsp/spectrum"
	"github.com/crlandsc/audiomentations/dsp/weighting"
)

// Named spectral decays in dB per octave. These are documentation
// constants; the transform accepts any decay value within the configured
// range, not just these.
const (
	// DecayWhite is flat power across frequency.
	DecayWhite = 0.0
	// DecayPink falls at 3 dB per octave (1/f power density).
	DecayPink = -3.01
	// DecayBrown falls at 6 dB per octave (1/f^2, Brownian/red noise).
	DecayBrown = -6.02
	// DecayBlue rises at 3 dB per octave.
	DecayBlue = 3.01
	// DecayViolet rises at 6 dB per octave.
	DecayViolet = 6.02
)

// DecayForColor maps a noise color name to its decay in dB per octave.
// Recognized names: white, pink, brown, brownian, red, blue, azure,
// violet, purple.
func DecayForColor(name string) (float64, error) {
	switch name {
	case "white":
		return DecayWhite, nil
	case "pink":
		return DecayPink, nil
	case "brown", "brownian", "red":
		return DecayBrown, nil
	case "blue", "azure":
		return DecayBlue, nil
	case "violet", "purple":
		return DecayViolet, nil
	default:
		return 0, fmt.Errorf("colorednoise: unknown noise color %q", name)
	}
}

// octaveDB is the power change in dB of an f^1 spectrum over one octave.
var octaveDB = 10 * math.Log10(2)

// noiseShape builds the target amplitude envelope on bins frequency points
// linearly spaced from DC to Nyquist.
//
// A power spectral density P(f) = f^beta changes by decay dB per octave
// when beta = decay / (10*log10 2), so the amplitude envelope is
// H(f) = f^(beta/2). The DC bin copies the first nonzero bin: the power law
// is singular at f=0 (divergent for negative decay, vanishing for positive)
// and pinning H(0) to H(f_1) keeps the envelope finite without affecting
// the decay trend. With aWeighted, the A-weighting gain multiplies in;
// decay and perceptual weighting compose multiplicatively.
func noiseShape(decay float64, aWeighted bool, bins int, sampleRate float64) ([]float64, error) {
	freqs, err := spectrum.BinFrequencies(bins, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("colorednoise: shape: %w", err)
	}

	ampExp := decay / octaveDB / 2

	out := make([]float64, bins)
	for i := 1; i < bins; i++ {
		out[i] = math.Pow(freqs[i], ampExp)
	}
	out[0] = out[1]

	if aWeighted {
		if err := weighting.Apply(weighting.TypeA, freqs, out); err != nil {
			return nil, fmt.Errorf("colorednoise: shape: %w", err)
		}
	}

	return out, nil
}
