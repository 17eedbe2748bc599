package colorednoise

import (
	"fmt"
	"math/rand/v2"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/crlandsc/audiomentations/dsp/spectrum"
)

// synthesize generates one channel of colored noise of the given length.
//
// A white gaussian draw of FFT length is transformed to the frequency
// domain, each bin is scaled by the target envelope resampled onto the
// synthesis bin grid, and the result is transformed back. The envelope is
// real, so scaling bin k and its mirror by the same value keeps the
// spectrum Hermitian and the time-domain output real. Phases are untouched,
// which preserves the randomness of the draw. The output is deterministic
// for a fixed rng state.
func synthesize(rng *rand.Rand, shape []float64, length int, sampleRate float64) ([]float64, error) {
	fftSize := nextPowerOf2(length)
	if fftSize < 2 {
		fftSize = 2
	}

	timeData := make([]complex128, fftSize)
	for i := range timeData {
		timeData[i] = complex(rng.NormFloat64(), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("colorednoise: FFT plan: %w", err)
	}

	freqData := make([]complex128, fftSize)
	if err := plan.Forward(freqData, timeData); err != nil {
		return nil, fmt.Errorf("colorednoise: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1

	shapeFreqs, err := spectrum.BinFrequencies(len(shape), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("colorednoise: synth: %w", err)
	}
	binFreqs, err := spectrum.BinFrequencies(bins, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("colorednoise: synth: %w", err)
	}

	env, err := spectrum.InterpolateLinear(shapeFreqs, shape, binFreqs)
	if err != nil {
		return nil, fmt.Errorf("colorednoise: envelope resample: %w", err)
	}

	// DC through Nyquist, then the mirrored negative-frequency bins.
	for k := 0; k < bins; k++ {
		freqData[k] *= complex(env[k], 0)
	}
	for k := 1; k < fftSize/2; k++ {
		freqData[fftSize-k] *= complex(env[k], 0)
	}

	if err := plan.Inverse(timeData, freqData); err != nil {
		return nil, fmt.Errorf("colorednoise: inverse FFT: %w", err)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = real(timeData[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
