package colorednoise

import "math"

// meanSquare returns the mean of squared samples across all channels,
// 0 if there are no samples.
func meanSquare(chans [][]float64) float64 {
	sum := 0.0
	count := 0
	for _, ch := range chans {
		for _, v := range ch {
			sum += v * v
		}
		count += len(ch)
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// noiseScale returns the factor a such that mixing a*noise into the signal
// yields the target SNR: 10*log10(Px / (a^2 * Pn)) == snrDB.
//
// When either power is zero the ratio is undefined; the defined fallback is
// a = 0, so silent inputs and degenerate noise pass through unmodified
// instead of producing non-finite output.
func noiseScale(signalPower, noisePower, snrDB float64) float64 {
	if signalPower == 0 || noisePower == 0 {
		return 0
	}
	return math.Sqrt(signalPower / (noisePower * math.Pow(10, snrDB/10)))
}

// mixSNR returns signal + a*noise as new buffers, with a chosen for the
// target SNR computed over all channels. No clipping or renormalization is
// applied; downstream stages own that.
func mixSNR(signal, noise [][]float64, snrDB float64) [][]float64 {
	a := noiseScale(meanSquare(signal), meanSquare(noise), snrDB)

	out := make([][]float64, len(signal))
	for ch := range signal {
		out[ch] = make([]float64, len(signal[ch]))
		for i, v := range signal[ch] {
			out[ch][i] = v + a*noise[ch][i]
		}
	}
	return out
}
