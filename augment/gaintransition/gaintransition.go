package gaintransition

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Transform gradually changes the volume from one random gain to another
// over a random time span, also known as fade in / fade out. The fade
// operates on a logarithmic (dB) scale, which is natural to human hearing.
//
// Two gains and a transition window are drawn per call. The window may
// start before the clip starts or end after it ends, so the output can
// begin or end mid-transition. Before the window the first gain holds,
// after it the second gain holds.
type Transform struct {
	cfg config
	rng *rand.Rand
}

type params struct {
	apply       bool
	fadeSamples int
	t0          int
	startDB     float64
	endDB       float64
}

// New creates a gain-transition transform. Defaults: gains drawn from
// [-24, 6] dB, transition duration from [0.2, 6.0] seconds, probability 0.5.
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

// draw samples the per-call parameters. The gate comes first; the rest are
// drawn in a fixed order (duration, start position, start gain, end gain).
func (t *Transform) draw(length int, sampleRate float64) params {
	var p params

	p.apply = t.rng.Float64() < t.cfg.p
	if !p.apply {
		return p
	}

	minSamples, maxSamples := t.cfg.durationSamples(length, sampleRate)
	p.fadeSamples = max(3, randIntInclusive(t.rng, minSamples, maxSamples))
	// The window may overhang either edge, but always overlaps the clip by
	// at least two samples.
	p.t0 = randIntInclusive(t.rng, -p.fadeSamples+2, length-2)
	p.startDB = t.cfg.minGainDB + t.rng.Float64()*(t.cfg.maxGainDB-t.cfg.minGainDB)
	p.endDB = t.cfg.minGainDB + t.rng.Float64()*(t.cfg.maxGainDB-t.cfg.minGainDB)

	return p
}

// Apply runs the transform on a mono buffer. When the probability gate
// fails, the input slice itself is returned; otherwise a new buffer is
// returned and the input is left untouched.
func (t *Transform) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	out, err := t.ApplyMultichannel([][]float64{samples}, sampleRate)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// ApplyMultichannel runs the transform on one buffer per channel. One
// parameter draw covers the clip and the same gain envelope applies to
// every channel.
func (t *Transform) ApplyMultichannel(channels [][]float64, sampleRate float64) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("gaintransition: sample rate must be > 0: %f", sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("gaintransition: no channels")
	}

	length := len(channels[0])
	for ch := range channels {
		if len(channels[ch]) != length {
			return nil, fmt.Errorf("gaintransition: ragged channels: channel %d has %d samples, channel 0 has %d",
				ch, len(channels[ch]), length)
		}
	}

	p := t.draw(length, sampleRate)
	if !p.apply || length == 0 {
		return channels, nil
	}

	envelope := gainEnvelope(p, length)

	out := make([][]float64, len(channels))
	for ch := range channels {
		out[ch] = make([]float64, length)
		for i, v := range channels[ch] {
			out[ch][i] = v * envelope[i]
		}
	}

	return out, nil
}

// gainEnvelope builds the per-sample amplitude envelope: the start gain
// holds until the window begins, the gain moves linearly in dB across the
// window, and the end gain holds afterwards. Window portions outside the
// clip are cropped.
func gainEnvelope(p params, length int) []float64 {
	mask := fadeMask(p.startDB, p.endDB, p.fadeSamples)

	start := p.t0
	end := p.t0 + p.fadeSamples
	if start < 0 {
		mask = mask[-start:]
		start = 0
	}
	if end > length {
		mask = mask[:len(mask)-(end-length)]
		end = length
	}

	envelope := make([]float64, length)
	startAmp := dbToAmplitude(p.startDB)
	endAmp := dbToAmplitude(p.endDB)

	for i := 0; i < start; i++ {
		envelope[i] = startAmp
	}
	copy(envelope[start:end], mask)
	for i := end; i < length; i++ {
		envelope[i] = endAmp
	}

	return envelope
}

// fadeMask returns n amplitude factors tracing a straight line in dB from
// startDB to endDB, endpoints included.
func fadeMask(startDB, endDB float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = dbToAmplitude(startDB)
		return out
	}

	step := (endDB - startDB) / float64(n-1)
	for i := range out {
		out[i] = dbToAmplitude(startDB + float64(i)*step)
	}
	return out
}

func dbToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}

// randIntInclusive draws uniformly from [lo, hi], both ends included.
func randIntInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// GainRange returns the configured gain bounds in dB.
func (t *Transform) GainRange() (minDB, maxDB float64) {
	return t.cfg.minGainDB, t.cfg.maxGainDB
}

// DurationRange returns the configured transition duration bounds in the
// configured unit.
func (t *Transform) DurationRange() (minDuration, maxDuration float64) {
	return t.cfg.minDuration, t.cfg.maxDuration
}

// DurationUnit returns the unit of the duration bounds.
func (t *Transform) DurationUnit() DurationUnit { return t.cfg.unit }

// Probability returns the per-call application probability.
func (t *Transform) Probability() float64 { return t.cfg.p }
