package gaintransition

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultMinGainDB   = -24.0
	defaultMaxGainDB   = 6.0
	defaultMinDuration = 0.2
	defaultMaxDuration = 6.0
	defaultProbability = 0.5
)

// DurationUnit defines how the duration bounds are interpreted.
type DurationUnit int

const (
	// UnitSeconds interprets durations as seconds.
	UnitSeconds DurationUnit = iota
	// UnitFraction interprets durations as fractions of the clip length.
	UnitFraction
	// UnitSamples interprets durations as sample counts.
	UnitSamples

	unitCount // sentinel for validation
)

// String returns the name of the duration unit.
func (u DurationUnit) String() string {
	switch u {
	case UnitSeconds:
		return "seconds"
	case UnitFraction:
		return "fraction"
	case UnitSamples:
		return "samples"
	default:
		return fmt.Sprintf("DurationUnit(%d)", int(u))
	}
}

// Valid reports whether u is a known duration unit.
func (u DurationUnit) Valid() bool {
	return u >= 0 && u < unitCount
}

type config struct {
	minGainDB   float64
	maxGainDB   float64
	minDuration float64
	maxDuration float64
	unit        DurationUnit
	p           float64
	rng         *rand.Rand
}

func defaultConfig() config {
	return config{
		minGainDB:   defaultMinGainDB,
		maxGainDB:   defaultMaxGainDB,
		minDuration: defaultMinDuration,
		maxDuration: defaultMaxDuration,
		unit:        UnitSeconds,
		p:           defaultProbability,
	}
}

// durationSamples converts the configured duration bounds to sample counts
// for a clip of the given length.
func (cfg *config) durationSamples(length int, sampleRate float64) (minSamples, maxSamples int) {
	switch cfg.unit {
	case UnitFraction:
		return int(math.Round(cfg.minDuration * float64(length))),
			int(math.Round(cfg.maxDuration * float64(length)))
	case UnitSamples:
		return int(math.Round(cfg.minDuration)), int(math.Round(cfg.maxDuration))
	default:
		return int(math.Round(cfg.minDuration * sampleRate)),
			int(math.Round(cfg.maxDuration * sampleRate))
	}
}

// Option configures a [Transform].
type Option func(*config) error

// WithGainRange sets the bounds both gains are drawn from in dB
// (default [-24, 6]). minDB must not exceed maxDB.
func WithGainRange(minDB, maxDB float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(minDB) || math.IsInf(minDB, 0) || math.IsNaN(maxDB) || math.IsInf(maxDB, 0) {
			return fmt.Errorf("gaintransition: gain bounds must be finite: [%f, %f]", minDB, maxDB)
		}
		if minDB > maxDB {
			return fmt.Errorf("gaintransition: inverted gain range: [%f, %f]", minDB, maxDB)
		}

		cfg.minGainDB = minDB
		cfg.maxGainDB = maxDB

		return nil
	}
}

// WithDurationRange sets the bounds of the transition duration draw,
// interpreted per the given unit (default [0.2, 6.0] seconds). Both bounds
// must be positive and minDuration must not exceed maxDuration.
func WithDurationRange(minDuration, maxDuration float64, unit DurationUnit) Option {
	return func(cfg *config) error {
		if !unit.Valid() {
			return fmt.Errorf("gaintransition: invalid duration unit: %d", unit)
		}
		if !(minDuration > 0) || math.IsInf(minDuration, 0) {
			return fmt.Errorf("gaintransition: minimum duration must be > 0 and finite: %f", minDuration)
		}
		if !(maxDuration >= minDuration) || math.IsInf(maxDuration, 0) {
			return fmt.Errorf("gaintransition: inverted duration range: [%f, %f]", minDuration, maxDuration)
		}

		cfg.minDuration = minDuration
		cfg.maxDuration = maxDuration
		cfg.unit = unit

		return nil
	}
}

// WithProbability sets the probability of applying the transform per call
// (default 0.5). Must lie in [0, 1].
func WithProbability(p float64) Option {
	return func(cfg *config) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("gaintransition: probability must be in [0, 1]: %f", p)
		}

		cfg.p = p

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible
// output.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}
