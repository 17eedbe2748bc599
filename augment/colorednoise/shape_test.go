package colorednoise

import (
	"math"
	"testing"

	"github.com/crlandsc/audiomentations/dsp/spectrum"
	"github.com/crlandsc/audiomentations/dsp/weighting"
	"github.com/crlandsc/audiomentations/internal/testutil"
)

func TestNoiseShape_White(t *testing.T) {
	shape, err := noiseShape(DecayWhite, false, 65, 48000)
	if err != nil {
		t.Fatalf("noiseShape: %v", err)
	}
	if len(shape) != 65 {
		t.Fatalf("length = %d, want 65", len(shape))
	}
	for i, v := range shape {
		if v != 1 {
			t.Fatalf("bin %d = %g, want 1 (flat envelope)", i, v)
		}
	}
}

func TestNoiseShape_OctaveRatio(t *testing.T) {
	// The power envelope must change by exactly the configured decay per
	// octave: 20*log10(H(2f)/H(f)) == decay for every f > 0.
	for _, decay := range []float64{DecayPink, DecayBrown, DecayBlue, DecayViolet, -1.5} {
		shape, err := noiseShape(decay, false, 129, 48000)
		if err != nil {
			t.Fatalf("noiseShape(%g): %v", decay, err)
		}
		for i := 1; 2*i < len(shape); i++ {
			got := 20 * math.Log10(shape[2*i]/shape[i])
			if math.Abs(got-decay) > 1e-9 {
				t.Fatalf("decay %g: octave ratio at bin %d = %g dB, want %g", decay, i, got, decay)
			}
		}
	}
}

func TestNoiseShape_DCPinnedToFirstBin(t *testing.T) {
	shape, err := noiseShape(DecayBrown, false, 65, 48000)
	if err != nil {
		t.Fatalf("noiseShape: %v", err)
	}
	if shape[0] != shape[1] {
		t.Errorf("DC bin = %g, want %g (copy of first nonzero bin)", shape[0], shape[1])
	}
}

func TestNoiseShape_FiniteNonNegative(t *testing.T) {
	for _, decay := range []float64{-6.02, -3.01, 0, 3.01, 6.02} {
		for _, aWeighted := range []bool{false, true} {
			shape, err := noiseShape(decay, aWeighted, 65, 44100)
			if err != nil {
				t.Fatalf("noiseShape(%g, %v): %v", decay, aWeighted, err)
			}
			testutil.RequireFinite(t, shape)
			for i, v := range shape {
				if v < 0 {
					t.Fatalf("decay %g aWeighted %v: bin %d = %g, want >= 0", decay, aWeighted, i, v)
				}
			}
		}
	}
}

func TestNoiseShape_AWeighting(t *testing.T) {
	plain, err := noiseShape(DecayPink, false, 65, 48000)
	if err != nil {
		t.Fatalf("noiseShape: %v", err)
	}
	weighted, err := noiseShape(DecayPink, true, 65, 48000)
	if err != nil {
		t.Fatalf("noiseShape: %v", err)
	}

	freqs, err := spectrum.BinFrequencies(65, 48000)
	if err != nil {
		t.Fatalf("BinFrequencies: %v", err)
	}

	for i := 1; i < len(plain); i++ {
		want := plain[i] * weighting.Gain(weighting.TypeA, freqs[i])
		if math.Abs(weighted[i]-want) > 1e-12 {
			t.Fatalf("bin %d: got %g, want %g", i, weighted[i], want)
		}
	}
	// A-weighting has a zero at DC, which overrides the pinned DC bin.
	if weighted[0] != 0 {
		t.Errorf("weighted DC bin = %g, want 0", weighted[0])
	}
}

func TestDecayForColor(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"white", 0},
		{"pink", -3.01},
		{"brown", -6.02},
		{"brownian", -6.02},
		{"red", -6.02},
		{"blue", 3.01},
		{"azure", 3.01},
		{"violet", 6.02},
		{"purple", 6.02},
	}
	for _, tt := range tests {
		got, err := DecayForColor(tt.name)
		if err != nil {
			t.Errorf("DecayForColor(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecayForColor(%q) = %g, want %g", tt.name, got, tt.want)
		}
	}

	if _, err := DecayForColor("ultraviolet"); err == nil {
		t.Error("expected error for unknown color")
	}
}
