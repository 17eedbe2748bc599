package colorednoise

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/crlandsc/audiomentations/augment"
	"github.com/crlandsc/audiomentations/internal/testutil"
)

var _ augment.Transform = (*Transform)(nil)

func seededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestApply_NeverWithZeroProbability(t *testing.T) {
	tr, err := New(WithProbability(0), WithRNG(seededRNG(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.DeterministicSine(440, 48000, 0.5, 4800)
	for range 20 {
		out, err := tr.Apply(in, 48000)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if &out[0] != &in[0] {
			t.Fatal("p=0 must return the input buffer unchanged")
		}
	}
}

func TestApply_AlwaysWithFullProbability(t *testing.T) {
	tr, err := New(WithProbability(1), WithRNG(seededRNG(2)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.DeterministicSine(440, 48000, 0.5, 4800)
	for range 10 {
		out, err := tr.Apply(in, 48000)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if len(out) != len(in) {
			t.Fatalf("length = %d, want %d", len(out), len(in))
		}
		if &out[0] == &in[0] {
			t.Fatal("p=1 must return a new buffer")
		}

		changed := false
		for i := range in {
			if out[i] != in[i] {
				changed = true
				break
			}
		}
		if !changed {
			t.Fatal("p=1 output is identical to the input")
		}
	}
}

func TestApply_InputUntouched(t *testing.T) {
	tr, err := New(WithProbability(1), WithRNG(seededRNG(3)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.DeterministicSine(440, 48000, 0.5, 4800)
	orig := append([]float64(nil), in...)

	if _, err := tr.Apply(in, 48000); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	testutil.RequireSliceEqual(t, in, orig)
}

func TestApply_ExactSNR(t *testing.T) {
	// Fixed 20 dB SNR, white noise, applied to a 1-second sine: the measured
	// power ratio of signal to added noise must hit the target exactly.
	tr, err := New(
		WithProbability(1),
		WithSNRRange(20, 20),
		WithDecayRange(0, 0),
		WithRNG(seededRNG(4)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.DeterministicSine(440, 48000, 0.5, 48000)
	px := testutil.MeanSquare(in)

	for range 5 {
		out, err := tr.Apply(in, 48000)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}

		added := make([]float64, len(in))
		for i := range in {
			added[i] = out[i] - in[i]
		}
		pn := testutil.MeanSquare(added)

		got := 10 * math.Log10(px/pn)
		if math.Abs(got-20) > 0.5 {
			t.Errorf("measured SNR = %.6f dB, want 20 dB", got)
		}
	}
}

func TestApply_SilentInputStaysSilent(t *testing.T) {
	tr, err := New(WithProbability(1), WithRNG(seededRNG(5)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.Silence(4096)
	out, err := tr.Apply(in, 48000)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %g, want 0", i, v)
		}
	}
}

func TestApply_Reproducible(t *testing.T) {
	in := testutil.DeterministicSine(440, 48000, 0.5, 4800)

	run := func() []float64 {
		tr, err := New(WithProbability(1), WithRNG(seededRNG(42)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		out, err := tr.Apply(in, 48000)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		return out
	}

	testutil.RequireSliceEqual(t, run(), run())
}

func TestApplyMultichannel_ShapePreserved(t *testing.T) {
	tr, err := New(WithProbability(1), WithRNG(seededRNG(6)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.StereoSine(440, 880, 48000, 0.5, 4800)
	out, err := tr.ApplyMultichannel(in, 48000)
	if err != nil {
		t.Fatalf("ApplyMultichannel: %v", err)
	}
	testutil.RequireSameShape(t, out, in)
	testutil.RequireFinite(t, out[0])
	testutil.RequireFinite(t, out[1])
}

func TestApplyMultichannel_IndependentNoise(t *testing.T) {
	tr, err := New(WithProbability(1), WithSNRRange(10, 10), WithRNG(seededRNG(7)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Identical channels in: if the noise were shared, the added noise
	// would be identical per channel too.
	mono := testutil.DeterministicSine(440, 48000, 0.5, 4800)
	in := [][]float64{append([]float64(nil), mono...), append([]float64(nil), mono...)}

	out, err := tr.ApplyMultichannel(in, 48000)
	if err != nil {
		t.Fatalf("ApplyMultichannel: %v", err)
	}

	same := true
	for i := range mono {
		if out[0][i] != out[1][i] {
			same = false
			break
		}
	}
	if same {
		t.Error("channels received identical noise; draws must be independent per channel")
	}
}

func TestApplyMultichannel_RaggedChannels(t *testing.T) {
	tr, err := New(WithRNG(seededRNG(8)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = tr.ApplyMultichannel([][]float64{make([]float64, 100), make([]float64, 99)}, 48000)
	if err == nil {
		t.Error("expected error for ragged channels")
	}
}

func TestApply_InvalidSampleRate(t *testing.T) {
	tr, err := New(WithRNG(seededRNG(9)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := tr.Apply(make([]float64, 16), 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := tr.Apply(make([]float64, 16), -48000); err == nil {
		t.Error("expected error for negative sample rate")
	}
}

func TestApplyMultichannel_NoChannels(t *testing.T) {
	tr, err := New(WithRNG(seededRNG(10)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := tr.ApplyMultichannel(nil, 48000); err == nil {
		t.Error("expected error for empty channel list")
	}
}

func TestApply_GateRate(t *testing.T) {
	tr, err := New(WithProbability(0.5), WithRNG(seededRNG(11)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := testutil.DeterministicSine(440, 48000, 0.5, 512)
	applied := 0
	const trials = 400
	for range trials {
		out, err := tr.Apply(in, 48000)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if &out[0] != &in[0] {
			applied++
		}
	}

	// Binomial(400, 0.5): 5 sigma is 50.
	if applied < 150 || applied > 250 {
		t.Errorf("applied %d/%d times, want about half", applied, trials)
	}
}
