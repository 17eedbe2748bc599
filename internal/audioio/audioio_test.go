package audioio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/crlandsc/audiomentations/internal/testutil"
)

func TestWriteReadWAVRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	want := &Clip{
		SampleRate: 48000,
		Channels: [][]float64{
			testutil.DeterministicSine(440, 48000, 0.5, 4800),
			testutil.DeterministicSine(880, 48000, 0.25, 4800),
		},
	}

	if err := WriteWAV(path, want); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got.SampleRate != want.SampleRate {
		t.Errorf("sample rate = %d, want %d", got.SampleRate, want.SampleRate)
	}
	if len(got.Channels) != len(want.Channels) {
		t.Fatalf("channels = %d, want %d", len(got.Channels), len(want.Channels))
	}
	for ch := range want.Channels {
		// 16-bit quantization limits precision to about 1/32768.
		testutil.RequireSliceNearlyEqual(t, got.Channels[ch], want.Channels[ch], 1.0/32000)
	}
}

func TestWriteWAV_ClipsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hot.wav")

	in := &Clip{SampleRate: 8000, Channels: [][]float64{{2.0, -2.0, 0.5}}}
	if err := WriteWAV(path, in); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, v := range got.Channels[0] {
		if math.Abs(v) > 1 {
			t.Errorf("sample %g exceeds full scale", v)
		}
	}
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	if _, err := ReadFile("clip.flac"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestReadFile_GarbageInput(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".wav", ".mp3", ".ogg"} {
		path := filepath.Join(dir, "garbage"+ext)
		if err := os.WriteFile(path, []byte("this is not audio data at all"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := ReadFile(path); err == nil {
			t.Errorf("expected decode error for garbage %s file", ext)
		}
	}
}

func TestWriteWAV_InvalidClip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.wav")

	if err := WriteWAV(path, nil); err == nil {
		t.Error("expected error for nil clip")
	}
	if err := WriteWAV(path, &Clip{SampleRate: 0, Channels: [][]float64{{1}}}); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestClip_Frames(t *testing.T) {
	if (&Clip{}).Frames() != 0 {
		t.Error("empty clip should report zero frames")
	}
	c := &Clip{Channels: [][]float64{make([]float64, 7)}}
	if c.Frames() != 7 {
		t.Errorf("Frames() = %d, want 7", c.Frames())
	}
}
