// Package audioio reads and writes audio clips for the command line tool.
// It decodes WAV, MP3 and Ogg Vorbis into planar float64 channels and
// encodes 16-bit PCM WAV.
package audioio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// Clip holds decoded audio as one buffer per channel, all the same length.
type Clip struct {
	SampleRate int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// ReadFile decodes an audio file, picking the codec from the file
// extension. Supported: .wav, .mp3, .ogg.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audioio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	case ".ogg":
		return decodeOgg(f)
	default:
		return nil, fmt.Errorf("audioio: unsupported file extension: %q", filepath.Ext(path))
	}
}

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audioio: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audioio: decoding wav: %w", err)
	}

	scale := 1.0 / float64(int(1)<<(buf.SourceBitDepth-1))
	return deinterleaveInt(buf.Data, buf.Format.NumChannels, buf.Format.SampleRate, scale)
}

func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audioio: decoding mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audioio: decoding mp3: %w", err)
	}

	// go-mp3 emits 16-bit little-endian stereo PCM.
	samples := make([]int, len(raw)/2)
	for i := range samples {
		samples[i] = int(int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8))
	}

	return deinterleaveInt(samples, 2, dec.SampleRate(), 1.0/32768.0)
}

func decodeOgg(r io.Reader) (*Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("audioio: decoding ogg: %w", err)
	}

	channels := dec.Channels()
	frameBuf := make([]float32, 4096*channels)
	interleaved := make([]float64, 0, 4096*channels)

	for {
		n, err := dec.Read(frameBuf)
		for _, v := range frameBuf[:n] {
			interleaved = append(interleaved, float64(v))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("audioio: decoding ogg: %w", err)
		}
	}

	return deinterleaveFloat(interleaved, channels, dec.SampleRate())
}

// WriteWAV encodes a clip as 16-bit PCM WAV. Samples outside [-1, 1] are
// clipped.
func WriteWAV(path string, clip *Clip) error {
	if clip == nil || len(clip.Channels) == 0 {
		return fmt.Errorf("audioio: empty clip")
	}
	if clip.SampleRate <= 0 {
		return fmt.Errorf("audioio: sample rate must be > 0: %d", clip.SampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audioio: %w", err)
	}

	enc := wav.NewEncoder(f, clip.SampleRate, 16, len(clip.Channels), 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: len(clip.Channels),
			SampleRate:  clip.SampleRate,
		},
		Data:           interleave(clip.Channels),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("audioio: encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audioio: encoding wav: %w", err)
	}

	return f.Close()
}

// deinterleaveInt splits interleaved integer PCM into planar float64
// channels, scaling each sample by scale.
func deinterleaveInt(data []int, channels, sampleRate int, scale float64) (*Clip, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("audioio: invalid channel count: %d", channels)
	}

	frames := len(data) / channels
	clip := &Clip{SampleRate: sampleRate, Channels: make([][]float64, channels)}
	for ch := range clip.Channels {
		clip.Channels[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			clip.Channels[ch][i] = float64(data[i*channels+ch]) * scale
		}
	}

	return clip, nil
}

func deinterleaveFloat(data []float64, channels, sampleRate int) (*Clip, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("audioio: invalid channel count: %d", channels)
	}

	frames := len(data) / channels
	clip := &Clip{SampleRate: sampleRate, Channels: make([][]float64, channels)}
	for ch := range clip.Channels {
		clip.Channels[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			clip.Channels[ch][i] = data[i*channels+ch]
		}
	}

	return clip, nil
}

// interleave converts planar float64 channels to interleaved 16-bit
// integer PCM, clipping to the int16 range.
func interleave(channels [][]float64) []int {
	frames := len(channels[0])
	out := make([]int, frames*len(channels))
	for i := 0; i < frames; i++ {
		for ch := range channels {
			v := channels[ch][i]
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			s := int(v * 32767)
			out[i*len(channels)+ch] = s
		}
	}
	return out
}
