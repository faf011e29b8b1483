package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func monoBuffer(data []int, depth, sampleRate int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: depth,
	}
}

func stereoBuffer(data []int, depth int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: depth,
	}
}

func writeTestWAV(t *testing.T, samples []float64, sampleRate, channels int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	data := make([]int, 0, len(samples)*channels)
	for _, s := range samples {
		v := int(s * 32767)
		for ch := 0; ch < channels; ch++ {
			data = append(data, v)
		}
	}

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	return path
}

func TestReadWAVStereo(t *testing.T) {
	tone := testutil.DeterministicSine(440, 44100, 0.5, 4096)
	path := writeTestWAV(t, tone, 44100, 2)

	got, err := readWAV(path)
	if err != nil {
		t.Fatalf("readWAV: %v", err)
	}
	if got.SampleRate != 44100 || got.Channels != 2 {
		t.Fatalf("format = %v Hz, %d channels", got.SampleRate, got.Channels)
	}
	if len(got.Samples) != len(tone) {
		t.Fatalf("got %d samples, want %d", len(got.Samples), len(tone))
	}
	testutil.RequireSliceNearlyEqual(t, got.Samples, tone, 1e-4)

	frames, err := scan(got.Samples, got.SampleRate, testConfig(), nopLogger())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	testutil.RequireNear(t, frames[0].Pitch, 440, 1, "pitch")
}

func TestReadWAVInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	if err := os.WriteFile(path, []byte("not a riff file at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := readWAV(path); !errors.Is(err, errInvalidWAV) {
		t.Fatalf("readWAV error = %v, want errInvalidWAV", err)
	}
}

func TestReadWAVMissing(t *testing.T) {
	if _, err := readWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
