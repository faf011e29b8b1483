package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errInvalidWAV = errors.New("pitchscan: not a valid WAV file")

// pcmAudio is decoded audio mixed down to one channel in [-1, 1].
type pcmAudio struct {
	SampleRate float64
	Channels   int
	Samples    []float64
}

func readWAV(path string) (pcmAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return pcmAudio{}, fmt.Errorf("pitchscan: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return pcmAudio{}, fmt.Errorf("%w: %s", errInvalidWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcmAudio{}, fmt.Errorf("pitchscan: decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return pcmAudio{}, fmt.Errorf("%w: %s: missing format", errInvalidWAV, path)
	}

	return pcmAudio{
		SampleRate: float64(buf.Format.SampleRate),
		Channels:   buf.Format.NumChannels,
		Samples:    mixDown(buf),
	}, nil
}

// mixDown averages interleaved channels and scales to [-1, 1].
func mixDown(buf *audio.IntBuffer) []float64 {
	channels := buf.Format.NumChannels
	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	scale := float64(int64(1) << (depth - 1))
	offset := 0
	if depth == 8 {
		// 8-bit WAV is unsigned.
		offset = 128
	}

	out := make([]float64, len(buf.Data)/channels)
	for i := range out {
		sum := 0
		for ch := 0; ch < channels; ch++ {
			sum += buf.Data[i*channels+ch] - offset
		}
		out[i] = float64(sum) / float64(channels) / scale
	}
	return out
}
