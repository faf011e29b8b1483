// Command pitchscan estimates the pitch of a WAV recording frame by frame.
//
// Usage:
//
//	pitchscan [flags] file.wav
//
// Settings come from pitchscan.yaml (or -config), PITCHSCAN_* environment
// variables and flags, in increasing priority.
//
// Examples:
//
//	pitchscan guitar.wav
//	pitchscan -frame 4096 -hop 1024 -track voice.wav
//	pitchscan -format yaml -backend gonum -min 80 -max 1000 cello.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/internal/config"
	"github.com/cwbudde/algo-tuner/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	frameSize := flag.Int("frame", 0, "frame length in samples")
	hop := flag.Int("hop", 0, "frame advance in samples (default: frame length)")
	backend := flag.String("backend", "", "FFT backend: auto, algofft, gonum, godsp")
	minFreq := flag.Float64("min", 0, "lowest detectable frequency in Hz")
	maxFreq := flag.Float64("max", 0, "highest detectable frequency in Hz")
	fallback := flag.String("fallback", "", "degenerate refinement result: unrefined, none")
	format := flag.String("format", "", "output format: table, yaml, json")
	track := flag.Bool("track", false, "apply the tuner gate and smoothing")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pitchscan [flags] file.wav\n\n")
		fmt.Fprintf(os.Stderr, "Estimates the fundamental frequency of each frame of a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pitchscan guitar.wav\n")
		fmt.Fprintf(os.Stderr, "  pitchscan -frame 4096 -hop 1024 -track voice.wav\n")
		fmt.Fprintf(os.Stderr, "  pitchscan -format yaml -backend gonum cello.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frame":
			cfg.FrameSize = *frameSize
		case "hop":
			cfg.Hop = *hop
		case "backend":
			cfg.Backend = *backend
		case "min":
			cfg.MinFreq = *minFreq
		case "max":
			cfg.MaxFreq = *maxFreq
		case "fallback":
			cfg.Fallback = *fallback
		case "format":
			cfg.Format = *format
		case "track":
			cfg.Tracker.Enabled = *track
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(flag.Arg(0), cfg, log); err != nil {
		log.Error("pitchscan failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(path string, cfg config.Config, log *zap.Logger) error {
	audio, err := readWAV(path)
	if err != nil {
		return err
	}
	log.Info("decoded audio",
		zap.String("file", path),
		zap.Float64("sample_rate", audio.SampleRate),
		zap.Int("channels", audio.Channels),
		zap.Int("samples", len(audio.Samples)),
	)

	frames, err := scan(audio.Samples, audio.SampleRate, cfg, log)
	if err != nil {
		return err
	}

	rep := newReport(path, audio.SampleRate, cfg, frames)
	log.Info("scan complete",
		zap.Int("frames", rep.Summary.Frames),
		zap.Int("voiced", rep.Summary.Voiced),
		zap.Float64("median_hz", rep.Summary.Median),
	)

	return writeReport(os.Stdout, cfg.Format, rep)
}
