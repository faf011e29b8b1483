package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/internal/config"
	"github.com/cwbudde/algo-tuner/internal/webdemo"
)

type summary struct {
	Frames int     `json:"frames" yaml:"frames"`
	Voiced int     `json:"voiced" yaml:"voiced"`
	Mean   float64 `json:"mean_hz" yaml:"mean_hz"`
	StdDev float64 `json:"stddev_hz" yaml:"stddev_hz"`
	Median float64 `json:"median_hz" yaml:"median_hz"`
	Note   string  `json:"note" yaml:"note"`
}

type report struct {
	File       string        `json:"file" yaml:"file"`
	SampleRate float64       `json:"sample_rate" yaml:"sample_rate"`
	FrameSize  int           `json:"frame_size" yaml:"frame_size"`
	FrameMs    float64       `json:"frame_ms" yaml:"frame_ms"`
	Hop        int           `json:"hop" yaml:"hop"`
	Backend    string        `json:"backend" yaml:"backend"`
	Summary    summary       `json:"summary" yaml:"summary"`
	Frames     []frameResult `json:"frames" yaml:"frames"`
}

func newReport(file string, sampleRate float64, cfg config.Config, frames []frameResult) report {
	proc := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate), core.WithBlockSize(cfg.FrameSize))
	return report{
		File:       file,
		SampleRate: sampleRate,
		FrameSize:  cfg.FrameSize,
		FrameMs:    float64(proc.FrameDuration().Microseconds()) / 1000,
		Hop:        cfg.HopSize(),
		Backend:    cfg.Backend,
		Summary:    summarize(frames),
		Frames:     frames,
	}
}

// summarize computes statistics over the voiced frames.
func summarize(frames []frameResult) summary {
	s := summary{Frames: len(frames), Note: "-"}

	voiced := make([]float64, 0, len(frames))
	for _, f := range frames {
		if f.Pitch > 0 {
			voiced = append(voiced, f.Pitch)
		}
	}
	s.Voiced = len(voiced)
	if len(voiced) == 0 {
		return s
	}

	slices.Sort(voiced)
	s.Mean = stat.Mean(voiced, nil)
	if len(voiced) > 1 {
		s.StdDev = stat.StdDev(voiced, nil)
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, voiced, nil)
	s.Note = webdemo.NoteFor(s.Median).String()
	return s
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("pitchscan: encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("pitchscan: encode json: %w", err)
		}
		return nil
	default:
		return writeTable(w, rep)
	}
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Frame\tTime (s)\tRaw (Hz)\tPitch (Hz)\tLevel (dB)\tNote\tCents\t\n")
	fmt.Fprintf(tw, "-----\t--------\t--------\t----------\t----------\t----\t-----\t\n")
	for _, f := range rep.Frames {
		fmt.Fprintf(tw, "%d\t%.3f\t%s\t%s\t%s\t%s\t%s\t\n",
			f.Index, f.Time, formatHz(f.Raw), formatHz(f.Pitch), formatDB(f.Level), f.Note, formatCents(f))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := rep.Summary
	fmt.Fprintf(w, "\n%d frames of %.1f ms, %d voiced", s.Frames, rep.FrameMs, s.Voiced)
	if s.Voiced > 0 {
		fmt.Fprintf(w, ": median %.2f Hz (%s), mean %.2f Hz, std-dev %.2f Hz", s.Median, s.Note, s.Mean, s.StdDev)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func formatHz(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatDB(level float64) string {
	if level <= 0 {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", core.LinearToDB(level))
}

func formatCents(f frameResult) string {
	if f.Pitch <= 0 {
		return "-"
	}
	return fmt.Sprintf("%+.1f", f.Cents)
}
