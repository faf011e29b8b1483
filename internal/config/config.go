// Package config loads pitchscan settings from defaults, an optional YAML
// file and PITCHSCAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-tuner/dsp/fft"
	"github.com/cwbudde/algo-tuner/internal/logger"
	"github.com/cwbudde/algo-tuner/internal/tracker"
	"github.com/cwbudde/algo-tuner/measure/pitch"
)

const envPrefix = "pitchscan"

var ErrInvalidConfig = errors.New("config: invalid value")

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// TrackerConfig configures the display stabilizer.
type TrackerConfig struct {
	Enabled      bool          `mapstructure:"enabled" yaml:"enabled"`
	AttackLevel  float64       `mapstructure:"attack_level" yaml:"attack_level"`
	SustainLevel float64       `mapstructure:"sustain_level" yaml:"sustain_level"`
	Window       int           `mapstructure:"window" yaml:"window"`
	Grace        time.Duration `mapstructure:"grace" yaml:"grace"`
}

// Config represents the pitchscan settings.
type Config struct {
	FrameSize int           `mapstructure:"frame_size" yaml:"frame_size"`
	Hop       int           `mapstructure:"hop" yaml:"hop"`
	Backend   string        `mapstructure:"backend" yaml:"backend"`
	MinFreq   float64       `mapstructure:"min_freq" yaml:"min_freq"`
	MaxFreq   float64       `mapstructure:"max_freq" yaml:"max_freq"`
	Fallback  string        `mapstructure:"fallback" yaml:"fallback"`
	Format    string        `mapstructure:"format" yaml:"format"`
	Tracker   TrackerConfig `mapstructure:"tracker" yaml:"tracker"`
	Log       logger.Config `mapstructure:"log" yaml:"log"`
}

// Load reads configuration. An empty path searches for pitchscan.yaml in
// the working directory and tolerates its absence; an explicit path must
// exist. The result is not validated, so callers can layer overrides on
// top before calling [Config.Validate].
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path = strings.TrimSpace(path)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pitchscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frame_size", 2048)
	v.SetDefault("hop", 0)
	v.SetDefault("backend", fft.BackendAuto.String())
	v.SetDefault("min_freq", pitch.DefaultMinFreq)
	v.SetDefault("max_freq", pitch.DefaultMaxFreq)
	v.SetDefault("fallback", pitch.FallbackUnrefined.String())
	v.SetDefault("format", FormatTable)
	v.SetDefault("tracker.enabled", false)
	v.SetDefault("tracker.attack_level", tracker.DefaultAttackLevel)
	v.SetDefault("tracker.sustain_level", tracker.DefaultSustainLevel)
	v.SetDefault("tracker.window", tracker.DefaultWindow)
	v.SetDefault("tracker.grace", tracker.DefaultGrace)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.stderr", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.name", "pitchscan.log")
	v.SetDefault("log.file.max_size_mb", 10)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age_days", 7)
	v.SetDefault("log.file.compress", false)
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.FrameSize <= 0 {
		return fmt.Errorf("%w: frame_size %d", ErrInvalidConfig, c.FrameSize)
	}
	if c.Hop < 0 {
		return fmt.Errorf("%w: hop %d", ErrInvalidConfig, c.Hop)
	}
	if !(c.MinFreq > 0) || !(c.MaxFreq > c.MinFreq) {
		return fmt.Errorf("%w: band [%v, %v] Hz", ErrInvalidConfig, c.MinFreq, c.MaxFreq)
	}
	if _, err := fft.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseFallback(c.Fallback); err != nil {
		return err
	}
	switch c.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// HopSize returns the frame advance, defaulting to the frame size.
func (c Config) HopSize() int {
	if c.Hop > 0 {
		return c.Hop
	}
	return c.FrameSize
}

// PitchOptions converts the estimator settings to pitch options.
func (c Config) PitchOptions() ([]pitch.Option, error) {
	backend, err := fft.ParseBackend(c.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fallback, err := parseFallback(c.Fallback)
	if err != nil {
		return nil, err
	}
	return []pitch.Option{
		pitch.WithBand(c.MinFreq, c.MaxFreq),
		pitch.WithBackend(backend),
		pitch.WithDegenerateFallback(fallback),
	}, nil
}

// TrackerOptions converts the tracker settings to tracker options.
func (c Config) TrackerOptions() []tracker.Option {
	return []tracker.Option{
		tracker.WithLevels(c.Tracker.AttackLevel, c.Tracker.SustainLevel),
		tracker.WithWindow(c.Tracker.Window),
		tracker.WithGrace(c.Tracker.Grace),
	}
}

func parseFallback(name string) (pitch.Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", pitch.FallbackUnrefined.String():
		return pitch.FallbackUnrefined, nil
	case pitch.FallbackNone.String():
		return pitch.FallbackNone, nil
	}
	return pitch.FallbackUnrefined, fmt.Errorf("%w: fallback %q", ErrInvalidConfig, name)
}
