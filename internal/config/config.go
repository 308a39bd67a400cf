// Package config loads the radiolab TOML configuration. Every section maps to
// a typed struct; omitted keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Reduction methods accepted in [reduce].
const (
	ReduceMean   = "mean"
	ReduceMedian = "median"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Alias   AliasConfig   `toml:"alias"`
	Capture CaptureConfig `toml:"capture"`
	Tone    ToneConfig    `toml:"tone"`
	Reduce  ReduceConfig  `toml:"reduce"`
}

// AliasConfig parameterizes the aliasing theory sweep.
type AliasConfig struct {
	F0     float64 `toml:"f0"`
	FsMax  float64 `toml:"fs_max"`
	FsMin  float64 `toml:"fs_min"`
	Points int     `toml:"points"`
}

// CaptureConfig describes the capture request.
type CaptureConfig struct {
	SampleRate float64 `toml:"sample_rate"`
	NSamples   int     `toml:"nsamples"`
	NBlocks    int     `toml:"nblocks"`
	Direct     bool    `toml:"direct"`
}

// ToneConfig drives the simulated receiver.
type ToneConfig struct {
	FreqHz          float64 `toml:"freq_hz"`
	Amplitude       float64 `toml:"amplitude"`
	Noise           float64 `toml:"noise"`
	Seed            int64   `toml:"seed"`
	StaleFirstBlock bool    `toml:"stale_first_block"`
}

// ReduceConfig selects how blocks are combined.
type ReduceConfig struct {
	Method    string `toml:"method"`
	DropFirst bool   `toml:"drop_first"`
}

// Default returns the configuration of the classic direct-sampling lab: a
// 1.42 MHz tone sampled at 1 MHz with a 2048-point, 10-block capture.
func Default() Config {
	return Config{
		Alias: AliasConfig{
			F0:     1.42e6,
			FsMax:  3.2e6,
			FsMin:  1e5,
			Points: 400,
		},
		Capture: CaptureConfig{
			SampleRate: 1e6,
			NSamples:   2048,
			NBlocks:    10,
			Direct:     true,
		},
		Tone: ToneConfig{
			FreqHz:          1.42e6,
			Amplitude:       1,
			Noise:           0.05,
			Seed:            1,
			StaleFirstBlock: true,
		},
		Reduce: ReduceConfig{
			Method:    ReduceMean,
			DropFirst: true,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports the first constraint cfg violates.
func Validate(cfg Config) error {
	if !(cfg.Alias.FsMax > 0) || !(cfg.Alias.FsMin > 0) {
		return errors.New("alias.fs_max and alias.fs_min must be > 0")
	}
	if cfg.Alias.Points < 0 {
		return errors.New("alias.points must be >= 0")
	}
	if !(cfg.Capture.SampleRate > 0) {
		return errors.New("capture.sample_rate must be > 0")
	}
	if cfg.Capture.NSamples <= 0 {
		return errors.New("capture.nsamples must be > 0")
	}
	if cfg.Capture.NBlocks <= 0 {
		return errors.New("capture.nblocks must be > 0")
	}
	if cfg.Reduce.DropFirst && cfg.Capture.NBlocks < 2 {
		return errors.New("capture.nblocks must be >= 2 when reduce.drop_first is set")
	}
	if cfg.Tone.Amplitude < 0 || cfg.Tone.Noise < 0 {
		return errors.New("tone.amplitude and tone.noise must be >= 0")
	}
	switch cfg.Reduce.Method {
	case ReduceMean, ReduceMedian:
	default:
		return fmt.Errorf("reduce.method must be %q or %q: %q", ReduceMean, ReduceMedian, cfg.Reduce.Method)
	}
	return nil
}
