// Package config loads runtime settings from defaults, an optional config
// file, MEDIASHERLOCK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// OutputFormat selects how summaries are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ColorMode controls ANSI colour on the terminal.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	MediainfoBinary string        `mapstructure:"mediainfo_binary"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	Concurrency     int           `mapstructure:"concurrency"`

	Output OutputFormat `mapstructure:"output"`
	Color  ColorMode    `mapstructure:"color"`

	// Open writes the rendered summary to OutputDir/OutputName and shows it
	// in Viewer. The file is removed afterwards unless Keep is set.
	Open       bool     `mapstructure:"open"`
	Keep       bool     `mapstructure:"keep"`
	Viewer     []string `mapstructure:"viewer"`
	OutputDir  string   `mapstructure:"output_dir"` // empty: os.TempDir()
	OutputName string   `mapstructure:"output_name"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func DefaultConfig() Config {
	return Config{
		MediainfoBinary: "mediainfo",
		ProbeTimeout:    30 * time.Second,
		Concurrency:     runtime.NumCPU(),
		Output:          OutputText,
		Color:           ColorAuto,
		OutputName:      "mediainfo.txt",
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q (use 'text' or 'json')", c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.Color)
	}
	if c.MediainfoBinary == "" {
		return errors.New("mediainfo binary must not be empty")
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be positive")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if c.Open && c.OutputName == "" {
		return errors.New("output name must not be empty")
	}
	return nil
}
