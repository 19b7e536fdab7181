package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/stream"
)

const (
	DefaultTitle      = "streamplot"
	DefaultIntervalMs = 100
	DefaultTheme      = "cyberpunk"
)

type Config struct {
	Title      string       `yaml:"title"`
	IntervalMs int          `yaml:"interval_ms"`
	Theme      string       `yaml:"theme"`
	Axes       []AxesConfig `yaml:"axes"`
}

type AxesConfig struct {
	Title   string         `yaml:"title"`
	XLabel  string         `yaml:"xlabel,omitempty"`
	YLabel  string         `yaml:"ylabel,omitempty"`
	XLim    []float64      `yaml:"xlim,flow"`
	YLim    []float64      `yaml:"ylim,flow,omitempty"`
	Streams []StreamConfig `yaml:"streams"`
}

type StreamConfig struct {
	Source      string             `yaml:"source"`
	Params      map[string]float64 `yaml:"params,omitempty"`
	Padding     int                `yaml:"padding,omitempty"`
	FixedLength int                `yaml:"fixed_length,omitempty"`
	Style       *plot.Style        `yaml:"style,omitempty"`
	GroupStyle  []plot.Style       `yaml:"group_style,omitempty"`
	Smoothing   bool               `yaml:"smoothing,omitempty"`
	Processor   string             `yaml:"processor,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:      DefaultTitle,
		IntervalMs: DefaultIntervalMs,
		Theme:      DefaultTheme,
	}
}

// Load reads a YAML dashboard. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &stream.ConfigError{Field: "yaml", Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Validate reports every structural problem at once. Each entry wraps
// stream.ErrConfiguration.
func (c *Config) Validate() error {
	var result *multierror.Error
	bad := func(field, format string, args ...interface{}) {
		result = multierror.Append(result, &stream.ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.IntervalMs <= 0 {
		bad("interval_ms", "must be positive, got %d", c.IntervalMs)
	}
	if len(c.Axes) == 0 {
		bad("axes", "at least one axes is required")
	}

	for i, ax := range c.Axes {
		prefix := fmt.Sprintf("axes[%d]", i)
		if len(ax.XLim) != 2 {
			bad(prefix+".xlim", "needs [min, max], got %v", ax.XLim)
		} else if ax.XLim[0] == ax.XLim[1] {
			bad(prefix+".xlim", "empty range %v", ax.XLim)
		}
		if len(ax.YLim) != 0 && (len(ax.YLim) != 2 || ax.YLim[0] >= ax.YLim[1]) {
			bad(prefix+".ylim", "needs [min, max] with min < max, got %v", ax.YLim)
		}
		if len(ax.Streams) == 0 {
			bad(prefix+".streams", "at least one stream is required")
		}

		for j, s := range ax.Streams {
			sp := fmt.Sprintf("%s.streams[%d]", prefix, j)
			if s.Source == "" {
				bad(sp+".source", "is required")
			}
			if s.Padding < 0 {
				bad(sp+".padding", "must be >= 0, got %d", s.Padding)
			}
			if s.FixedLength < 0 {
				bad(sp+".fixed_length", "must be >= 0, got %d", s.FixedLength)
			}
		}
	}

	return result.ErrorOrNil()
}
