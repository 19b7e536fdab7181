package config

import (
	"sort"

	"github.com/san-kum/streamplot/internal/plot"
)

var systemAxes = []AxesConfig{
	{
		Title:  "GC CPU",
		XLabel: "ticks ago",
		YLabel: "%",
		XLim:   []float64{0, 600},
		YLim:   []float64{0, 100},
		Streams: []StreamConfig{{
			Source:     "runtime.gc",
			Padding:    5,
			GroupStyle: []plot.Style{{Label: "gc cpu"}},
		}},
	},
	{
		Title:  "Load",
		XLabel: "ticks ago",
		YLabel: "%",
		XLim:   []float64{0, 600},
		YLim:   []float64{0, 100},
		Streams: []StreamConfig{{
			Source:    "noise",
			Params:    map[string]float64{"channels": 4},
			Padding:   5,
			Smoothing: true,
			GroupStyle: []plot.Style{
				{Label: "cpu1"}, {Label: "cpu2"}, {Label: "cpu3"}, {Label: "cpu4"},
			},
		}},
	},
	{
		Title:  "Memory",
		XLabel: "ticks ago",
		YLabel: "%",
		XLim:   []float64{0, 600},
		YLim:   []float64{0, 100},
		Streams: []StreamConfig{{
			Source:  "runtime.memory",
			Padding: 5,
			GroupStyle: []plot.Style{
				{Label: "heap", Color: "#49b6d2"},
				{Label: "stack", Color: "#db4743"},
			},
		}},
	},
}

var presets = map[string]func() *Config{
	"system": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "system"
		cfg.Axes = cloneAxes(systemAxes)
		return cfg
	},
	"signals": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "signals"
		cfg.IntervalMs = 50
		cfg.Axes = []AxesConfig{
			{
				Title: "Sine",
				XLim:  []float64{0, 200},
				YLim:  []float64{0, 100},
				Streams: []StreamConfig{{
					Source: "sine",
					Params: map[string]float64{"channels": 3, "period": 80},
					Style:  &plot.Style{Width: 1},
				}},
			},
			{
				Title: "Noisy, with dropouts",
				XLim:  []float64{0, 200},
				YLim:  []float64{0, 100},
				Streams: []StreamConfig{
					{
						Source:     "noise",
						Params:     map[string]float64{"channels": 1, "dropout": 0.05},
						GroupStyle: []plot.Style{{Label: "raw", Color: "#db4743"}},
					},
					{
						Source:     "noise",
						Params:     map[string]float64{"channels": 1, "dropout": 0.05},
						Smoothing:  true,
						Padding:    5,
						GroupStyle: []plot.Style{{Label: "smoothed", Color: "#74af60"}},
					},
				},
			},
			{
				Title: "Walk spectrum",
				XLim:  []float64{0, 128},
				Streams: []StreamConfig{{
					Source:     "walk",
					Processor:  "spectrum",
					GroupStyle: []plot.Style{{Label: "|fft|", Color: "#eba92b"}},
				}},
			},
		}
		return cfg
	},
	"pendulum": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "pendulum"
		cfg.IntervalMs = 50
		cfg.Axes = []AxesConfig{{
			Title:  "Pendulum",
			XLabel: "ticks ago",
			XLim:   []float64{0, 300},
			YLim:   []float64{-4, 4},
			Streams: []StreamConfig{{
				Source: "pendulum",
				Params: map[string]float64{"theta": 2.5},
				GroupStyle: []plot.Style{
					{Label: "theta", Color: "#49b6d2"},
					{Label: "omega", Color: "#eba92b"},
				},
			}},
		}}
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneAxes(in []AxesConfig) []AxesConfig {
	out := make([]AxesConfig, len(in))
	for i, ax := range in {
		ax.XLim = append([]float64(nil), ax.XLim...)
		ax.YLim = append([]float64(nil), ax.YLim...)
		streams := make([]StreamConfig, len(ax.Streams))
		for j, s := range ax.Streams {
			if s.Params != nil {
				params := make(map[string]float64, len(s.Params))
				for k, v := range s.Params {
					params[k] = v
				}
				s.Params = params
			}
			if s.Style != nil {
				st := *s.Style
				s.Style = &st
			}
			s.GroupStyle = append([]plot.Style(nil), s.GroupStyle...)
			streams[j] = s
		}
		ax.Streams = streams
		out[i] = ax
	}
	return out
}
