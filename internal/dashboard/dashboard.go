// Package dashboard turns a config into a figure and an animation ready to
// be hosted.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/streamplot/internal/anim"
	"github.com/san-kum/streamplot/internal/config"
	"github.com/san-kum/streamplot/internal/dsp"
	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/sources"
	"github.com/san-kum/streamplot/internal/stream"
)

// Processors are the custom update functions a config may name.
var Processors = map[string]stream.ProcessFunc{
	"spectrum": dsp.Spectrum,
}

func ProcessorNames() []string {
	names := make([]string, 0, len(Processors))
	for name := range Processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Dashboard struct {
	Config    *config.Config
	Figure    *plot.Figure
	Animation *anim.Animation
	Streams   []*stream.Stream
}

// Build creates every stream in config order. Nothing is registered with the
// animation unless every stream builds.
func Build(cfg *config.Config, reg *sources.Registry, log logrus.FieldLogger) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fig := plot.NewFigure(cfg.Title)
	var built []*stream.Stream

	for i, axCfg := range cfg.Axes {
		ax := fig.AddAxes(axCfg.Title)
		ax.XLabel, ax.YLabel = axCfg.XLabel, axCfg.YLabel
		ax.SetXLim(axCfg.XLim[0], axCfg.XLim[1])
		if len(axCfg.YLim) == 2 {
			ax.SetYLim(axCfg.YLim[0], axCfg.YLim[1])
		}

		for j, sc := range axCfg.Streams {
			s, err := buildStream(ax, sc, reg)
			if err != nil {
				return nil, fmt.Errorf("axes[%d].streams[%d]: %w", i, j, err)
			}
			log.WithFields(logrus.Fields{
				"axes":    axCfg.Title,
				"source":  sc.Source,
				"arity":   s.Arity(),
				"length":  s.Length(),
				"padding": s.Padding(),
				"mode":    s.Mode().String(),
			}).Debug("stream built")
			built = append(built, s)
		}
	}

	a := anim.New(cfg.Interval(), anim.WithLogger(log))
	for _, s := range built {
		a.AddStream(s)
	}

	return &Dashboard{Config: cfg, Figure: fig, Animation: a, Streams: built}, nil
}

func buildStream(ax plot.Axes, sc config.StreamConfig, reg *sources.Registry) (*stream.Stream, error) {
	opts := stream.Options{
		Padding:     sc.Padding,
		FixedLength: sc.FixedLength,
		Style:       sc.Style,
		GroupStyle:  sc.GroupStyle,
		Smoothing:   sc.Smoothing,
	}
	if sc.Processor != "" {
		proc, ok := Processors[sc.Processor]
		if !ok {
			return nil, &stream.ConfigError{Field: "processor", Reason: fmt.Sprintf("unknown processor: %s", sc.Processor)}
		}
		opts.Processor = proc
	}

	src, err := reg.Get(sc.Source, sources.Params(sc.Params))
	if err != nil {
		return nil, err
	}
	return stream.New(ax, src, opts)
}
