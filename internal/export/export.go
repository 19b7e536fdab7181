package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/streamplot/internal/metrics"
	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/viz"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Options struct {
	Width  int
	Height int
	Theme  viz.Theme
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (o Options) theme() viz.Theme {
	if o.Theme.Name == "" {
		return viz.ThemeCyberpunk
	}
	return o.Theme
}

type point struct{ X, Y float64 }

// segments splits a line into runs of finite points inside the x-range;
// a NaN ends the current run.
func segments(ax *plot.Axes2D, l plot.Line) [][]point {
	xmin, xmax := ax.XLim()
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	xs, ys := l.XData(), l.YData()

	var out [][]point
	var cur []point
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if xs[i] < xmin || xs[i] >= xmax {
			continue
		}
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, point{xs[i], ys[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// yRange is the fixed y-limit of the axes, else the data bounds.
func yRange(ax *plot.Axes2D) (float64, float64) {
	if lo, hi, ok := ax.YLim(); ok {
		return lo, hi
	}
	series := make([][]float64, 0, len(ax.Lines()))
	for _, l := range ax.Lines() {
		series = append(series, viz.Visible(ax, l))
	}
	lo, hi, ok := metrics.Bounds(series...)
	if !ok {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// Save writes the figure to path, picking the format from the extension.
func Save(path string, fig *plot.Figure, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		_, err = f.WriteString(FigureToSVG(fig, opts))
	case ".png":
		err = FigureToPNG(f, fig, opts)
	default:
		err = fmt.Errorf("unsupported export format %q", ext)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
