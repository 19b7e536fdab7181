package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/streamplot/internal/metrics"
	"github.com/san-kum/streamplot/internal/plot"
)

// Visible returns the y-values whose x lies inside the axes range, dropping
// the padding slots.
func Visible(ax *plot.Axes2D, l plot.Line) []float64 {
	xmin, xmax := ax.XLim()
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	xs, ys := l.XData(), l.YData()
	out := make([]float64, 0, len(ys))
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if xs[i] >= xmin && xs[i] < xmax {
			out = append(out, ys[i])
		}
	}
	return out
}

func lineLabel(l plot.Line, i int) string {
	if label := l.Style().Label; label != "" {
		return label
	}
	return fmt.Sprintf("line %d", i)
}

// RenderAxes draws one axes as an ascii chart of the given size.
func RenderAxes(ax *plot.Axes2D, width, height int, theme Theme) string {
	lines := ax.Lines()
	caption := ax.Title
	if ax.XLabel != "" {
		caption += " (" + ax.XLabel + ")"
	}
	if len(lines) == 0 {
		return caption + "\n  no lines"
	}

	series := make([][]float64, len(lines))
	colors := make([]asciigraph.AnsiColor, len(lines))
	legends := make([]string, len(lines))
	for i, l := range lines {
		series[i] = Visible(ax, l)
		colors[i] = AnsiColor(theme.SeriesColor(l.Style().Color, i))
		legends[i] = lineLabel(l, i)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	}

	lo, hi, fixed := ax.YLim()
	if fixed {
		opts = append(opts, asciigraph.LowerBound(lo), asciigraph.UpperBound(hi))
	} else if _, _, ok := metrics.Bounds(series...); !ok {
		return caption + "\n  waiting for data"
	}

	return asciigraph.PlotMany(series, opts...)
}

// RenderStats lists the latest, min, max and mean of every line.
func RenderStats(fig *plot.Figure, theme Theme) string {
	label := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	for _, ax := range fig.Axes() {
		b.WriteString(header.Render(strings.ToUpper(ax.Title)) + "\n")
		for i, l := range ax.Lines() {
			w := metrics.Summarize(Visible(ax, l))
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesColor(l.Style().Color, i))).Render("■ ")
			b.WriteString(swatch + label.Render(lineLabel(l, i)) + value.Render(formatValue(w.Last)) + "\n")
			b.WriteString("  " + label.Render("min/max") + value.Render(formatValue(w.Min)+" / "+formatValue(w.Max)) + "\n")
			b.WriteString("  " + label.Render("mean") + value.Render(formatValue(w.Mean)) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "--"
	}
	return fmt.Sprintf("%.2f", v)
}
