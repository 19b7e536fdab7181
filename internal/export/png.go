package export

import (
	"io"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/viz"
)

// axesPlot converts one axes into a gonum plot, one plotter.Line per
// NaN-free run so gaps stay visible.
func axesPlot(ax *plot.Axes2D, theme viz.Theme) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = ax.Title
	p.X.Label.Text = ax.XLabel
	p.Y.Label.Text = ax.YLabel

	xmin, xmax := ax.XLim()
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = yRange(ax)
	p.Add(plotter.NewGrid())

	for i, l := range ax.Lines() {
		style := l.Style()
		width := style.Width
		if width <= 0 {
			width = 1
		}
		color := viz.RGBA(theme.SeriesColor(style.Color, i))

		var first *plotter.Line
		for _, seg := range segments(ax, l) {
			pts := make(plotter.XYs, len(seg))
			for j, pt := range seg {
				pts[j].X, pts[j].Y = pt.X, pt.Y
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Color = color
			line.LineStyle.Width = vg.Points(width)
			p.Add(line)
			if first == nil {
				first = line
			}
		}
		if first != nil && style.Label != "" {
			p.Legend.Add(style.Label, first)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// FigureToPNG draws every axes of the figure in one column and writes the
// image as PNG.
func FigureToPNG(w io.Writer, fig *plot.Figure, opts Options) error {
	width, height := opts.size()
	img := vgimg.New(vg.Points(float64(width)), vg.Points(float64(height)))
	dc := draw.New(img)

	axes := fig.Axes()
	if len(axes) > 0 {
		rows := make([][]*gplot.Plot, len(axes))
		for i, ax := range axes {
			p, err := axesPlot(ax, opts.theme())
			if err != nil {
				return err
			}
			rows[i] = []*gplot.Plot{p}
		}

		tiles := draw.Tiles{
			Rows: len(axes),
			Cols: 1,
			PadX: vg.Millimeter,
			PadY: vg.Millimeter,
		}
		canvases := gplot.Align(rows, tiles, dc)
		for i := range rows {
			rows[i][0].Draw(canvases[i][0])
		}
	}

	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}
