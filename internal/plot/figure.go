package plot

import "math"

type Line2D struct {
	xs, ys []float64
	style  Style
	axes   *Axes2D
}

func (l *Line2D) SetYData(ys []float64) {
	l.ys = append([]float64(nil), ys...)
}

func (l *Line2D) YData() []float64 { return l.ys }
func (l *Line2D) XData() []float64 { return l.xs }
func (l *Line2D) Style() Style      { return l.style }
func (l *Line2D) Axes() *Axes2D     { return l.axes }

// Axes2D is an in-memory axes used by the terminal and export hosts.
type Axes2D struct {
	Title  string
	XLabel string
	YLabel string

	xmin, xmax float64
	ymin, ymax float64
	lines      []*Line2D
}

func NewAxes(title string) *Axes2D {
	return &Axes2D{Title: title, xmax: 1, ymin: math.NaN(), ymax: math.NaN()}
}

func (a *Axes2D) SetXLim(min, max float64) { a.xmin, a.xmax = min, max }
func (a *Axes2D) SetYLim(min, max float64) { a.ymin, a.ymax = min, max }

func (a *Axes2D) XLim() (float64, float64) { return a.xmin, a.xmax }

// YLim returns the fixed y range and whether one was set.
func (a *Axes2D) YLim() (float64, float64, bool) {
	if math.IsNaN(a.ymin) || math.IsNaN(a.ymax) || a.ymin == a.ymax {
		return 0, 0, false
	}
	return a.ymin, a.ymax, true
}

func (a *Axes2D) Plot(xs, ys []float64, style Style) Line {
	l := &Line2D{
		xs:    append([]float64(nil), xs...),
		ys:    append([]float64(nil), ys...),
		style: style,
		axes:  a,
	}
	a.lines = append(a.lines, l)
	return l
}

func (a *Axes2D) Lines() []*Line2D { return a.lines }

// Figure is an ordered stack of axes.
type Figure struct {
	Title string
	axes  []*Axes2D
}

func NewFigure(title string) *Figure {
	return &Figure{Title: title}
}

func (f *Figure) AddAxes(title string) *Axes2D {
	ax := NewAxes(title)
	f.axes = append(f.axes, ax)
	return ax
}

func (f *Figure) Axes() []*Axes2D { return f.axes }
