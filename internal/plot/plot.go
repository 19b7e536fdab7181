package plot

// Style describes how a line is drawn. Zero value means "host default".
type Style struct {
	Label string  `yaml:"label,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Width float64 `yaml:"width,omitempty"`
}

// IsZero reports whether no style option is set.
func (s Style) IsZero() bool {
	return s.Label == "" && s.Color == "" && s.Width == 0
}

// Line is an opaque handle to a drawn line whose y-values can be replaced.
type Line interface {
	SetYData(ys []float64)
	YData() []float64
	XData() []float64
	Style() Style
}

// Axes is the coordinate system streams plot into.
type Axes interface {
	XLim() (float64, float64)
	Plot(xs, ys []float64, style Style) Line
}
