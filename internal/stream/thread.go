package stream

import "github.com/san-kum/streamplot/internal/plot"

// Thread is one rolling window and the line it feeds.
type Thread struct {
	index int
	buf   *Buffer
	line  plot.Line
}

func newThread(ax plot.Axes, index, capacity, padding int, style plot.Style) *Thread {
	buf := NewBuffer(capacity, padding)
	xs := make([]float64, buf.Len())
	for i := range xs {
		xs[i] = float64(i - padding)
	}
	return &Thread{
		index: index,
		buf:   buf,
		line:  ax.Plot(xs, buf.Snapshot(), style),
	}
}

func (t *Thread) Index() int            { return t.index }
func (t *Thread) Line() plot.Line       { return t.line }
func (t *Thread) Buffer() *Buffer       { return t.buf }
func (t *Thread) Push(v float64)        { t.buf.Push(v) }
func (t *Thread) Snapshot() []float64   { return t.buf.Snapshot() }
func (t *Thread) SetYData(ys []float64) { t.line.SetYData(ys) }
