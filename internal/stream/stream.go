package stream

import (
	"fmt"
	"math"

	"github.com/san-kum/streamplot/internal/plot"
)

// Source returns one sample per thread each time it is called. NaN means
// "no data this tick".
type Source func() []float64

// Options is the full set of stream settings.
type Options struct {
	// Padding adds hidden slots on both ends of every window.
	Padding int
	// FixedLength is the window capacity. Zero derives it from the axes'
	// visible x range.
	FixedLength int
	// Style applies to every thread unless GroupStyle is set.
	Style *plot.Style
	// GroupStyle holds one style per thread, in source order.
	GroupStyle []plot.Style
	// Smoothing displays a Gaussian-smoothed window.
	Smoothing bool
	// Processor replaces the built-in update.
	Processor ProcessFunc
}

type Stream struct {
	src      Source
	threads  []*Thread
	mode     UpdateMode
	proc     ProcessFunc
	capacity int
	padding  int
}

// New probes src once for its arity and creates one thread per value.
func New(ax plot.Axes, src Source, opts Options) (*Stream, error) {
	if src == nil {
		return nil, &ConfigError{Field: "source", Reason: "nil source"}
	}
	if opts.Padding < 0 {
		return nil, &ConfigError{Field: "padding", Reason: fmt.Sprintf("must be >= 0, got %d", opts.Padding)}
	}
	if opts.FixedLength < 0 {
		return nil, &ConfigError{Field: "fixed_length", Reason: fmt.Sprintf("must be >= 0, got %d", opts.FixedLength)}
	}

	capacity := opts.FixedLength
	if capacity == 0 {
		xmin, xmax := ax.XLim()
		capacity = int(math.Abs(xmin - xmax))
		if capacity <= 0 {
			return nil, &ConfigError{Field: "fixed_length", Reason: fmt.Sprintf("axes range [%g, %g] gives an empty window", xmin, xmax)}
		}
	}

	arity := len(src())
	if arity == 0 {
		return nil, &ConfigError{Field: "source", Reason: "returned no values"}
	}
	if opts.GroupStyle != nil && len(opts.GroupStyle) != arity {
		return nil, &ConfigError{
			Field:  "group_style",
			Reason: fmt.Sprintf("has %d entries, source returns %d values", len(opts.GroupStyle), arity),
		}
	}

	mode, proc := selectProcessor(opts)
	s := &Stream{
		src:      src,
		threads:  make([]*Thread, arity),
		mode:     mode,
		proc:     proc,
		capacity: capacity,
		padding:  opts.Padding,
	}
	for i := range s.threads {
		s.threads[i] = newThread(ax, i, capacity, opts.Padding, threadStyle(opts, i))
	}
	return s, nil
}

func threadStyle(opts Options, i int) plot.Style {
	if opts.GroupStyle != nil {
		return opts.GroupStyle[i]
	}
	if opts.Style != nil {
		return *opts.Style
	}
	return plot.Style{}
}

// Update pulls one batch from the source and feeds it to the threads in
// order. It returns one line per thread.
func (s *Stream) Update() ([]plot.Line, error) {
	values := s.src()
	if len(values) != len(s.threads) {
		return nil, &ArityError{Want: len(s.threads), Got: len(values)}
	}
	lines := make([]plot.Line, len(s.threads))
	for i, t := range s.threads {
		lines[i] = s.proc(t, values[i])
	}
	return lines, nil
}

func (s *Stream) Threads() []*Thread { return s.threads }
func (s *Stream) Arity() int         { return len(s.threads) }
func (s *Stream) Mode() UpdateMode   { return s.mode }

// Length is the capacity of each window, padding excluded.
func (s *Stream) Length() int  { return s.capacity }
func (s *Stream) Padding() int { return s.padding }
