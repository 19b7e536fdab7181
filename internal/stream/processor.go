package stream

import (
	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/smooth"
)

// SmoothingSigma is the Gaussian width used by SmoothedUpdate.
const SmoothingSigma = 3.0

// ProcessFunc folds one new value into a thread and returns the line it
// touched.
type ProcessFunc func(t *Thread, value float64) plot.Line

// UpdateMode identifies the processor a stream was built with.
type UpdateMode int

const (
	DefaultUpdate UpdateMode = iota
	SmoothedUpdate
	CustomUpdate
)

func (m UpdateMode) String() string {
	switch m {
	case SmoothedUpdate:
		return "smoothed"
	case CustomUpdate:
		return "custom"
	default:
		return "default"
	}
}

// DefaultProcess pushes the value and shows the raw window.
func DefaultProcess(t *Thread, value float64) plot.Line {
	t.Push(value)
	t.SetYData(t.Snapshot())
	return t.Line()
}

// SmoothedProcess stores the raw value but shows a smoothed window.
func SmoothedProcess(t *Thread, value float64) plot.Line {
	t.Push(value)
	t.SetYData(smooth.Gaussian(t.Snapshot(), SmoothingSigma))
	return t.Line()
}

// selectProcessor resolves the update variant once. A custom processor
// overrides smoothing.
func selectProcessor(opts Options) (UpdateMode, ProcessFunc) {
	switch {
	case opts.Processor != nil:
		return CustomUpdate, opts.Processor
	case opts.Smoothing:
		return SmoothedUpdate, SmoothedProcess
	default:
		return DefaultUpdate, DefaultProcess
	}
}
