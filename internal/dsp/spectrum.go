// Package dsp holds custom stream processors built on go-dsp.
package dsp

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/stream"
)

// Magnitudes returns |FFT| of the window with the DC bin removed. NaN slots
// count as zero. The result has the same length as values, with bins beyond
// the Nyquist limit left NaN so they render as a gap.
func Magnitudes(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(values) < 2 {
		return out
	}

	clean := make([]float64, len(values))
	mean, n := 0.0, 0
	for _, v := range values {
		if !math.IsNaN(v) {
			mean += v
			n++
		}
	}
	if n == 0 {
		return out
	}
	mean /= float64(n)
	for i, v := range values {
		if !math.IsNaN(v) {
			clean[i] = v - mean
		}
	}

	bins := fft.FFTReal(clean)
	half := len(bins) / 2
	scale := 2 / float64(len(values))
	for i := 0; i <= half; i++ {
		out[i] = cmplx.Abs(bins[i]) * scale
	}
	return out
}

// Spectrum keeps the raw window and shows its magnitude spectrum.
func Spectrum(t *stream.Thread, value float64) plot.Line {
	t.Push(value)
	t.SetYData(Magnitudes(t.Snapshot()))
	return t.Line()
}
