// Package smooth implements the fixed-width Gaussian filter applied to
// stream windows before display.
package smooth

import "math"

// Truncate is the kernel half-width in standard deviations.
const Truncate = 4.0

// Radius returns the number of taps on each side of the kernel centre.
func Radius(sigma float64) int {
	return int(Truncate*sigma + 0.5)
}

// Kernel returns the normalised Gaussian weights for sigma, centre at index
// Radius(sigma).
func Kernel(sigma float64) []float64 {
	r := Radius(sigma)
	w := make([]float64, 2*r+1)
	sum := 0.0
	for i := -r; i <= r; i++ {
		v := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		w[i+r] = v
		sum += v
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// Gaussian convolves data with Kernel(sigma) using reflected edges
// (d c b a | a b c d | d c b a). A NaN inside the kernel footprint makes the
// output NaN, so gaps in the window stay gaps.
func Gaussian(data []float64, sigma float64) []float64 {
	out := make([]float64, len(data))
	if sigma <= 0 || len(data) == 0 {
		copy(out, data)
		return out
	}

	w := Kernel(sigma)
	r := len(w) / 2
	n := len(data)
	for i := range data {
		acc := 0.0
		for k := -r; k <= r; k++ {
			acc += w[k+r] * data[reflect(i+k, n)]
		}
		out[i] = acc
	}
	return out
}

func reflect(i, n int) int {
	period := 2 * n
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= n {
		m = period - 1 - m
	}
	return m
}
