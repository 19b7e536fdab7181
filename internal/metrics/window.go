package metrics

import "math"

// Window summarises a newest-first series, skipping NaN slots.
type Window struct {
	Last    float64
	Min     float64
	Max     float64
	Mean    float64
	Samples int
}

// Summarize returns NaN fields when values holds no data.
func Summarize(values []float64) Window {
	w := Window{
		Last: math.NaN(),
		Min:  math.Inf(1),
		Max:  math.Inf(-1),
	}
	sum := 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if w.Samples == 0 {
			w.Last = v
		}
		w.Samples++
		sum += v
		w.Min = math.Min(w.Min, v)
		w.Max = math.Max(w.Max, v)
	}
	if w.Samples == 0 {
		w.Min, w.Max, w.Mean = math.NaN(), math.NaN(), math.NaN()
		return w
	}
	w.Mean = sum / float64(w.Samples)
	return w
}

// Bounds returns the finite range across several series.
func Bounds(series ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		w := Summarize(s)
		if w.Samples == 0 {
			continue
		}
		ok = true
		lo = math.Min(lo, w.Min)
		hi = math.Max(hi, w.Max)
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
