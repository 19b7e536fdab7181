package sources

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/streamplot/internal/stream"
)

func newSine(p Params) (stream.Source, error) {
	n, err := channels(p)
	if err != nil {
		return nil, err
	}
	period := p.Get("period", 100)
	if period <= 0 {
		return nil, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("period must be positive, got %g", period)}
	}
	amp, offset := p.Get("amplitude", 40), p.Get("offset", 50)

	tick := 0
	return func() []float64 {
		out := make([]float64, n)
		for i := range out {
			phase := 2 * math.Pi * float64(i) / float64(n)
			out[i] = offset + amp*math.Sin(2*math.Pi*float64(tick)/period+phase)
		}
		tick++
		return out
	}, nil
}

func newNoise(p Params) (stream.Source, error) {
	n, err := channels(p)
	if err != nil {
		return nil, err
	}
	mean, spread, dropout := p.Get("mean", 50), p.Get("spread", 20), p.Get("dropout", 0)
	if dropout < 0 || dropout > 1 {
		return nil, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("dropout must be in [0, 1], got %g", dropout)}
	}
	rng := rand.New(rand.NewSource(int64(p.Get("seed", 1))))

	tick := 0
	return func() []float64 {
		out := make([]float64, n)
		for i := range out {
			if dropout > 0 && rng.Float64() < dropout {
				out[i] = math.NaN()
				continue
			}
			drift := spread * math.Sin(float64(tick)/50+float64(i))
			out[i] = mean + drift + rng.NormFloat64()*spread/2
		}
		tick++
		return out
	}, nil
}

func newWalk(p Params) (stream.Source, error) {
	n, err := channels(p)
	if err != nil {
		return nil, err
	}
	lo, hi, step := p.Get("min", 0), p.Get("max", 100), p.Get("step", 2)
	if lo >= hi {
		return nil, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("min %g must be below max %g", lo, hi)}
	}
	rng := rand.New(rand.NewSource(int64(p.Get("seed", 1))))

	pos := make([]float64, n)
	for i := range pos {
		pos[i] = math.Max(lo, math.Min(hi, p.Get("start", 50)))
	}
	return func() []float64 {
		out := make([]float64, n)
		for i := range pos {
			pos[i] = math.Max(lo, math.Min(hi, pos[i]+(rng.Float64()*2-1)*step))
			out[i] = pos[i]
		}
		return out
	}, nil
}
