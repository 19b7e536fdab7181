package sources

import (
	"fmt"
	"sort"

	"github.com/san-kum/streamplot/internal/stream"
)

// Params holds numeric source settings, keyed by name.
type Params map[string]float64

// Get returns p[key], or def when unset.
func (p Params) Get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

type Factory func(p Params) (stream.Source, error)

type entry struct {
	info     string
	defaults Params
	factory  Factory
}

type Registry struct {
	sources map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]entry)}

	r.Register("sine", "phase-shifted sine waves", Params{
		"channels": 1, "period": 100, "amplitude": 40, "offset": 50,
	}, newSine)
	r.Register("noise", "slow drift plus gaussian noise, optional dropouts", Params{
		"channels": 4, "mean": 50, "spread": 20, "dropout": 0, "seed": 1,
	}, newNoise)
	r.Register("walk", "bounded random walk", Params{
		"channels": 1, "start": 50, "step": 2, "min": 0, "max": 100, "seed": 1,
	}, newWalk)
	r.Register("pendulum", "damped pendulum angle and angular velocity (rk4)", Params{
		"theta": 1.0, "omega": 0, "damping": 0.1, "length": 1, "gravity": 9.81, "dt": 0.05,
	}, newPendulum)
	r.Register("runtime.memory", "heap and stack in use, percent of reserved", Params{}, newRuntimeMemory)
	r.Register("runtime.gc", "garbage collector CPU share, percent", Params{}, newRuntimeGC)
	r.Register("runtime.goroutines", "live goroutine count", Params{}, newRuntimeGoroutines)

	return r
}

// Register adds or replaces a source. defaults lists every accepted param.
func (r *Registry) Register(name, info string, defaults Params, f Factory) {
	r.sources[name] = entry{info: info, defaults: defaults, factory: f}
}

// Get builds a fresh source. Unknown names and params are configuration
// errors.
func (r *Registry) Get(name string, p Params) (stream.Source, error) {
	e, ok := r.sources[name]
	if !ok {
		return nil, &stream.ConfigError{Field: "source", Reason: fmt.Sprintf("unknown source: %s", name)}
	}

	merged := make(Params, len(e.defaults))
	for k, v := range e.defaults {
		merged[k] = v
	}
	for k, v := range p {
		if _, ok := e.defaults[k]; !ok {
			return nil, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("source %s has no param %q", name, k)}
		}
		merged[k] = v
	}
	return e.factory(merged)
}

func (r *Registry) Info(name string) string {
	return r.sources[name].info
}

// Defaults returns a copy of the params accepted by name.
func (r *Registry) Defaults(name string) Params {
	out := make(Params)
	for k, v := range r.sources[name].defaults {
		out[k] = v
	}
	return out
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func channels(p Params) (int, error) {
	n := int(p.Get("channels", 1))
	if n < 1 {
		return 0, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("channels must be >= 1, got %d", n)}
	}
	return n, nil
}
