// Package sources is the catalogue of named data sources a dashboard config
// can reference.
//
// Every factory returns a fresh, stateful [stream.Source]; two streams never
// share one. Params not listed in a source's defaults are rejected.
//
//	sine               phase-shifted sine waves
//	noise              drift plus gaussian noise, optional NaN dropouts
//	walk               bounded random walk
//	pendulum           damped pendulum (theta, omega), RK4 per tick
//	runtime.memory     heap / stack in use, percent
//	runtime.gc         GC CPU share, percent
//	runtime.goroutines goroutine count
package sources
