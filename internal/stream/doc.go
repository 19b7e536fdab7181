// Package stream folds live samples into rolling windows and keeps their
// lines current.
//
//   - [Buffer]: fixed-length window, newest sample first, NaN when empty
//   - [Thread]: one window plus the [plot.Line] it feeds
//   - [Stream]: one [Source] bound to as many threads as it returns values
//
// A stream probes its source once at construction to learn the arity. Every
// later [Stream.Update] must see the same number of values or it fails with
// [ErrRuntimeArity].
//
// # Update modes
//
// The processor is chosen once in [New]: [DefaultUpdate] shows the raw window,
// [SmoothedUpdate] shows a Gaussian-smoothed copy while storing raw values,
// [CustomUpdate] calls the caller's [ProcessFunc].
package stream
