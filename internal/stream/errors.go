package stream

import (
	"errors"
	"fmt"
)

// Domain errors for stream construction and updates.
var (
	// ErrConfiguration indicates invalid stream options. Raised before any
	// thread is created.
	ErrConfiguration = errors.New("stream: invalid configuration")

	// ErrRuntimeArity indicates a source returned a different number of
	// values than it did when the stream was built.
	ErrRuntimeArity = errors.New("stream: source arity changed")
)

// ConfigError wraps ErrConfiguration with the offending option.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// ArityError wraps ErrRuntimeArity with the expected and observed sizes.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: want %d values, got %d", ErrRuntimeArity, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrRuntimeArity
}
