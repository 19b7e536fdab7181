package anim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/streamplot/internal/plot"
)

var (
	ErrNoStreams      = errors.New("anim: no streams registered")
	ErrAlreadyRunning = errors.New("anim: animation already running")
)

// Updater is anything that refreshes its lines once per frame.
type Updater interface {
	Update() ([]plot.Line, error)
}

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

type Option func(*Animation)

func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Animation) { a.log = log }
}

// Animation redraws its streams on every tick, in registration order.
type Animation struct {
	interval time.Duration
	streams  []Updater
	state    State
	frames   uint64
	log      logrus.FieldLogger
}

func New(interval time.Duration, opts ...Option) *Animation {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	a := &Animation{
		interval: interval,
		streams:  make([]Updater, 0),
		log:      quiet,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animation) AddStream(streams ...Updater) {
	a.streams = append(a.streams, streams...)
}

func (a *Animation) Len() int                { return len(a.streams) }
func (a *Animation) State() State            { return a.state }
func (a *Animation) Interval() time.Duration { return a.interval }
func (a *Animation) Frames() uint64          { return a.frames }

// Start moves the animation from idle to running.
func (a *Animation) Start() error {
	if a.state == Running {
		return ErrAlreadyRunning
	}
	if len(a.streams) == 0 {
		return ErrNoStreams
	}
	a.state = Running
	a.log.WithFields(logrus.Fields{
		"streams":  len(a.streams),
		"interval": a.interval,
	}).Info("animation started")
	return nil
}

// DrawFrame updates every stream once and returns the lines that changed,
// stream by stream, thread by thread.
func (a *Animation) DrawFrame() ([]plot.Line, error) {
	drawn := make([]plot.Line, 0, len(a.streams))
	for i, s := range a.streams {
		lines, err := s.Update()
		if err != nil {
			a.log.WithError(err).WithFields(logrus.Fields{
				"stream": i,
				"frame":  a.frames,
			}).Error("frame aborted")
			return nil, fmt.Errorf("stream %d: %w", i, err)
		}
		drawn = append(drawn, lines...)
	}
	a.frames++
	a.log.WithFields(logrus.Fields{
		"frame": a.frames,
		"lines": len(drawn),
	}).Trace("frame drawn")
	return drawn, nil
}

// Run drives the animation until ctx is done or a frame fails. The next tick
// is armed only after render returns, so slow frames delay the schedule
// instead of piling up.
func (a *Animation) Run(ctx context.Context, render func([]plot.Line) error) error {
	if err := a.Start(); err != nil {
		return err
	}

	timer := time.NewTimer(a.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		lines, err := a.DrawFrame()
		if err != nil {
			return err
		}
		if render != nil {
			if err := render(lines); err != nil {
				return err
			}
		}
		timer.Reset(a.interval)
	}
}
