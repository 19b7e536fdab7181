package stream

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/smooth"
)

type fakeLine struct {
	xs, ys []float64
	style  plot.Style
	sets   int
}

func (l *fakeLine) SetYData(ys []float64) { l.ys = ys; l.sets++ }
func (l *fakeLine) YData() []float64      { return l.ys }
func (l *fakeLine) XData() []float64      { return l.xs }
func (l *fakeLine) Style() plot.Style     { return l.style }

type fakeAxes struct {
	xmin, xmax float64
	lines      []*fakeLine
}

func (a *fakeAxes) XLim() (float64, float64) { return a.xmin, a.xmax }

func (a *fakeAxes) Plot(xs, ys []float64, style plot.Style) plot.Line {
	l := &fakeLine{xs: xs, ys: ys, style: style}
	a.lines = append(a.lines, l)
	return l
}

func sequence(batches ...[]float64) Source {
	i := 0
	return func() []float64 {
		b := batches[i%len(batches)]
		i++
		return b
	}
}

func TestStreamScenarioTwoThreads(t *testing.T) {
	ax := &fakeAxes{xmin: 0, xmax: 100}
	probe := []float64{0, 0}
	src := sequence(probe, []float64{10, 20}, []float64{11, 21}, []float64{12, 22})

	s, err := New(ax, src, Options{FixedLength: 3})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.Update(); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	want := [][]float64{{12, 11, 10}, {22, 21, 20}}
	for ti, th := range s.Threads() {
		got := th.Snapshot()
		for i := range want[ti] {
			if got[i] != want[ti][i] {
				t.Errorf("thread %d slot %d: expected %f, got %f", ti, i, want[ti][i], got[i])
			}
		}
		line := th.Line().YData()
		for i := range want[ti] {
			if line[i] != want[ti][i] {
				t.Errorf("thread %d line slot %d: expected %f, got %f", ti, i, want[ti][i], line[i])
			}
		}
	}
}

func TestStreamDerivesLengthFromAxes(t *testing.T) {
	ax := &fakeAxes{xmin: 0, xmax: 600}
	s, err := New(ax, func() []float64 { return []float64{1} }, Options{Padding: 5})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if s.Length() != 600 {
		t.Errorf("expected length 600, got %d", s.Length())
	}
	th := s.Threads()[0]
	if th.Buffer().Len() != 610 {
		t.Errorf("expected buffer of 610, got %d", th.Buffer().Len())
	}
	xs := th.Line().XData()
	if xs[0] != -5 || xs[len(xs)-1] != 604 {
		t.Errorf("unexpected x range [%f, %f]", xs[0], xs[len(xs)-1])
	}
}

func TestStreamUpdateReturnsOneLinePerThread(t *testing.T) {
	ax := &fakeAxes{xmin: 0, xmax: 10}
	s, err := New(ax, func() []float64 { return []float64{1, 2, 3, 4} }, Options{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for round := 0; round < 5; round++ {
		lines, err := s.Update()
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines, got %d", len(lines))
		}
		for i, l := range lines {
			if l != ax.lines[i] {
				t.Errorf("round %d: line %d out of constructor order", round, i)
			}
		}
	}
}

func TestStreamGroupStyleMismatch(t *testing.T) {
	ax := &fakeAxes{xmin: 0, xmax: 10}
	calls := 0
	src := func() []float64 { calls++; return []float64{1, 2} }

	_, err := New(ax, src, Options{GroupStyle: []plot.Style{{Label: "only one"}}})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "group_style" {
		t.Errorf("expected group_style ConfigError, got %v", err)
	}
	if len(ax.lines) != 0 {
		t.Errorf("expected no threads, %d lines were plotted", len(ax.lines))
	}
	if calls != 1 {
		t.Errorf("expected one probe, got %d calls", calls)
	}
}

func TestStreamStyles(t *testing.T) {
	shared := &plot.Style{Color: "#49b6d2"}
	group := []plot.Style{{Label: "main"}, {Label: "swap"}}
	src := func() []float64 { return []float64{1, 2} }

	ax := &fakeAxes{xmax: 10}
	if _, err := New(ax, src, Options{Style: shared, GroupStyle: group}); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if ax.lines[0].style.Label != "main" || ax.lines[1].style.Label != "swap" {
		t.Errorf("group style not applied per thread: %+v %+v", ax.lines[0].style, ax.lines[1].style)
	}

	ax = &fakeAxes{xmax: 10}
	if _, err := New(ax, src, Options{Style: shared}); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	for i, l := range ax.lines {
		if l.style.Color != "#49b6d2" {
			t.Errorf("line %d: shared style not applied", i)
		}
	}

	ax = &fakeAxes{xmax: 10}
	if _, err := New(ax, src, Options{}); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	for i, l := range ax.lines {
		if !l.style.IsZero() {
			t.Errorf("line %d: expected zero style, got %+v", i, l.style)
		}
	}
}

func TestStreamInvalidOptions(t *testing.T) {
	src := func() []float64 { return []float64{1} }
	tests := []struct {
		name  string
		ax    *fakeAxes
		src   Source
		opts  Options
		field string
	}{
		{"nil source", &fakeAxes{xmax: 10}, nil, Options{}, "source"},
		{"negative padding", &fakeAxes{xmax: 10}, src, Options{Padding: -1}, "padding"},
		{"negative length", &fakeAxes{xmax: 10}, src, Options{FixedLength: -3}, "fixed_length"},
		{"empty axes range", &fakeAxes{xmin: 4, xmax: 4}, src, Options{}, "fixed_length"},
		{"empty source", &fakeAxes{xmax: 10}, func() []float64 { return nil }, Options{}, "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.ax, tt.src, tt.opts)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, cfgErr.Field)
			}
			if len(tt.ax.lines) != 0 {
				t.Errorf("expected no lines, got %d", len(tt.ax.lines))
			}
		})
	}
}

func TestStreamRuntimeArityChange(t *testing.T) {
	ax := &fakeAxes{xmax: 5}
	src := sequence([]float64{1, 2}, []float64{1, 2}, []float64{1, 2, 3})

	s, err := New(ax, src, Options{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if _, err := s.Update(); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	_, err = s.Update()
	if !errors.Is(err, ErrRuntimeArity) {
		t.Fatalf("expected ErrRuntimeArity, got %v", err)
	}
	var arityErr *ArityError
	if !errors.As(err, &arityErr) || arityErr.Want != 2 || arityErr.Got != 3 {
		t.Errorf("unexpected arity error %v", err)
	}
	if got := s.Threads()[0].Snapshot()[0]; got != 1 {
		t.Errorf("failed update must not touch threads, newest is %f", got)
	}
}

func TestStreamSmoothing(t *testing.T) {
	ax := &fakeAxes{xmax: 40}
	noisy := []float64{3, 9, 1, 7, 2, 8, 0, 6, 4, 5, 9, 1}
	i := 0
	src := func() []float64 {
		v := noisy[i%len(noisy)]
		i++
		return []float64{v}
	}

	s, err := New(ax, src, Options{FixedLength: 12, Smoothing: true})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if s.Mode() != SmoothedUpdate {
		t.Fatalf("expected smoothed mode, got %s", s.Mode())
	}
	for n := 0; n < 24; n++ {
		if _, err := s.Update(); err != nil {
			t.Fatalf("update failed: %v", err)
		}
	}

	th := s.Threads()[0]
	raw := th.Snapshot()
	want := smooth.Gaussian(raw, SmoothingSigma)
	got := th.Line().YData()

	differs := false
	for k := range want {
		if math.Abs(got[k]-want[k]) > 1e-12 {
			t.Errorf("slot %d: expected smoothed %f, got %f", k, want[k], got[k])
		}
		if math.Abs(got[k]-raw[k]) > 1e-6 {
			differs = true
		}
	}
	if !differs {
		t.Error("smoothed line equals raw window")
	}
	for _, v := range raw {
		found := false
		for _, n := range noisy {
			if v == n {
				found = true
			}
		}
		if !found {
			t.Errorf("buffer holds %f, raw values must be stored unsmoothed", v)
		}
	}
}

func TestStreamCustomProcessor(t *testing.T) {
	ax := &fakeAxes{xmax: 3}
	var seen []float64
	proc := func(th *Thread, v float64) plot.Line {
		seen = append(seen, v)
		th.Push(v * 2)
		th.SetYData(th.Snapshot())
		return th.Line()
	}

	s, err := New(ax, func() []float64 { return []float64{1, 2} }, Options{Processor: proc, Smoothing: true})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if s.Mode() != CustomUpdate {
		t.Errorf("expected custom mode to win over smoothing, got %s", s.Mode())
	}
	if _, err := s.Update(); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("processor saw %v", seen)
	}
	if got := s.Threads()[1].Snapshot()[0]; got != 4 {
		t.Errorf("expected 4, got %f", got)
	}
}

func TestStreamNaNRendersAsGap(t *testing.T) {
	ax := &fakeAxes{xmax: 3}
	s, err := New(ax, sequence([]float64{0}, []float64{1}, []float64{math.NaN()}), Options{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	s.Update()
	s.Update()

	ys := s.Threads()[0].Line().YData()
	if !math.IsNaN(ys[0]) {
		t.Errorf("expected NaN at newest slot, got %f", ys[0])
	}
	if ys[1] != 1 {
		t.Errorf("expected 1 at slot 1, got %f", ys[1])
	}
}
