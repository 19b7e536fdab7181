package anim_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/streamplot/internal/anim"
	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/stream"
)

type failingUpdater struct{ err error }

func (f failingUpdater) Update() ([]plot.Line, error) { return nil, f.err }

func constant(values ...float64) stream.Source {
	return func() []float64 { return values }
}

var _ = Describe("Animation", func() {
	var (
		fig *plot.Figure
		ax  *plot.Axes2D
		a   *anim.Animation
	)

	BeforeEach(func() {
		fig = plot.NewFigure("test")
		ax = fig.AddAxes("lines")
		ax.SetXLim(0, 10)
		a = anim.New(time.Millisecond)
	})

	Describe("state", func() {
		It("starts idle", func() {
			Expect(a.State()).To(Equal(anim.Idle))
		})

		It("refuses to start without streams", func() {
			Expect(a.Start()).To(MatchError(anim.ErrNoStreams))
			Expect(a.State()).To(Equal(anim.Idle))
		})

		It("moves to running once", func() {
			s, err := stream.New(ax, constant(1), stream.Options{})
			Expect(err).NotTo(HaveOccurred())
			a.AddStream(s)

			Expect(a.Start()).To(Succeed())
			Expect(a.State()).To(Equal(anim.Running))
			Expect(a.Start()).To(MatchError(anim.ErrAlreadyRunning))
		})
	})

	Describe("DrawFrame", func() {
		It("returns lines stream by stream, thread by thread", func() {
			one, err := stream.New(ax, constant(1), stream.Options{})
			Expect(err).NotTo(HaveOccurred())
			three, err := stream.New(ax, constant(2, 3, 4), stream.Options{})
			Expect(err).NotTo(HaveOccurred())
			a.AddStream(one, three)

			lines, err := a.DrawFrame()
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(4))

			want := []plot.Line{
				one.Threads()[0].Line(),
				three.Threads()[0].Line(),
				three.Threads()[1].Line(),
				three.Threads()[2].Line(),
			}
			for i := range want {
				Expect(lines[i]).To(BeIdenticalTo(want[i]))
			}
			Expect(lines[3].YData()[0]).To(Equal(4.0))
			Expect(a.Frames()).To(BeEquivalentTo(1))
		})

		It("keeps registration order across calls", func() {
			first, _ := stream.New(ax, constant(1), stream.Options{})
			second, _ := stream.New(ax, constant(2), stream.Options{})
			a.AddStream(first)
			a.AddStream(second)

			for i := 0; i < 3; i++ {
				lines, err := a.DrawFrame()
				Expect(err).NotTo(HaveOccurred())
				Expect(lines[0]).To(BeIdenticalTo(first.Threads()[0].Line()))
				Expect(lines[1]).To(BeIdenticalTo(second.Threads()[0].Line()))
			}
		})

		It("propagates a failing stream with its index", func() {
			ok, _ := stream.New(ax, constant(1), stream.Options{})
			boom := errors.New("boom")
			a.AddStream(ok, failingUpdater{err: boom})

			lines, err := a.DrawFrame()
			Expect(lines).To(BeNil())
			Expect(err).To(MatchError(boom))
			Expect(err.Error()).To(ContainSubstring("stream 1"))
			Expect(a.Frames()).To(BeZero())
		})

		It("surfaces runtime arity changes", func() {
			calls := 0
			src := func() []float64 {
				calls++
				if calls > 2 {
					return []float64{1, 2}
				}
				return []float64{1}
			}
			s, err := stream.New(ax, src, stream.Options{})
			Expect(err).NotTo(HaveOccurred())
			a.AddStream(s)

			_, err = a.DrawFrame()
			Expect(err).NotTo(HaveOccurred())
			_, err = a.DrawFrame()
			Expect(errors.Is(err, stream.ErrRuntimeArity)).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("renders frames until the context ends", func() {
			s, _ := stream.New(ax, constant(7), stream.Options{})
			a.AddStream(s)

			ctx, cancel := context.WithCancel(context.Background())
			frames := 0
			err := a.Run(ctx, func(lines []plot.Line) error {
				Expect(lines).To(HaveLen(1))
				frames++
				if frames == 5 {
					cancel()
				}
				return nil
			})

			Expect(err).To(MatchError(context.Canceled))
			Expect(frames).To(Equal(5))
			Expect(a.Frames()).To(BeEquivalentTo(5))
		})

		It("stops on the first render error", func() {
			s, _ := stream.New(ax, constant(7), stream.Options{})
			a.AddStream(s)
			stop := errors.New("stop")

			err := a.Run(context.Background(), func([]plot.Line) error { return stop })
			Expect(err).To(MatchError(stop))
			Expect(a.Frames()).To(BeEquivalentTo(1))
		})

		It("stops on the first frame error", func() {
			boom := errors.New("boom")
			a.AddStream(failingUpdater{err: boom})

			err := a.Run(context.Background(), nil)
			Expect(err).To(MatchError(boom))
		})

		It("fails fast when nothing is registered", func() {
			Expect(a.Run(context.Background(), nil)).To(MatchError(anim.ErrNoStreams))
		})
	})
})
