package stream

import (
	"math"

	"github.com/gammazero/deque"
)

// Buffer is a fixed-length window of the most recent samples, newest first.
// Empty slots hold NaN.
type Buffer struct {
	q      deque.Deque[float64]
	length int
}

// NewBuffer returns a window of capacity+2*padding NaN slots.
func NewBuffer(capacity, padding int) *Buffer {
	b := &Buffer{length: capacity + 2*padding}
	for i := 0; i < b.length; i++ {
		b.q.PushBack(math.NaN())
	}
	return b
}

// Push evicts the oldest sample and inserts v at the front.
func (b *Buffer) Push(v float64) {
	if b.length == 0 {
		return
	}
	b.q.PopBack()
	b.q.PushFront(v)
}

func (b *Buffer) Len() int { return b.length }

// At returns the i-th sample, 0 being the newest.
func (b *Buffer) At(i int) float64 { return b.q.At(i) }

// Snapshot copies the window, newest first.
func (b *Buffer) Snapshot() []float64 {
	out := make([]float64, b.length)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}
