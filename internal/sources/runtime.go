package sources

import (
	"runtime"

	"github.com/san-kum/streamplot/internal/stream"
)

func percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func newRuntimeMemory(Params) (stream.Source, error) {
	return func() []float64 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return []float64{percent(ms.HeapInuse, ms.HeapSys), percent(ms.StackInuse, ms.StackSys)}
	}, nil
}

func newRuntimeGC(Params) (stream.Source, error) {
	return func() []float64 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return []float64{100 * ms.GCCPUFraction}
	}, nil
}

func newRuntimeGoroutines(Params) (stream.Source, error) {
	return func() []float64 {
		return []float64{float64(runtime.NumGoroutine())}
	}, nil
}
