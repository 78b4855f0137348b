// benchmark.go
// A reusable benchmarking module for the classifier tools
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report is the resource usage captured around one run.
type Report struct {
	Label          string
	Elapsed        time.Duration
	AllocDeltaMB   float64
	TotalAllocMB   float64
	HeapMB         float64
	SysMB          float64
	GCCycles       uint32
	GoroutinesFrom int
	GoroutinesTo   int
}

// Run wraps any tool function to measure its runtime and memory usage.
// Host and OS information is printed first for repeatability. The error
// returned by f is passed through unchanged after the report is written.
func Run(label string, out io.Writer, f func() error) (Report, error) {
	fmt.Fprintf(out, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(out, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(out, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(out, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(out, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	runErr := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	rep := Report{
		Label:          label,
		Elapsed:        elapsed,
		AllocDeltaMB:   toMB(int64(memEnd.Alloc) - int64(memStart.Alloc)),
		TotalAllocMB:   toMB(int64(memEnd.TotalAlloc - memStart.TotalAlloc)),
		HeapMB:         toMB(int64(memEnd.HeapAlloc)),
		SysMB:          toMB(int64(memEnd.Sys)),
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		GoroutinesFrom: startGoroutines,
		GoroutinesTo:   runtime.NumGoroutine(),
	}

	fmt.Fprintf(out, "[Benchmark] Time Elapsed: %v\n", rep.Elapsed)
	fmt.Fprintf(out, "[Benchmark] Memory Used: %.2f MB\n", rep.AllocDeltaMB)      // can be negative after a GC
	fmt.Fprintf(out, "[Benchmark] Total Allocated: %.2f MB\n", rep.TotalAllocMB)
	fmt.Fprintf(out, "[Benchmark] Peak Heap: %.2f MB\n", rep.HeapMB)
	fmt.Fprintf(out, "[Benchmark] GC Cycles: %d\n", rep.GCCycles)
	fmt.Fprintf(out, "[Benchmark] Total System Memory Allocated: %.2f MB\n", rep.SysMB)
	fmt.Fprintf(out, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(out, "[Benchmark] Goroutines Started: %d → %d\n", rep.GoroutinesFrom, rep.GoroutinesTo)
	if runErr != nil {
		fmt.Fprintf(out, "[Benchmark] Run failed: %v\n", runErr)
	}
	fmt.Fprintln(out, "[Benchmark] ----------------------------------------")

	return rep, runErr
}

func toMB(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}
