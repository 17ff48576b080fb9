// Package bench times kernels over a fixed buffer and summarizes the samples.
package bench

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
	"unsafe"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-sumlab/internal/corpus"
	"github.com/ajroetker/go-sumlab/sumlab"
)

// Config controls a benchmark run.
type Config struct {
	// N is the buffer length; the buffer is [0, 1, ..., N-1].
	N int

	// Iters is the number of kernel calls timed together as one sample.
	Iters int

	// Samples is the number of timed samples per kernel.
	Samples int

	// Filter keeps only kernels whose name contains it. Empty keeps all.
	Filter string
}

// DefaultConfig matches the 1024-element buffer the kernels are compared on.
func DefaultConfig() Config {
	return Config{N: 1024, Iters: 10000, Samples: 30}
}

// Result summarizes one kernel. Times are nanoseconds per call.
type Result struct {
	Name     string
	Strategy sumlab.Strategy
	N        int
	Sum      float32

	Samples []float64
	Min     float64
	Median  float64
	Mean    float64
	StdDev  float64
}

// GBPerSec is the input bandwidth at the median time.
func (r Result) GBPerSec() float64 {
	if r.Median == 0 {
		return 0
	}
	return float64(r.N*4) / r.Median
}

// sink keeps the timed calls from being optimized away.
var sink float32

// Run benchmarks every kernel that passes cfg.Filter, in the given order.
func Run(kernels []sumlab.Kernel, cfg Config) ([]Result, error) {
	if cfg.N < 0 || cfg.Iters <= 0 || cfg.Samples <= 0 {
		return nil, fmt.Errorf("bench: invalid config n=%d iters=%d samples=%d", cfg.N, cfg.Iters, cfg.Samples)
	}
	buf := corpus.Iota(cfg.N)
	p, n := unsafe.SliceData(buf), len(buf)

	var results []Result
	for _, k := range kernels {
		if cfg.Filter != "" && !strings.Contains(k.Name, cfg.Filter) {
			continue
		}
		// Warm up caches and the branch predictor before timing.
		timeSample(k.Fn, p, n, cfg.Iters)

		samples := make([]float64, cfg.Samples)
		for i := range samples {
			samples[i] = timeSample(k.Fn, p, n, cfg.Iters)
		}
		r := Result{Name: k.Name, Strategy: k.Strategy, N: n, Sum: k.Fn(p, n), Samples: samples}
		r.summarize()
		results = append(results, r)
	}
	return results, nil
}

func timeSample(fn sumlab.Func, p *float32, n, iters int) float64 {
	var acc float32
	start := time.Now()
	for range iters {
		acc += fn(p, n)
	}
	elapsed := time.Since(start)
	sink += acc
	return float64(elapsed.Nanoseconds()) / float64(iters)
}

func (r *Result) summarize() {
	r.Mean, r.StdDev = stat.MeanStdDev(r.Samples, nil)
	r.Min = floats.Min(r.Samples)
	sorted := slices.Clone(r.Samples)
	slices.Sort(sorted)
	r.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Report writes one line per result.
func Report(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-22s %-16s %10s %10s %18s %8s %s\n",
		"kernel", "strategy", "min ns", "median ns", "mean ± sd ns", "GB/s", "sum")
	for _, r := range results {
		fmt.Fprintf(w, "%-22s %-16s %10.1f %10.1f %10.1f ± %5.1f %8.2f %v\n",
			r.Name, r.Strategy, r.Min, r.Median, r.Mean, r.StdDev, r.GBPerSec(), r.Sum)
	}
}
