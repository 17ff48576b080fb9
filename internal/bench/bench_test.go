package bench

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-sumlab/sumlab"
)

func TestSummarize(t *testing.T) {
	r := Result{N: 1024, Samples: []float64{4, 1, 3, 2, 5}}
	r.summarize()

	if r.Min != 1 {
		t.Errorf("Min = %v, want 1", r.Min)
	}
	if r.Median != 3 {
		t.Errorf("Median = %v, want 3", r.Median)
	}
	if r.Mean != 3 {
		t.Errorf("Mean = %v, want 3", r.Mean)
	}
	// Sample standard deviation of 1..5.
	if want := math.Sqrt(2.5); math.Abs(r.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", r.StdDev, want)
	}
	if want := 4096.0 / 3; math.Abs(r.GBPerSec()-want) > 1e-9 {
		t.Errorf("GBPerSec() = %v, want %v", r.GBPerSec(), want)
	}
}

func TestRun(t *testing.T) {
	cfg := Config{N: 1024, Iters: 10, Samples: 3}
	results, err := Run(sumlab.Global.Kernels(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(sumlab.Global.Kernels()) {
		t.Fatalf("got %d results, want %d", len(results), len(sumlab.Global.Kernels()))
	}
	for _, r := range results {
		if r.Sum != 523776 {
			t.Errorf("%s: sum = %v, want 523776", r.Name, r.Sum)
		}
		if len(r.Samples) != 3 {
			t.Errorf("%s: %d samples, want 3", r.Name, len(r.Samples))
		}
		if r.Min > r.Median || r.Median < 0 {
			t.Errorf("%s: min %v > median %v", r.Name, r.Min, r.Median)
		}
	}
}

func TestRunFilter(t *testing.T) {
	results, err := Run(sumlab.Global.Kernels(), Config{N: 16, Iters: 1, Samples: 1, Filter: "sum_slice"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Name != "sum_slice" {
		t.Fatalf("results = %+v, want only sum_slice", results)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	if _, err := Run(nil, Config{N: 1, Iters: 0, Samples: 1}); err == nil {
		t.Fatal("expected error for zero iterations")
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, []Result{{Name: "sum_ptr", Strategy: sumlab.StrategyPointer, N: 4, Min: 1, Median: 2, Mean: 2, Sum: 6}})
	out := buf.String()
	for _, want := range []string{"kernel", "sum_ptr", "pointer", "6\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
