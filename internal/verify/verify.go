// Package verify checks kernels against the reference reducer.
package verify

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/ajroetker/go-sumlab/internal/workerpool"
	"github.com/ajroetker/go-sumlab/sumlab"
)

// Mismatch is one (kernel, length) case whose result differs bitwise from
// sumlab.Sum, or whose second call differed from its first.
type Mismatch struct {
	Kernel string
	N      int
	Got    float32
	Want   float32

	// Repeat is set when the kernel disagreed with itself on a second call
	// over the same buffer; Want then holds the first result.
	Repeat bool
}

func (m Mismatch) String() string {
	if m.Repeat {
		return fmt.Sprintf("%s n=%d: second call got %v, first call got %v", m.Kernel, m.N, m.Got, m.Want)
	}
	return fmt.Sprintf("%s n=%d: got %v, want %v", m.Kernel, m.N, m.Got, m.Want)
}

// Lengths returns 0..upTo followed by extra, sorted and without duplicates.
func Lengths(upTo int, extra ...int) []int {
	lengths := make([]int, 0, upTo+1+len(extra))
	for n := 0; n <= upTo; n++ {
		lengths = append(lengths, n)
	}
	lengths = append(lengths, extra...)
	slices.Sort(lengths)
	return slices.Compact(lengths)
}

// Check runs every kernel over build(n) for each n and compares the result
// with sumlab.Sum bit for bit. Cases run on pool; each buffer is built once
// and shared read-only by all kernels.
func Check(pool *workerpool.Pool, kernels []sumlab.Kernel, lengths []int, build func(n int) []float32) []Mismatch {
	bufs := make([][]float32, len(lengths))
	wants := make([]float32, len(lengths))
	for i, n := range lengths {
		bufs[i] = build(n)
		wants[i] = sumlab.Sum(bufs[i])
	}

	var (
		mu         sync.Mutex
		mismatches []Mismatch
	)
	report := func(m Mismatch) {
		mu.Lock()
		mismatches = append(mismatches, m)
		mu.Unlock()
	}

	pool.Each(len(kernels)*len(lengths), func(c int) {
		k := kernels[c/len(lengths)]
		i := c % len(lengths)
		buf, want := bufs[i], wants[i]

		got := sumlab.Apply(k, buf)
		if math.Float32bits(got) != math.Float32bits(want) {
			report(Mismatch{Kernel: k.Name, N: len(buf), Got: got, Want: want})
			return
		}
		if again := sumlab.Apply(k, buf); math.Float32bits(again) != math.Float32bits(got) {
			report(Mismatch{Kernel: k.Name, N: len(buf), Got: again, Want: got, Repeat: true})
		}
	})

	slices.SortFunc(mismatches, func(a, b Mismatch) int {
		return cmp.Or(cmp.Compare(a.Kernel, b.Kernel), cmp.Compare(a.N, b.N))
	})
	return mismatches
}
