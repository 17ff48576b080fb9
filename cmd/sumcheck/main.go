// Command sumcheck verifies that every registered kernel returns exactly the
// reference sum.
//
// It covers every length from 0 to -max plus 1024 and 1025 on the counting
// corpus [0, 1, ..., n-1], then -random rounds of small random integers.
// Any mismatch is printed and the exit status is 1.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/ajroetker/go-sumlab/internal/corpus"
	"github.com/ajroetker/go-sumlab/internal/verify"
	"github.com/ajroetker/go-sumlab/internal/workerpool"
	"github.com/ajroetker/go-sumlab/sumlab"
)

var (
	maxLen  = flag.Int("max", 64, "Check every length from 0 to this value")
	rounds  = flag.Int("random", 4, "Rounds of random small-integer buffers")
	workers = flag.Int("workers", runtime.GOMAXPROCS(0), "Number of parallel workers")
)

func main() {
	flag.Parse()

	if *maxLen < 0 || *rounds < 0 {
		fmt.Fprintf(os.Stderr, "Error: -max and -random must not be negative\n")
		os.Exit(1)
	}
	// Past this length the counting corpus has inexact prefix sums and the
	// vector kernel may round differently from the left fold.
	if limit := corpus.IotaExactLimit(); *maxLen > limit {
		fmt.Fprintf(os.Stderr, "Error: -max %d exceeds the exact limit %d\n", *maxLen, limit)
		os.Exit(1)
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	kernels := sumlab.Global.Kernels()
	lengths := verify.Lengths(*maxLen, 1024, 1025)

	mismatches := verify.Check(pool, kernels, lengths, corpus.Iota)
	for range *rounds {
		mismatches = append(mismatches, verify.Check(pool, kernels, lengths, func(n int) []float32 {
			return corpus.SmallInts(n, corpus.ExactMax(n))
		})...)
	}

	for _, m := range mismatches {
		fmt.Println(m)
	}
	fmt.Printf("%d kernels, %d lengths, %d rounds: %d mismatches\n",
		len(kernels), len(lengths), 1+*rounds, len(mismatches))
	if len(mismatches) > 0 {
		pool.Close()
		os.Exit(1)
	}
}
