// Copyright 2026 go-sumlab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sumbench times every registered kernel over the same buffer and
// prints a table of per-call timings.
//
// Usage:
//
//	sumbench                      # all kernels, n=1024
//	sumbench -n 4096 -filter asm  # only the assembly call/return variants
//	SUMLAB_NO_SIMD=1 sumbench     # without the NEON kernel
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajroetker/go-sumlab/internal/bench"
	"github.com/ajroetker/go-sumlab/internal/cpuinfo"
	"github.com/ajroetker/go-sumlab/sumlab"
)

var (
	defaults = bench.DefaultConfig()

	n       = flag.Int("n", defaults.N, "Buffer length")
	iters   = flag.Int("iters", defaults.Iters, "Kernel calls per timed sample")
	samples = flag.Int("samples", defaults.Samples, "Timed samples per kernel")
	filter  = flag.String("filter", "", "Only run kernels whose name contains this string")
	showCPU = flag.Bool("cpu", true, "Print the host description before the results")
)

func main() {
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	cfg := bench.Config{N: *n, Iters: *iters, Samples: *samples, Filter: *filter}
	results, err := bench.Run(sumlab.Global.Kernels(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no kernel matches -filter %q\n", *filter)
		os.Exit(1)
	}

	if *showCPU {
		fmt.Println(cpuinfo.Describe())
		fmt.Println()
	}
	bench.Report(os.Stdout, results)
}
