// Command sum-neon prints the sum of [0, 1, ..., n-1] computed by the
// NEON vector reduction.
//
// Usage:
//
//	sum-neon 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_neon", os.Args[1:], os.Stdout, os.Stderr))
}
