// Command sum-mismatched prints the sum of [0, 1, ..., n-1] computed by the
// assembly loop that uses an unmatched RET as its backward branch.
//
// Usage:
//
//	sum-mismatched 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_ptr_asm2", os.Args[1:], os.Stdout, os.Stderr))
}
