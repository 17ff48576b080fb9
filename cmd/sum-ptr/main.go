// Command sum-ptr prints the sum of [0, 1, ..., n-1] computed by the
// pointer walk in Go.
//
// Usage:
//
//	sum-ptr 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_ptr", os.Args[1:], os.Stdout, os.Stderr))
}
