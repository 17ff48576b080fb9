// Command sum-slice prints the sum of [0, 1, ..., n-1] computed by the
// range loop over the slice.
//
// Usage:
//
//	sum-slice 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_slice", os.Args[1:], os.Stdout, os.Stderr))
}
