// Command sum-register prints the sum of [0, 1, ..., n-1] computed by the
// assembly loop that uses BR X30 as its backward branch.
//
// Usage:
//
//	sum-register 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_ptr_asm_br", os.Args[1:], os.Stdout, os.Stderr))
}
