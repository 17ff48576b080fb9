// Command sum-matched prints the sum of [0, 1, ..., n-1] computed by the
// assembly loop that enters its body with BL and returns with a matched RET.
//
// Usage:
//
//	sum-matched 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_ptr_asm", os.Args[1:], os.Stdout, os.Stderr))
}
