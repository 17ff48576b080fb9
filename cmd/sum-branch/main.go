// Command sum-branch prints the sum of [0, 1, ..., n-1] computed by the
// assembly loop built from plain branches.
//
// Usage:
//
//	sum-branch 1024
package main

import (
	"os"

	"github.com/ajroetker/go-sumlab/internal/cli"
)

func main() {
	os.Exit(cli.Run("sum_ptr_asm_branch", os.Args[1:], os.Stdout, os.Stderr))
}
