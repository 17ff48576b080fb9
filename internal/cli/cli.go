// Package cli implements the one-kernel command-line entry points.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ajroetker/go-sumlab/internal/corpus"
	"github.com/ajroetker/go-sumlab/sumlab"
)

// Run builds [0, 1, ..., n-1] for the single positional argument n, sums it
// with the named kernel and prints the result. It returns the process exit
// code.
func Run(kernel string, args []string, stdout, stderr io.Writer) int {
	sum, err := sumCount(kernel, args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, sum)
	return 0
}

func sumCount(kernel string, args []string) (float32, error) {
	n, err := ParseCount(args)
	if err != nil {
		return 0, err
	}
	k, err := sumlab.Global.ByName(kernel)
	if err != nil {
		return 0, err
	}
	return sumlab.Apply(k, corpus.Iota(n)), nil
}

// ParseCount reads the element count from the only positional argument.
func ParseCount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("usage: expected exactly one argument, the element count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[0], err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid count %d: must not be negative", n)
	}
	return n, nil
}
