// Package corpus builds the float32 buffers the kernels are checked and
// timed against.
package corpus

import "github.com/zeebo/pcg"

// exactLimit is 2^24: every integer up to it is representable in float32,
// so sums of non-negative integers below it are exact in any order.
const exactLimit = 1 << 24

// Iota returns [0, 1, ..., n-1] as float32.
func Iota(n int) []float32 {
	if n < 0 {
		n = 0
	}
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(i)
	}
	return buf
}

// IotaExactLimit is the largest n for which every prefix sum of Iota(n)
// stays below 2^24.
func IotaExactLimit() int {
	n := 0
	for (n+1)*n/2 < exactLimit {
		n++
	}
	return n
}

// SmallInts returns n random integers in [0, bound] as float32.
//
// bound is clamped so that n*bound stays below 2^24; every partial sum is then
// exact and any grouping of the additions gives the same float32.
func SmallInts(n int, bound uint32) []float32 {
	if n <= 0 {
		return []float32{}
	}
	if limit := ExactMax(n); bound > limit {
		bound = limit
	}
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(pcg.Uint64() % (uint64(bound) + 1))
	}
	return buf
}

// ExactMax returns the largest per-element bound for which the sum of n such
// elements stays below 2^24.
func ExactMax(n int) uint32 {
	if n <= 0 {
		return exactLimit - 1
	}
	return uint32((exactLimit - 1) / n)
}
