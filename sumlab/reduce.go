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

package sumlab

import "unsafe"

// Sum returns the sum of x folded strictly left to right starting from 0.
//
// Floating-point addition is not associative, so this order is the one every
// kernel in the lab has to reproduce. Returns 0 for an empty slice.
//
// Example:
//
//	Sum([]float32{0, 1, 2}) // 3
func Sum(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}

// SumPtr returns the sum of the n float32 values starting at p, in the same
// order as Sum.
//
// p must point to at least n readable float32 values; nothing is checked.
// n <= 0 returns 0 without touching p.
func SumPtr(p *float32, n int) float32 {
	var sum float32
	base := unsafe.Pointer(p)
	for i := 0; i < n; i++ {
		sum += *(*float32)(unsafe.Add(base, i*4))
	}
	return sum
}

// Apply runs k over x through the pointer/count contract.
// An empty slice is passed as a nil pointer with count 0.
func Apply(k Kernel, x []float32) float32 {
	return k.Fn(unsafe.SliceData(x), len(x))
}

// sumSlice adapts Sum to the pointer/count signature so the reference
// reducer can sit in the registry next to the other kernels.
func sumSlice(p *float32, n int) float32 {
	if n <= 0 {
		return 0
	}
	return Sum(unsafe.Slice(p, n))
}
