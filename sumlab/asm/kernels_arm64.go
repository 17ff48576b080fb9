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

//go:build arm64

package asm

// SumMatched sums n float32 values at p with a BL/RET loop whose returns
// match their calls.
//
//go:noescape
func SumMatched(p *float32, n int) float32

// SumMismatched sums n float32 values at p, using the body's RET as the
// loop's backward branch.
//
//go:noescape
func SumMismatched(p *float32, n int) float32

// SumRegisterJump is SumMismatched with the backward branch taken through
// BR X30 rather than RET.
//
//go:noescape
func SumRegisterJump(p *float32, n int) float32

// SumBranch sums n float32 values at p with a decrement-and-test loop and no
// calls.
//
//go:noescape
func SumBranch(p *float32, n int) float32

// SumNEON sums n float32 values at p with 4-lane Advanced SIMD accumulators.
//
//go:noescape
func SumNEON(p *float32, n int) float32
