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

// Package asm holds the hand-written AArch64 summation kernels.
//
// Every kernel has the signature
//
//	func(p *float32, n int) float32
//
// and returns the sum of the n float32 values starting at p. p must be valid
// for n reads; nothing is bounds checked. n <= 0 returns 0 without loading.
//
// The scalar kernels differ only in how the per-element loop is wired:
//   - SumMatched: the loop test issues BL into the body and the body's RET
//     returns right after that BL, so every return matches its call.
//   - SumMismatched: one BL seeds the link register with the loop head and
//     the body's RET is the backward branch. The return stack predictor
//     sees one call and n+1 returns.
//   - SumRegisterJump: SumMismatched with BR X30 instead of RET.
//   - SumBranch: SUBS/B.LT exit test and an unconditional B back.
//
// All four add in index order, so they match a left-to-right fold bit for bit.
//
// SumNEON peels n mod 4 scalars, then one 4-lane group if a multiple of 8 is
// not yet reached, then runs 8 floats per iteration into two 4-lane
// accumulators. The accumulators are added lane-wise and the four lanes are
// folded into the scalar sum in lane order. That regrouping equals a
// left-to-right fold only when every partial sum is exact, e.g. integer
// values whose running totals stay below 2^24.
//
// The package only builds for GOARCH=arm64.
package asm
