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

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Strategy identifies the loop-control shape of a kernel.
type Strategy int

const (
	// StrategyIterate is a range loop over a slice.
	StrategyIterate Strategy = iota

	// StrategyPointer walks a raw pointer with an explicit count.
	StrategyPointer

	// StrategyCallMatched enters the loop body with BL and leaves it with a
	// RET that returns to the instruction after that BL.
	StrategyCallMatched

	// StrategyCallMismatched enters the body once with BL and uses the body's
	// RET as the backward branch.
	StrategyCallMismatched

	// StrategyCallRegister is StrategyCallMismatched with BR X30 in place of RET.
	StrategyCallRegister

	// StrategyBranch uses only a conditional exit and an unconditional
	// backward branch.
	StrategyBranch

	// StrategyVector is the NEON reduction.
	StrategyVector
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyIterate:
		return "iterate"
	case StrategyPointer:
		return "pointer"
	case StrategyCallMatched:
		return "call-matched"
	case StrategyCallMismatched:
		return "call-mismatched"
	case StrategyCallRegister:
		return "call-register"
	case StrategyBranch:
		return "branch"
	case StrategyVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Func is the contract every kernel implements: sum n float32 values
// starting at p. p must be valid for n reads; n <= 0 must return 0
// without dereferencing p.
type Func func(p *float32, n int) float32

// Kernel describes one summation variant. It carries no state.
type Kernel struct {
	// Name is the stable label used by benchmarks and the CLI.
	Name string

	Strategy Strategy

	// Priority orders kernels for Lookup; higher wins.
	Priority int

	// NeedsNEON marks kernels that require Advanced SIMD.
	NeedsNEON bool

	Fn Func
}

// ErrUnknownKernel is returned by ByName when no kernel has the given name.
var ErrUnknownKernel = errors.New("sumlab: unknown kernel")

// Registry holds kernels in registration order.
type Registry struct {
	mu      sync.RWMutex
	kernels []Kernel
}

// Global holds the built-in kernels available on this host.
var Global = &Registry{}

// Register adds k. Registering two kernels with the same name panics.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.kernels {
		if e.Name == k.Name {
			panic(fmt.Sprintf("sumlab: kernel %q registered twice", k.Name))
		}
	}
	r.kernels = append(r.kernels, k)
}

// Kernels returns a copy of the registered kernels in registration order.
func (r *Registry) Kernels() []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kernels := make([]Kernel, len(r.kernels))
	copy(kernels, r.kernels)
	return kernels
}

// ByName returns the kernel registered under name.
func (r *Registry) ByName(name string) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, k := range r.kernels {
		if k.Name == name {
			return k, nil
		}
	}
	return Kernel{}, fmt.Errorf("%w %q", ErrUnknownKernel, name)
}

// Lookup returns the highest-priority kernel the given features can run.
// Ties go to the kernel registered first.
func (r *Registry) Lookup(features cpu.Features) (Kernel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := -1
	for i, k := range r.kernels {
		if k.NeedsNEON && (!features.HasNEON || features.ForceGeneric) {
			continue
		}
		if best < 0 || k.Priority > r.kernels[best].Priority {
			best = i
		}
	}
	if best < 0 {
		return Kernel{}, false
	}
	return r.kernels[best], true
}

// SumFast sums x with the fastest kernel the CPU supports.
//
// Unlike Sum, the result may regroup additions (the NEON kernel accumulates
// per lane), so it equals Sum only when the regrouping is exact, e.g. for
// integer-valued inputs whose partial sums stay below 2^24.
func SumFast(x []float32) float32 {
	k, ok := Global.Lookup(cpu.DetectFeatures())
	if !ok {
		return Sum(x)
	}
	return Apply(k, x)
}

func portableKernels() []Kernel {
	return []Kernel{
		{Name: "sum_slice", Strategy: StrategyIterate, Priority: 0, Fn: sumSlice},
		{Name: "sum_ptr", Strategy: StrategyPointer, Priority: 1, Fn: SumPtr},
	}
}

func init() {
	detect()
	for _, k := range portableKernels() {
		Global.Register(k)
	}
	for _, k := range archKernels() {
		Global.Register(k)
	}
}
