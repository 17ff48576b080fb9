//go:build arm64 && !noasm

package sumlab

import "github.com/ajroetker/go-sumlab/sumlab/asm"

// archKernels returns the hand-written AArch64 kernels. The vector kernel is
// left out when dispatch has been forced down to scalar.
func archKernels() []Kernel {
	kernels := []Kernel{
		{Name: "sum_ptr_asm", Strategy: StrategyCallMatched, Priority: 2, Fn: asm.SumMatched},
		{Name: "sum_ptr_asm2", Strategy: StrategyCallMismatched, Priority: 2, Fn: asm.SumMismatched},
		{Name: "sum_ptr_asm_br", Strategy: StrategyCallRegister, Priority: 2, Fn: asm.SumRegisterJump},
		{Name: "sum_ptr_asm_branch", Strategy: StrategyBranch, Priority: 10, Fn: asm.SumBranch},
	}
	if currentLevel == DispatchNEON {
		kernels = append(kernels, Kernel{
			Name: "sum_neon", Strategy: StrategyVector, Priority: 20, NeedsNEON: true, Fn: asm.SumNEON,
		})
	}
	return kernels
}
