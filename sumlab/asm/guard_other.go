//go:build !arm64

package asm

// The kernels are AArch64 assembly and have no portable fallback.
var _ = sumlab_asm_requires_GOARCH_arm64
