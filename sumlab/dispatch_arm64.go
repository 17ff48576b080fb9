//go:build arm64

package sumlab

import "golang.org/x/sys/cpu"

// detect picks the dispatch level from the CPU and SUMLAB_NO_SIMD.
func detect() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; the check only
	// guards against an emulator that hides it.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		return
	}
	setScalarMode()
}
