package sumlab

import (
	"os"
	"strconv"
)

// DispatchLevel is the widest instruction set the kernels may use on this host.
type DispatchLevel int

const (
	// DispatchScalar restricts the lab to scalar kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchNEON enables the AArch64 Advanced SIMD kernel (128-bit, 4 float32 lanes).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by detect() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
var currentWidth int

// CurrentLevel returns the instruction set the registry was populated for.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes (16 for NEON,
// 4 when only scalar float32 kernels are enabled).
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current dispatch level.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether SUMLAB_NO_SIMD is set.
// When set, the vector kernel is not registered regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("SUMLAB_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 4
}
