//go:build !arm64

package sumlab

func detect() {
	// The call/return and vector kernels are AArch64 assembly; elsewhere
	// only the Go reducers are available.
	setScalarMode()
}
