package cpuinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/ajroetker/go-sumlab/sumlab"
)

func TestDescribe(t *testing.T) {
	info := Describe()
	if info.GOARCH != runtime.GOARCH {
		t.Errorf("GOARCH = %q, want %q", info.GOARCH, runtime.GOARCH)
	}
	if info.Dispatch != sumlab.CurrentName() {
		t.Errorf("Dispatch = %q, want %q", info.Dispatch, sumlab.CurrentName())
	}
	if runtime.GOARCH != "arm64" && info.ASIMD {
		t.Errorf("ASIMD reported on %s", runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	s := Info{GOOS: "linux", GOARCH: "arm64", PhysicalCores: 4, LogicalCores: 4, CacheLine: 64, ASIMD: true, Dispatch: "neon"}.String()
	for _, want := range []string{"unknown CPU", "linux/arm64", "asimd=true", "dispatch=neon"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
