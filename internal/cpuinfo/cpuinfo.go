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

// Package cpuinfo describes the host a benchmark ran on. Loop-control
// timings are only comparable on the same core, so every report starts
// with this.
package cpuinfo

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-sumlab/sumlab"
)

// Info is a snapshot of the processor and the lab's dispatch decision.
type Info struct {
	Brand         string
	Vendor        string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int

	GOOS   string
	GOARCH string

	// ASIMD is golang.org/x/sys/cpu's view of Advanced SIMD support.
	ASIMD bool

	// Dispatch is the level the kernel registry was populated for.
	Dispatch string
}

// Describe collects Info for the current process.
func Describe() Info {
	return Info{
		Brand:         cpuid.CPU.BrandName,
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		ASIMD:         cpu.ARM64.HasASIMD,
		Dispatch:      sumlab.CurrentName(),
	}
}

func (i Info) String() string {
	brand := i.Brand
	if brand == "" {
		brand = "unknown CPU"
	}
	return fmt.Sprintf("%s (%s/%s, %d cores, %d threads, %dB line, asimd=%v, dispatch=%s)",
		brand, i.GOOS, i.GOARCH, i.PhysicalCores, i.LogicalCores, i.CacheLine, i.ASIMD, i.Dispatch)
}
