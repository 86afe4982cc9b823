// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Host platform probes: CPU count, architecture, cache line and ISA features.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size x/sys/cpu pads to on this architecture.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// CPUFeatures reports the ISA extensions relevant to bulk slot copies.
// Architectures without a table return an empty map.
func CPUFeatures() map[string]bool {
	return cpuFeatures()
}

// RegisterPlatformProbes sets platform debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return CacheLineSize
	})
	dp.RegisterProbe("platform.features", func() any {
		return CPUFeatures()
	})
}
