//go:build amd64

// control/platform_amd64.go
// Author: momentics <momentics@gmail.com>
//
// x86-64 feature table.

package control

import "golang.org/x/sys/cpu"

func cpuFeatures() map[string]bool {
	return map[string]bool{
		"sse2":    cpu.X86.HasSSE2,
		"sse42":   cpu.X86.HasSSE42,
		"avx":     cpu.X86.HasAVX,
		"avx2":    cpu.X86.HasAVX2,
		"avx512f": cpu.X86.HasAVX512F,
		"erms":    cpu.X86.HasERMS,
		"popcnt":  cpu.X86.HasPOPCNT,
	}
}
