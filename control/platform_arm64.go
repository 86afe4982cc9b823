//go:build arm64

// control/platform_arm64.go
// Author: momentics <momentics@gmail.com>
//
// arm64 feature table.

package control

import "golang.org/x/sys/cpu"

func cpuFeatures() map[string]bool {
	return map[string]bool{
		"asimd":   cpu.ARM64.HasASIMD,
		"atomics": cpu.ARM64.HasATOMICS,
		"crc32":   cpu.ARM64.HasCRC32,
		"sve":     cpu.ARM64.HasSVE,
	}
}
