//go:build !amd64 && !arm64

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

func cpuFeatures() map[string]bool {
	return map[string]bool{}
}
