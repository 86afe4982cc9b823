// Package api
// Author: momentics
//
// Live debug and state introspection support.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of registered state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}

// Metrics accepts named runtime measurements.
type Metrics interface {
	Set(key string, value any)
	GetSnapshot() map[string]any
}
