// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry for buffer state inspection.

package control

import (
	"slices"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterState adapts a state callback such as Buffer.State.
func (dp *DebugProbes) RegisterState(name string, fn func() map[string]any) {
	dp.RegisterProbe(name, func() any { return fn() })
}

// Unregister drops a probe. Unknown names are ignored.
func (dp *DebugProbes) Unregister(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// Names lists registered probes in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// DumpState returns output of all probes.
// Probes run under the read lock and must not register or unregister.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
