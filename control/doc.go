// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for hioload-ring.
//
// Provides concurrent-safe registries used by the ringdemo harness:
//   - MetricsRegistry collects named measurements (bench timings, counters)
//   - DebugProbes maps names to state callbacks, typically Buffer.State
//   - RegisterPlatformProbes publishes the host CPU feature set
//
// Platform probes are build-tag-partitioned per architecture.
package control
