// Package pool
// Author: momentics <momentics@gmail.com>
//
// Slot storage layer for hioload-ring.
// Provides the two interchangeable api.Storage providers:
//   - Heap: one block allocated at construction, freed on Release, with
//     process-wide accounting (HeapStats).
//   - Inline: the slot array is part of the provider value; no allocation.
//
// Capacity is fixed at the type level by a Shape (a fixed-size array type).
// Selection between providers is a pure function of the shape and element
// type (Footprint against InlineThreshold), so every instantiation always
// picks the same provider.
package pool
