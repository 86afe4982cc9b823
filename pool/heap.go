// File: pool/heap.go
// Package pool implements slot storage providers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// heapAccounting: process-wide counters for heap slot blocks.
var heapAccounting struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytes      atomic.Int64
}

// Heap is the dynamic provider: one block allocated up front, released once.
type Heap[T any] struct {
	slots []T
	bytes int64
}

// NewHeap allocates a block of capacity slots.
func NewHeap[T any](capacity int) (*Heap[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "heap storage capacity must be positive").
			WithContext("capacity", capacity)
	}
	var zero T
	h := &Heap[T]{
		slots: make([]T, capacity),
		bytes: int64(capacity) * int64(unsafe.Sizeof(zero)),
	}
	heapAccounting.totalAlloc.Add(1)
	heapAccounting.bytes.Add(h.bytes)
	return h, nil
}

func (h *Heap[T]) Slots() []T { return h.slots }

func (h *Heap[T]) Kind() api.StorageKind { return api.StorageHeap }

// Release drops the block. Calling it twice is harmless.
func (h *Heap[T]) Release() {
	if h.slots == nil {
		return
	}
	h.slots = nil
	heapAccounting.totalFree.Add(1)
	heapAccounting.bytes.Add(-h.bytes)
}

// HeapStats reports heap block accounting across all Heap providers.
func HeapStats() api.StorageStats {
	totalAlloc := heapAccounting.totalAlloc.Load()
	totalFree := heapAccounting.totalFree.Load()
	return api.StorageStats{
		TotalAlloc: totalAlloc,
		TotalFree:  totalFree,
		InUse:      totalAlloc - totalFree,
		BytesInUse: heapAccounting.bytes.Load(),
	}
}

var _ api.Storage[any] = (*Heap[any])(nil)
