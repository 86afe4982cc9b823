// File: api/storage.go
// Author: momentics <momentics@gmail.com>
//
// Raw slot storage contract for fixed-capacity containers.

package api

// StorageKind names the memory strategy behind a Storage.
type StorageKind int

const (
	// StorageInline keeps the slot array inside the owning value.
	StorageInline StorageKind = iota
	// StorageHeap keeps the slot array in a separate heap block.
	StorageHeap
)

func (k StorageKind) String() string {
	switch k {
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	}
	return "unknown"
}

// Storage provides a fixed block of element slots.
// It manages memory only; element lifetimes belong to the owner.
type Storage[T any] interface {
	// Slots returns the slot block. Its length is the capacity and it is
	// never resized or moved while the storage is alive.
	Slots() []T

	// Kind reports the memory strategy.
	Kind() StorageKind

	// Release gives the block back. Slots must not be used afterwards.
	Release()
}

// StorageStats aggregates slot block allocation stats.
type StorageStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}
