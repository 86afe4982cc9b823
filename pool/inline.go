// File: pool/inline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// InlineThreshold is the largest slot block, in bytes, kept inline.
const InlineThreshold = 4096

// Shape is satisfied by a pointer to a fixed-size array type A of T.
// Len must not dereference its receiver; it is called on nil.
type Shape[T, A any] interface {
	*A
	Slots() []T
	Len() int
}

// Inline is the inline provider: the slot array is a field of the value, so
// embedding an Inline embeds the slots. There is nothing to free.
type Inline[T any, A any, PA Shape[T, A]] struct {
	arr A
}

func (s *Inline[T, A, PA]) Slots() []T { return PA(&s.arr).Slots() }

func (s *Inline[T, A, PA]) Kind() api.StorageKind { return api.StorageInline }

func (s *Inline[T, A, PA]) Release() {}

// Capacity returns the slot count fixed by shape A.
func Capacity[T any, A any, PA Shape[T, A]]() int {
	var p PA
	return p.Len()
}

// Footprint returns Capacity*sizeof(T) for shape A.
func Footprint[T any, A any, PA Shape[T, A]]() uintptr {
	var zero T
	return uintptr(Capacity[T, A, PA]()) * unsafe.Sizeof(zero)
}

// FitsInline reports whether shape A is small enough to live inline under
// the given threshold. Thresholds above InlineThreshold are clamped.
func FitsInline[T any, A any, PA Shape[T, A]](threshold uintptr) bool {
	if threshold > InlineThreshold {
		threshold = InlineThreshold
	}
	return Footprint[T, A, PA]() <= threshold
}

// UseInline is the provider decision for shape A: inline when it fits the
// threshold and forceHeap is unset.
func UseInline[T any, A any, PA Shape[T, A]](forceHeap bool, threshold uintptr) bool {
	return !forceHeap && FitsInline[T, A, PA](threshold)
}

// Select returns a standalone provider for shape A as decided by UseInline.
func Select[T any, A any, PA Shape[T, A]](forceHeap bool, threshold uintptr) (api.Storage[T], error) {
	if UseInline[T, A, PA](forceHeap, threshold) {
		return new(Inline[T, A, PA]), nil
	}
	h, err := NewHeap[T](Capacity[T, A, PA]())
	if err != nil {
		return nil, err
	}
	return h, nil
}

var _ api.Storage[int] = (*Inline[int, Array8[int], *Array8[int]])(nil)
