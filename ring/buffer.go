// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity overwrite-oldest ring buffer over pool storage.

package ring

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/cyclic"
	"github.com/momentics/hioload-ring/pool"
)

// Buffer holds at most Capacity elements, oldest first. Pushing into a full
// buffer overwrites the oldest element.
//
// The live elements are the count slots ending at cursor and running back
// cyclically; every other slot holds the zero value.
// Not safe for concurrent use.
type Buffer[T any] struct {
	storage  api.Storage[T]
	slots    []T
	capacity int
	cursor   cyclic.Counter[int] // slot of the newest element
	count    int
	destroy  func(*T)
	log      logrus.FieldLogger
	released bool
}

// inlineBuffer co-locates the slot array with the buffer header.
type inlineBuffer[T any, A any, PA pool.Shape[T, A]] struct {
	Buffer[T]
	store pool.Inline[T, A, PA]
}

// New returns an empty buffer whose capacity is fixed by shape A.
// Storage is inline when Capacity*sizeof(T) fits the inline threshold and
// ForceHeap is not given, heap otherwise.
// It panics if the shape has no slots.
func New[T any, A any, PA pool.Shape[T, A]](opts ...Option) *Buffer[T] {
	capacity := pool.Capacity[T, A, PA]()
	if capacity <= 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be positive").
			WithContext("capacity", capacity))
	}
	s := newSettings(opts)
	// Inline storage has to be embedded, so only the heap case can take the
	// provider Select builds.
	if pool.UseInline[T, A, PA](s.forceHeap, s.threshold) {
		ib := new(inlineBuffer[T, A, PA])
		ib.init(&ib.store, s)
		return &ib.Buffer
	}
	st, err := pool.Select[T, A, PA](s.forceHeap, s.threshold)
	if err != nil {
		panic(err)
	}
	b := new(Buffer[T])
	b.init(st, s)
	return b
}

// NewFrom returns a buffer holding the first Capacity items of src.
func NewFrom[T any, A any, PA pool.Shape[T, A]](src iter.Seq[T], opts ...Option) *Buffer[T] {
	b := New[T, A, PA](opts...)
	b.fill(src)
	return b
}

// NewOf returns a buffer holding the first Capacity values.
func NewOf[T any, A any, PA pool.Shape[T, A]](values []T, opts ...Option) *Buffer[T] {
	return NewFrom[T, A, PA](slices.Values(values), opts...)
}

// NewFilled returns a full buffer with every slot set to value.
func NewFilled[T any, A any, PA pool.Shape[T, A]](value T, opts ...Option) *Buffer[T] {
	b := New[T, A, PA](opts...)
	for range b.capacity {
		b.PushBack(value)
	}
	return b
}

// NewHeap returns an empty heap-backed buffer with a capacity chosen at run time.
func NewHeap[T any](capacity int, opts ...Option) (*Buffer[T], error) {
	h, err := pool.NewHeap[T](capacity)
	if err != nil {
		return nil, err
	}
	b := new(Buffer[T])
	b.init(h, newSettings(opts))
	return b, nil
}

func (b *Buffer[T]) init(st api.Storage[T], s settings) {
	b.storage = st
	b.slots = st.Slots()
	b.capacity = len(b.slots)
	b.cursor = cyclic.Span(b.capacity - 1)
	b.log = s.logger
	b.log.WithFields(logrus.Fields{
		"storage":   st.Kind().String(),
		"capacity":  b.capacity,
		"footprint": b.footprint(),
		"threshold": s.threshold,
	}).Debug("ring buffer allocated")
}

func (b *Buffer[T]) footprint() uintptr {
	var zero T
	return uintptr(b.capacity) * unsafe.Sizeof(zero)
}

// fill pushes items from src until it is exhausted or the buffer is full.
func (b *Buffer[T]) fill(src iter.Seq[T]) {
	if b.count == b.capacity {
		return
	}
	for v := range src {
		b.PushBack(v)
		if b.count == b.capacity {
			return
		}
	}
}

// Assign clears the buffer and refills it with the first Capacity items of src.
func (b *Buffer[T]) Assign(src iter.Seq[T]) {
	b.mustLive()
	b.Clear()
	b.fill(src)
}

// SetDestructor installs a hook run on every element just before its slot
// is cleared by a pop, an overwrite, Clear or Close. ReleaseFront and
// ReleaseBack hand the element to the caller and skip the hook.
func (b *Buffer[T]) SetDestructor(fn func(*T)) {
	b.destroy = fn
}

func (b *Buffer[T]) mustLive() {
	if b.released {
		panic(api.NewError(api.ErrCodeReleased, "use of released ring buffer"))
	}
}

func (b *Buffer[T]) destroySlot(p *T) {
	if b.destroy != nil {
		b.destroy(p)
	}
	clearSlot(p)
}

func clearSlot[T any](p *T) {
	var zero T
	*p = zero
}

// slotOf resolves the n-th element from the oldest to its physical slot.
func (b *Buffer[T]) slotOf(n int) int {
	return b.cursor.Sub(b.count - 1).Add(n).Value()
}

// advance claims the slot for a new newest element, destroying the oldest
// element first when the buffer is full.
func (b *Buffer[T]) advance() *T {
	b.mustLive()
	if b.count != 0 {
		b.cursor.Inc()
	}
	slot := &b.slots[b.cursor.Value()]
	if b.count == b.capacity {
		b.destroySlot(slot)
	} else {
		b.count++
	}
	return slot
}

// EmplaceBack constructs a new newest element in place. construct receives
// a pointer to a zeroed slot; nil leaves the zero value.
// The returned pointer is valid until the element is removed or overwritten.
func (b *Buffer[T]) EmplaceBack(construct func(*T)) *T {
	slot := b.advance()
	if construct != nil {
		construct(slot)
	}
	b.verify()
	return slot
}

// PushBack appends v as the newest element.
func (b *Buffer[T]) PushBack(v T) *T {
	slot := b.advance()
	*slot = v
	b.verify()
	return slot
}

func errEmpty(op string) *api.Error {
	return api.NewError(api.ErrCodeEmpty, "ring: "+op+" on empty buffer")
}

// PopFront destroys the oldest element.
func (b *Buffer[T]) PopFront() error {
	if b.count == 0 {
		return errEmpty("PopFront")
	}
	b.destroySlot(&b.slots[b.slotOf(0)])
	b.count--
	b.verify()
	return nil
}

// PopBack destroys the newest element.
func (b *Buffer[T]) PopBack() error {
	if b.count == 0 {
		return errEmpty("PopBack")
	}
	b.destroySlot(&b.slots[b.cursor.Value()])
	b.retreat()
	b.verify()
	return nil
}

// retreat drops the newest position after its slot has been cleared.
func (b *Buffer[T]) retreat() {
	b.cursor.Dec()
	b.count--
}

// Front returns the oldest element.
func (b *Buffer[T]) Front() (*T, error) {
	if b.count == 0 {
		return nil, errEmpty("Front")
	}
	return &b.slots[b.slotOf(0)], nil
}

// Back returns the newest element.
func (b *Buffer[T]) Back() (*T, error) {
	if b.count == 0 {
		return nil, errEmpty("Back")
	}
	return &b.slots[b.cursor.Value()], nil
}

// ReleaseFront removes the oldest element and returns a copy of it.
func (b *Buffer[T]) ReleaseFront() (T, error) {
	p, err := b.Front()
	if err != nil {
		var zero T
		return zero, err
	}
	v := *p
	clearSlot(p)
	b.count--
	b.verify()
	return v, nil
}

// ReleaseBack removes the newest element and returns a copy of it.
func (b *Buffer[T]) ReleaseBack() (T, error) {
	p, err := b.Back()
	if err != nil {
		var zero T
		return zero, err
	}
	v := *p
	clearSlot(p)
	b.retreat()
	b.verify()
	return v, nil
}

// At returns the n-th element counting from the oldest.
func (b *Buffer[T]) At(n int) (*T, error) {
	if n < 0 || n >= b.count {
		return nil, api.NewError(api.ErrCodeOutOfRange, "ring: index out of range").
			WithContext("index", n).
			WithContext("size", b.count)
	}
	return &b.slots[b.slotOf(n)], nil
}

// Size returns the number of live elements.
func (b *Buffer[T]) Size() int { return b.count }

// Capacity returns the fixed slot count.
func (b *Buffer[T]) Capacity() int { return b.capacity }

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool { return b.count == 0 }

// IsFull reports whether the next push overwrites the oldest element.
func (b *Buffer[T]) IsFull() bool { return b.count == b.capacity }

// StorageKind reports which provider backs the buffer.
func (b *Buffer[T]) StorageKind() api.StorageKind { return b.storage.Kind() }

// Clear destroys every element newest first and rewinds the cursor.
func (b *Buffer[T]) Clear() {
	for b.count > 0 {
		b.destroySlot(&b.slots[b.cursor.Value()])
		b.retreat()
	}
	b.cursor.Reset()
	b.verify()
}

// Close destroys every element and releases the storage. Pushing into a
// closed buffer panics; Close itself may be called again.
func (b *Buffer[T]) Close() {
	if b.released {
		return
	}
	b.Clear()
	b.storage.Release()
	b.slots = nil
	b.released = true
	b.log.WithFields(logrus.Fields{
		"storage":  b.storage.Kind().String(),
		"capacity": b.capacity,
	}).Debug("ring buffer released")
}

// State returns a diagnostic snapshot suitable for debug probes.
func (b *Buffer[T]) State() map[string]any {
	return map[string]any{
		"size":      b.count,
		"capacity":  b.capacity,
		"cursor":    b.cursor.Value(),
		"storage":   b.storage.Kind().String(),
		"footprint": b.footprint(),
		"released":  b.released,
	}
}
