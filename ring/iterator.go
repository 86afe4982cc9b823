// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"iter"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/cyclic"
)

// Iterator is a forward cursor over the logical sequence, oldest first.
// Offset Size() is the end position and must not be dereferenced.
//
// Iterators are not tracked by the buffer: any push, pop or clear
// invalidates every outstanding iterator.
type Iterator[T any] struct {
	owner *Buffer[T]
	pos   cyclic.Counter[int] // logical offset over [0, count]
}

func (b *Buffer[T]) iteratorAt(offset int) Iterator[T] {
	return Iterator[T]{owner: b, pos: cyclic.At(offset, b.count)}
}

// Begin returns an iterator at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] { return b.iteratorAt(0) }

// End returns the end iterator.
func (b *Buffer[T]) End() Iterator[T] { return b.iteratorAt(b.count) }

// Offset returns the logical position, 0 being the oldest element.
func (it Iterator[T]) Offset() int { return it.pos.Value() }

// AtEnd reports whether the iterator sits on the end position.
func (it Iterator[T]) AtEnd() bool { return it.pos.Value() == it.pos.Max() }

// Next steps to the following element and reports whether the iterator may
// be dereferenced. At the end position it stays put.
func (it *Iterator[T]) Next() bool {
	if it.AtEnd() {
		return false
	}
	it.pos.Inc()
	return !it.AtEnd()
}

// Ptr returns the element under the iterator.
// It panics on the end position or when the buffer shrank underneath.
func (it Iterator[T]) Ptr() *T {
	if it.AtEnd() {
		panic(api.NewError(api.ErrCodeOutOfRange, "ring: dereference of end iterator"))
	}
	p, err := it.owner.At(it.pos.Value())
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns a copy of the element under the iterator.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Equal reports whether both iterators walk the same buffer at the same offset.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.owner == o.owner && it.pos.Value() == o.pos.Value()
}

// ConstIterator is the read-only form of Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin returns a read-only iterator at the oldest element.
func (b *Buffer[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{b.Begin()} }

// CEnd returns the read-only end iterator.
func (b *Buffer[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{b.End()} }

// Offset returns the logical position, 0 being the oldest element.
func (c ConstIterator[T]) Offset() int { return c.it.Offset() }

// AtEnd reports whether the iterator sits on the end position.
func (c ConstIterator[T]) AtEnd() bool { return c.it.AtEnd() }

// Next steps to the following element, as Iterator.Next does.
func (c *ConstIterator[T]) Next() bool { return c.it.Next() }

// Value returns a copy of the element under the iterator.
// It panics on the end position.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Equal reports whether both iterators walk the same buffer at the same offset.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// Values yields elements oldest first.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.slots[b.slotOf(i)]) {
				return
			}
		}
	}
}

// All yields logical offsets and elements oldest first.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(i, b.slots[b.slotOf(i)]) {
				return
			}
		}
	}
}

// Backward yields logical offsets and elements newest first.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.count - 1; i >= 0; i-- {
			if !yield(i, b.slots[b.slotOf(i)]) {
				return
			}
		}
	}
}

// Snapshot copies the elements into a new slice, oldest first.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, 0, b.count)
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}
