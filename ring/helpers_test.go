package ring

import (
	"slices"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

type slots3[T any] [3]T

func (a *slots3[T]) Slots() []T { return a[:] }
func (*slots3[T]) Len() int     { return 3 }

type slots5[T any] [5]T

func (a *slots5[T]) Slots() []T { return a[:] }
func (*slots5[T]) Len() int     { return 5 }

type slots20[T any] [20]T

func (a *slots20[T]) Slots() []T { return a[:] }
func (*slots20[T]) Len() int     { return 20 }

// variant builds a capacity-5 int buffer on one storage strategy.
type variant struct {
	name string
	kind api.StorageKind
	of   func(values ...int) *Buffer[int]
}

var variants = []variant{
	{
		name: "inline",
		kind: api.StorageInline,
		of: func(values ...int) *Buffer[int] {
			return NewOf[int, slots5[int]](values)
		},
	},
	{
		name: "forced heap",
		kind: api.StorageHeap,
		of: func(values ...int) *Buffer[int] {
			return NewOf[int, slots5[int]](values, ForceHeap())
		},
	},
	{
		name: "runtime heap",
		kind: api.StorageHeap,
		of: func(values ...int) *Buffer[int] {
			b, err := NewHeap[int](5)
			if err != nil {
				panic(err)
			}
			b.Assign(slices.Values(values))
			return b
		},
	},
}

// bigHeap is a shape too large to be kept inline.
func bigHeap(values ...int) *Buffer[int] {
	return NewOf[int, pool.Array4096[int]](values)
}

// live returns the slot indices currently holding elements.
func (b *Buffer[T]) live() map[int]bool {
	out := make(map[int]bool, b.count)
	for i := 0; i < b.count; i++ {
		out[b.slotOf(i)] = true
	}
	return out
}
