//go:build ringdebug

// File: ring/check_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Checked build: every mutation re-verifies the slot bookkeeping.

package ring

import (
	"reflect"

	"github.com/momentics/hioload-ring/api"
)

const checked = true

func (b *Buffer[T]) verify() {
	if b.count < 0 || b.count > b.capacity {
		b.corrupt("count out of bounds")
	}
	if b.cursor.Min() != 0 || b.cursor.Max() != b.capacity-1 {
		b.corrupt("cursor range does not match capacity")
	}
	if b.released {
		if b.count != 0 || b.slots != nil {
			b.corrupt("released buffer still holds slots")
		}
		return
	}
	if len(b.slots) != b.capacity {
		b.corrupt("slot block resized")
	}
	// Slots outside the live window must hold the zero value.
	cur := b.cursor.Value()
	for i := range b.slots {
		back := (cur - i + b.capacity) % b.capacity
		if back < b.count {
			continue
		}
		if !reflect.ValueOf(&b.slots[i]).Elem().IsZero() {
			b.corrupt("dead slot holds a value")
		}
	}
}

func (b *Buffer[T]) corrupt(msg string) {
	panic(api.NewError(api.ErrCodeInternal, "ring: "+msg).
		WithContext("state", b.State()))
}
