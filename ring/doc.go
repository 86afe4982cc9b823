// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, overwrite-oldest circular buffer.
//
// Capacity is part of the type: a buffer is built from a pool.Shape, a
// fixed-size array type such as pool.Array64[T]. Small shapes keep their
// slots inline with the buffer header; shapes whose Capacity*sizeof(T)
// exceeds pool.InlineThreshold (or any shape given ForceHeap) use a single
// heap block. NewHeap builds a heap buffer from a run-time capacity.
//
//	b := ring.NewOf[int, pool.Array4[int]]([]int{1, 2, 3, 4})
//	b.PushBack(5)           // 2 3 4 5
//	v, _ := b.ReleaseFront() // v == 2
//
// Every index is computed through cyclic.Counter. Elements are written into
// slots only on push and cleared (zeroed, after the optional destructor hook)
// on pop, overwrite, Clear and Close, so unused slots never hold stale
// references.
//
// Precondition failures (empty buffer, index out of range) return *api.Error
// values matching api.ErrEmpty / api.ErrIndexOutOfRange and leave the buffer
// unchanged. The checks are always on. Building with -tags ringdebug also
// re-verifies the slot bookkeeping after every mutation and panics on
// corruption.
//
// A Buffer is not safe for concurrent use; callers sharing one must guard
// every call, iteration included, with a single lock.
package ring
