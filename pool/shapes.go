// File: pool/shapes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Power-of-two slot shapes. Each fixes a buffer capacity at the type level;
// callers needing another capacity declare their own array type with the same
// two methods.

// Array1 holds 1 slot.
type Array1[T any] [1]T

func (a *Array1[T]) Slots() []T { return a[:] }
func (*Array1[T]) Len() int     { return 1 }

// Array2 holds 2 slots.
type Array2[T any] [2]T

func (a *Array2[T]) Slots() []T { return a[:] }
func (*Array2[T]) Len() int     { return 2 }

// Array4 holds 4 slots.
type Array4[T any] [4]T

func (a *Array4[T]) Slots() []T { return a[:] }
func (*Array4[T]) Len() int     { return 4 }

// Array8 holds 8 slots.
type Array8[T any] [8]T

func (a *Array8[T]) Slots() []T { return a[:] }
func (*Array8[T]) Len() int     { return 8 }

// Array16 holds 16 slots.
type Array16[T any] [16]T

func (a *Array16[T]) Slots() []T { return a[:] }
func (*Array16[T]) Len() int     { return 16 }

// Array32 holds 32 slots.
type Array32[T any] [32]T

func (a *Array32[T]) Slots() []T { return a[:] }
func (*Array32[T]) Len() int     { return 32 }

// Array64 holds 64 slots.
type Array64[T any] [64]T

func (a *Array64[T]) Slots() []T { return a[:] }
func (*Array64[T]) Len() int     { return 64 }

// Array128 holds 128 slots.
type Array128[T any] [128]T

func (a *Array128[T]) Slots() []T { return a[:] }
func (*Array128[T]) Len() int     { return 128 }

// Array256 holds 256 slots.
type Array256[T any] [256]T

func (a *Array256[T]) Slots() []T { return a[:] }
func (*Array256[T]) Len() int     { return 256 }

// Array512 holds 512 slots.
type Array512[T any] [512]T

func (a *Array512[T]) Slots() []T { return a[:] }
func (*Array512[T]) Len() int     { return 512 }

// Array1024 holds 1024 slots.
type Array1024[T any] [1024]T

func (a *Array1024[T]) Slots() []T { return a[:] }
func (*Array1024[T]) Len() int     { return 1024 }

// Array2048 holds 2048 slots.
type Array2048[T any] [2048]T

func (a *Array2048[T]) Slots() []T { return a[:] }
func (*Array2048[T]) Len() int     { return 2048 }

// Array4096 holds 4096 slots.
type Array4096[T any] [4096]T

func (a *Array4096[T]) Slots() []T { return a[:] }
func (*Array4096[T]) Len() int     { return 4096 }

// Array8192 holds 8192 slots.
type Array8192[T any] [8192]T

func (a *Array8192[T]) Slots() []T { return a[:] }
func (*Array8192[T]) Len() int     { return 8192 }

// Array16384 holds 16384 slots.
type Array16384[T any] [16384]T

func (a *Array16384[T]) Slots() []T { return a[:] }
func (*Array16384[T]) Len() int     { return 16384 }

// Array32768 holds 32768 slots.
type Array32768[T any] [32768]T

func (a *Array32768[T]) Slots() []T { return a[:] }
func (*Array32768[T]) Len() int     { return 32768 }

// Array65536 holds 65536 slots.
type Array65536[T any] [65536]T

func (a *Array65536[T]) Slots() []T { return a[:] }
func (*Array65536[T]) Len() int     { return 65536 }
