// Package cyclic
// Author: momentics <momentics@gmail.com>
//
// Wrapped-arithmetic integers over an inclusive range [min, max].
//
// Counter is the single place where ring index math happens: every mutation
// reduces the value back into range, so adding or subtracting any amount,
// including decrementing an unsigned zero, lands on a valid slot.
// Arithmetic is carried out on offsets relative to min in uint64, which is
// exact for every integer kind and never overflows before the modulo step.
package cyclic
