//go:build !ringdebug

// File: ring/check_release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// checked reports whether structural invariants are verified after every
// mutation. Build with -tags ringdebug to enable.
const checked = false

func (b *Buffer[T]) verify() {}
