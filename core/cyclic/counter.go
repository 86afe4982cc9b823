// File: core/cyclic/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cyclic

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Counter is an integer that wraps around inside [min, max].
// The zero value is the single-point range [0, 0].
type Counter[I constraints.Integer] struct {
	min I
	max I
	cur I
}

// New returns a counter over [min, max] holding value reduced into range.
func New[I constraints.Integer](value, min, max I) (Counter[I], error) {
	if min > max {
		return Counter[I]{}, fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, min, max)
	}
	c := Counter[I]{min: min, max: max}
	c.cur = c.reduce(value)
	return c, nil
}

// Span returns a counter over [0, max] starting at 0.
// It panics if max is negative.
func Span[I constraints.Integer](max I) Counter[I] {
	return At(0, max)
}

// At returns a counter over [0, max] holding value reduced into range.
// It panics if max is negative.
func At[I constraints.Integer](value, max I) Counter[I] {
	c, err := New(value, 0, max)
	if err != nil {
		panic(err)
	}
	return c
}

// span is the cycle length max-min+1; zero stands for the full 2^64 cycle.
func (c Counter[I]) span() uint64 {
	return uint64(c.max) - uint64(c.min) + 1
}

func (c Counter[I]) mod(x uint64) uint64 {
	if s := c.span(); s != 0 {
		return x % s
	}
	return x
}

func (c Counter[I]) fromOffset(r uint64) I {
	return I(uint64(c.min) + r)
}

// reduce maps v into [min, max]. Values below min wrap up from max+1, so a
// value one below min lands on max.
func (c Counter[I]) reduce(v I) I {
	switch {
	case v > c.max:
		return c.fromOffset(c.mod(uint64(v) - uint64(c.min)))
	case v < c.min:
		d := c.mod(uint64(c.min) - uint64(v))
		if d == 0 {
			return c.min
		}
		return c.fromOffset(c.span() - d)
	}
	return v
}

// shift moves the current value n steps forward or backward around the cycle.
func (c Counter[I]) shift(n uint64, forward bool) I {
	r := c.Offset()
	d := c.mod(n)
	s := c.span()
	if forward {
		if s != 0 && d >= s-r {
			r = d - (s - r)
		} else {
			r += d
		}
	} else {
		if d > r {
			r = s - (d - r)
		} else {
			r -= d
		}
	}
	return c.fromOffset(r)
}

// magnitude splits n into its absolute value and sign.
func magnitude[I constraints.Integer](n I) (uint64, bool) {
	if n < 0 {
		return -uint64(n), true
	}
	return uint64(n), false
}

func (c Counter[I]) added(n I) I {
	m, neg := magnitude(n)
	return c.shift(m, !neg)
}

func (c Counter[I]) subtracted(n I) I {
	m, neg := magnitude(n)
	return c.shift(m, neg)
}

// Value returns the current value.
func (c Counter[I]) Value() I { return c.cur }

// Min returns the inclusive lower bound.
func (c Counter[I]) Min() I { return c.min }

// Max returns the inclusive upper bound.
func (c Counter[I]) Max() I { return c.max }

// Offset returns the distance of the current value from min.
func (c Counter[I]) Offset() uint64 {
	return uint64(c.cur) - uint64(c.min)
}

// Difference returns max-min, the number of steps before wraparound.
func (c Counter[I]) Difference() I {
	return c.max - c.min
}

// Reduce maps an arbitrary value into the counter's range without storing it.
func (c Counter[I]) Reduce(v I) I {
	return c.reduce(v)
}

// Add returns a copy advanced by n.
func (c Counter[I]) Add(n I) Counter[I] {
	c.cur = c.added(n)
	return c
}

// Sub returns a copy moved back by n.
func (c Counter[I]) Sub(n I) Counter[I] {
	c.cur = c.subtracted(n)
	return c
}

// Advance moves the counter forward by n in place.
func (c *Counter[I]) Advance(n I) {
	c.cur = c.added(n)
}

// Retreat moves the counter back by n in place.
func (c *Counter[I]) Retreat(n I) {
	c.cur = c.subtracted(n)
}

// Inc steps forward once and returns the updated counter.
func (c *Counter[I]) Inc() Counter[I] {
	c.cur = c.shift(1, true)
	return *c
}

// Dec steps back once and returns the updated counter.
func (c *Counter[I]) Dec() Counter[I] {
	c.cur = c.shift(1, false)
	return *c
}

// PostInc steps forward once and returns the counter as it was before.
func (c *Counter[I]) PostInc() Counter[I] {
	prev := *c
	c.Inc()
	return prev
}

// PostDec steps back once and returns the counter as it was before.
func (c *Counter[I]) PostDec() Counter[I] {
	prev := *c
	c.Dec()
	return prev
}

// Set stores v reduced into range.
func (c *Counter[I]) Set(v I) {
	c.cur = c.reduce(v)
}

// Reset moves the counter back to min.
func (c *Counter[I]) Reset() {
	c.cur = c.min
}

// SetMin changes the lower bound, reducing the current value if it falls out.
func (c *Counter[I]) SetMin(min I) error {
	if min > c.max {
		return fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, min, c.max)
	}
	c.min = min
	if c.cur < min {
		c.cur = c.reduce(c.cur)
	}
	return nil
}

// SetMax changes the upper bound, reducing the current value if it falls out.
func (c *Counter[I]) SetMax(max I) error {
	if max < c.min {
		return fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, c.min, max)
	}
	c.max = max
	if c.cur > max {
		c.cur = c.reduce(c.cur)
	}
	return nil
}

// Equal reports whether both counters share value and bounds.
func (c Counter[I]) Equal(o Counter[I]) bool {
	return c.cur == o.cur && c.min == o.min && c.max == o.max
}

// Compare orders counters by their offset from their own min, so counters
// over different windows compare by relative position.
func (c Counter[I]) Compare(o Counter[I]) int {
	return cmp.Compare(c.Offset(), o.Offset())
}

// Less reports whether c sits closer to its min than o does to its own.
func (c Counter[I]) Less(o Counter[I]) bool {
	return c.Compare(o) < 0
}

func (c Counter[I]) String() string {
	return fmt.Sprintf("%v[%v..%v]", c.cur, c.min, c.max)
}
