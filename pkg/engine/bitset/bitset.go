// Package bitset provides a fixed-size bitset indexed by a typed enum.
package bitset

import "math/bits"

// Capacity is the number of distinct enum values a Set can hold.
// Enums guard themselves with a compile-time check such as
//
//	var _ = [bitset.Capacity - int(numFlags)]struct{}{}
const Capacity = 256

const words = Capacity / 64

// Enum is any small integer enum usable as a bit index.
type Enum interface {
	~uint8 | ~uint16 | ~int
}

// Set is a value-type bitset over enum E. The zero value is empty.
type Set[E Enum] struct {
	w [words]uint64
}

func index[E Enum](e E) (int, uint64) {
	i := int(e)
	if i < 0 || i >= Capacity {
		panic("bitset: enum value out of range")
	}
	return i / 64, 1 << (uint(i) % 64)
}

// Set turns on bit e
func (s *Set[E]) Set(e E) {
	w, m := index(e)
	s.w[w] |= m
}

// Clear turns off bit e
func (s *Set[E]) Clear(e E) {
	w, m := index(e)
	s.w[w] &^= m
}

// Test reports whether bit e is on
func (s Set[E]) Test(e E) bool {
	w, m := index(e)
	return s.w[w]&m != 0
}

// Count returns the number of bits set
func (s Set[E]) Count() int {
	n := 0
	for _, w := range s.w {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether no bits are set
func (s Set[E]) Empty() bool {
	return s.w == [words]uint64{}
}

// Union returns the bits set in either s or o
func (s Set[E]) Union(o Set[E]) Set[E] {
	for i := range s.w {
		s.w[i] |= o.w[i]
	}
	return s
}

// Each calls fn for every set bit in ascending order.
func (s Set[E]) Each(fn func(e E)) {
	for i, w := range s.w {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(E(i*64 + b))
			w &^= 1 << uint(b)
		}
	}
}
