package intcomp

import "math/bits"

// offset shifts v up by one so that zero gets a code, and returns the
// shifted value with its bit length. math.MaxUint64 wraps to 0 with a bit
// length of 65: its low 64 bits are all zero, and the leading 1 bit is
// the implied one every offset code drops anyway.
func offset(v uint64) (o uint64, n int) {
	o = v + 1
	if o == 0 {
		return 0, 65
	}
	return o, bits.Len64(o)
}

// unoffset reverses offset. A decoded 2^64 arrives as 0 and wraps back
// to math.MaxUint64.
func unoffset(o uint64) uint64 {
	return o - 1
}
