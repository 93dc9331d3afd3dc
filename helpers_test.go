package intcomp

import (
	"math"
	"strings"
)

// bitString renders the first n bits of b as 0s and 1s.
func bitString(b []byte, n int) string {
	var sb strings.Builder
	for i := 0; i < n && i/8 < len(b); i++ {
		if b[i/8]&(0x80>>(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// boundaries are the unsigned values every code is checked against.
var boundaries = []uint64{
	0, 1, 2, 3, 127, 128, 255, 256, 1000,
	math.MaxUint32 - 1, math.MaxUint32, math.MaxUint32 + 1,
	math.MaxInt64 - 1, math.MaxInt64, math.MaxInt64 + 1,
	math.MaxUint64 - 1, math.MaxUint64,
}

var signedBoundaries = []int64{
	0, 1, -1, 2, -2, 63, -64, 64, -65, 1000, -1000,
	math.MinInt32, math.MaxInt32,
	math.MinInt64, math.MinInt64 + 1, math.MaxInt64 - 1, math.MaxInt64,
}
