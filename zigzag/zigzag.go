// Package zigzag implements the zigzag mapping between signed and unsigned
// 64-bit integers, the same one protocol buffers use:
//
//	                   0 <-> 0
//	                  -1 <-> 1
//	                   1 <-> 2
//	                  -2 <-> 3
//	                 ...
//	 9223372036854775807 <-> 18446744073709551614
//	-9223372036854775808 <-> 18446744073709551615
//
// Values of small magnitude map to small unsigned values regardless of sign,
// which is what the variable-length codes of this module need.
package zigzag

// Encode maps a signed value to its unsigned zigzag form.
func Encode(v int64) uint64 {
	return uint64(v<<1 ^ v>>63)
}

// Decode is the inverse of Encode.
func Decode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
