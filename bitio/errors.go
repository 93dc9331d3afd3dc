package bitio

import "github.com/cockroachdb/errors"

var (
	// ErrClosed is returned by every operation of a Reader or Writer
	// that has already been closed, including a second Close.
	ErrClosed = errors.New("bitio: use of closed reader or writer")

	// ErrBitCount is returned when more than 64 bits are requested
	// in a single ReadBits or WriteBits call.
	ErrBitCount = errors.New("bitio: bit count must be at most 64")
)
