package intcomp

import (
	"io"

	"github.com/cockroachdb/errors"
)

// EliasGammaWriter writes unsigned values in Elias Gamma code. v+1 is
// written as n-1 zero bits, a 1 bit, then the n-1 bits of v+1 below its
// leading 1, n being the bit length of v+1. Zero is the single bit 1.
type EliasGammaWriter struct {
	encoder
}

// NewEliasGammaWriter returns an EliasGammaWriter writing to w.
func NewEliasGammaWriter(w io.Writer) (*EliasGammaWriter, error) {
	e, err := newEncoder(w, "elias-gamma")
	if err != nil {
		return nil, err
	}
	return &EliasGammaWriter{encoder: e}, nil
}

// Write appends v to the stream.
func (w *EliasGammaWriter) Write(v uint64) error {
	if w.closed {
		return ErrClosed
	}
	o, n := offset(v)
	zeros := n - 1

	// Unary prefix; zeros+1 bits of the value 1 are the zeros and the 1.
	var err error
	if zeros < 64 {
		err = w.out.WriteBits(1, byte(zeros+1))
	} else if err = w.out.WriteBits(0, 64); err == nil {
		err = w.out.WriteBool(true)
	}
	if err != nil {
		return errors.Wrap(err, "elias-gamma")
	}

	// WriteBits drops the leading 1 of o.
	return errors.Wrap(w.out.WriteBits(o, byte(zeros)), "elias-gamma")
}

// EliasGammaReader reads values written by EliasGammaWriter.
type EliasGammaReader struct {
	decoder
}

// NewEliasGammaReader returns an EliasGammaReader reading from r.
func NewEliasGammaReader(r io.Reader) (*EliasGammaReader, error) {
	d, err := newDecoder(r, "elias-gamma")
	if err != nil {
		return nil, err
	}
	return &EliasGammaReader{decoder: d}, nil
}

// Read returns the next value of the stream.
func (r *EliasGammaReader) Read() (uint64, error) {
	if r.closed {
		return 0, ErrClosed
	}

	zeros := 0
	for {
		bit, err := r.in.ReadBool()
		if err != nil {
			return 0, readErr(err, "elias-gamma")
		}
		if bit {
			break
		}
		if zeros++; zeros > 64 {
			return 0, errors.Wrap(ErrMalformedCode, "elias-gamma: prefix longer than 64 bits")
		}
	}

	rem, err := r.in.ReadBits(byte(zeros))
	if err != nil {
		return 0, readErr(err, "elias-gamma")
	}
	if zeros == 64 {
		// Only 2^64 itself, i.e. math.MaxUint64 before the offset, fits.
		if rem != 0 {
			return 0, errors.Wrap(ErrMalformedCode, "elias-gamma: value exceeds 64 bits")
		}
		return unoffset(0), nil
	}
	return unoffset(1<<zeros | rem), nil
}

// EliasGammaBitLen returns the number of bits EliasGammaWriter uses for v.
func EliasGammaBitLen(v uint64) int {
	_, n := offset(v)
	return 2*n - 1
}
