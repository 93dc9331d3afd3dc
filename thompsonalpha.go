package intcomp

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// DefaultLengthBits is the width of the Thompson-Alpha length prefix unless
// configured otherwise.
const DefaultLengthBits = 6

func checkLengthBits(lengthBits int) error {
	if lengthBits < 1 || lengthBits > 6 {
		return errors.Wrapf(ErrInvalidArgument, "thompson-alpha: length bits must be between 1 and 6, not %d", lengthBits)
	}
	return nil
}

// ThompsonAlphaMaxValue returns the largest value a Thompson-Alpha code with
// a lengthBits wide prefix can hold: 2^(2^lengthBits) - 2.
func ThompsonAlphaMaxValue(lengthBits int) (uint64, error) {
	if err := checkLengthBits(lengthBits); err != nil {
		return 0, err
	}
	if lengthBits == 6 {
		return math.MaxUint64 - 1, nil
	}
	return 1<<(1<<lengthBits) - 2, nil
}

// thompsonAlphaLength returns the number of bits stored after the prefix
// for v, and v+1 whose low bits they are.
func thompsonAlphaLength(lengthBits int, v uint64) (o uint64, length int, err error) {
	o, n := offset(v)
	// The leading 1 of v+1 is implied.
	length = n - 1
	if length >= 1<<lengthBits {
		limit, _ := ThompsonAlphaMaxValue(lengthBits)
		return 0, 0, errors.Wrapf(ErrValueTooLarge,
			"thompson-alpha: %d is greater than the maximum of %d for %d length bits", v, limit, lengthBits)
	}
	return o, length, nil
}

// ThompsonAlphaWriter writes unsigned values in Thompson-Alpha code: the
// bit length of v+1 minus one in a fixed lengthBits wide prefix, then the
// bits of v+1 below its leading 1.
type ThompsonAlphaWriter struct {
	encoder
	lengthBits int
}

// NewThompsonAlphaWriter returns a ThompsonAlphaWriter writing to w with a
// lengthBits (1..6) wide prefix.
func NewThompsonAlphaWriter(w io.Writer, lengthBits int) (*ThompsonAlphaWriter, error) {
	if err := checkLengthBits(lengthBits); err != nil {
		return nil, err
	}
	e, err := newEncoder(w, "thompson-alpha")
	if err != nil {
		return nil, err
	}
	return &ThompsonAlphaWriter{encoder: e, lengthBits: lengthBits}, nil
}

// Write appends v to the stream. Values above ThompsonAlphaMaxValue fail
// with ErrValueTooLarge and leave the stream untouched.
func (w *ThompsonAlphaWriter) Write(v uint64) error {
	if w.closed {
		return ErrClosed
	}
	o, length, err := thompsonAlphaLength(w.lengthBits, v)
	if err != nil {
		return err
	}
	if err := w.out.WriteBits(uint64(length), byte(w.lengthBits)); err != nil {
		return errors.Wrap(err, "thompson-alpha")
	}
	return errors.Wrap(w.out.WriteBits(o, byte(length)), "thompson-alpha")
}

// ThompsonAlphaReader reads values written by ThompsonAlphaWriter.
type ThompsonAlphaReader struct {
	decoder
	lengthBits int
}

// NewThompsonAlphaReader returns a ThompsonAlphaReader reading from r.
// lengthBits must match the one the values were written with.
func NewThompsonAlphaReader(r io.Reader, lengthBits int) (*ThompsonAlphaReader, error) {
	if err := checkLengthBits(lengthBits); err != nil {
		return nil, err
	}
	d, err := newDecoder(r, "thompson-alpha")
	if err != nil {
		return nil, err
	}
	return &ThompsonAlphaReader{decoder: d, lengthBits: lengthBits}, nil
}

// Read returns the next value of the stream.
func (r *ThompsonAlphaReader) Read() (uint64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	length, err := r.in.ReadBits(byte(r.lengthBits))
	if err != nil {
		return 0, readErr(err, "thompson-alpha")
	}
	rem, err := r.in.ReadBits(byte(length))
	if err != nil {
		return 0, readErr(err, "thompson-alpha")
	}
	return unoffset(1<<length | rem), nil
}

// ThompsonAlphaBitLen returns the number of bits ThompsonAlphaWriter uses
// for v, or ErrValueTooLarge if it cannot write v at all.
func ThompsonAlphaBitLen(lengthBits int, v uint64) (int, error) {
	if err := checkLengthBits(lengthBits); err != nil {
		return 0, err
	}
	_, length, err := thompsonAlphaLength(lengthBits, v)
	if err != nil {
		return 0, err
	}
	return lengthBits + length, nil
}
