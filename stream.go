package intcomp

import (
	"io"

	"github.com/apobekiaris/integer-compression/bitio"
	"github.com/cockroachdb/errors"
)

// encoder is the part shared by every codec writer: the bit writer it owns
// and the closed state.
type encoder struct {
	out    bitio.Writer
	closed bool
}

func newEncoder(w io.Writer, code string) (encoder, error) {
	if w == nil {
		return encoder{}, errors.Wrapf(ErrInvalidArgument, "%s: nil writer", code)
	}
	bw, ok := w.(bitio.Writer)
	if !ok {
		bw = bitio.NewWriter(w)
	}
	return encoder{out: bw}, nil
}

// Close flushes pending bits, zero padded to a full byte, and closes the
// bit writer. Only the first call does anything, the rest return ErrClosed.
func (e *encoder) Close() error {
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	return e.out.Close()
}

// decoder is the reading counterpart of encoder.
type decoder struct {
	in     bitio.Reader
	closed bool
}

func newDecoder(r io.Reader, code string) (decoder, error) {
	if r == nil {
		return decoder{}, errors.Wrapf(ErrInvalidArgument, "%s: nil reader", code)
	}
	br, ok := r.(bitio.Reader)
	if !ok {
		br = bitio.NewReader(r)
	}
	return decoder{in: br}, nil
}

// Close releases the bit reader. Only the first call does anything, the
// rest return ErrClosed.
func (d *decoder) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return d.in.Close()
}
