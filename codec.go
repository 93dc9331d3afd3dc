package intcomp

import (
	"bytes"
	"io"
)

// UnsignedWriter writes unsigned values with some code. Close must be called
// once the last value is written: it flushes the final partial byte.
type UnsignedWriter interface {
	Write(v uint64) error
	io.Closer
}

// UnsignedReader reads unsigned values of some code.
type UnsignedReader interface {
	Read() (uint64, error)
	io.Closer
}

// Codec creates writers and readers of one code with one configuration.
// The zero values of VLQ, EliasGamma, Fibonacci and ThompsonAlpha are
// ready to use with the default configuration.
type Codec interface {
	NewWriter(w io.Writer) (UnsignedWriter, error)
	NewReader(r io.Reader) (UnsignedReader, error)
}

var (
	_ Codec = VLQ{}
	_ Codec = EliasGamma{}
	_ Codec = Fibonacci{}
	_ Codec = ThompsonAlpha{}
)

// VLQ configures VLQWriter and VLQReader.
type VLQ struct {
	// PacketSize is the number of value bits per byte, 1..7.
	// Zero means DefaultPacketSize.
	PacketSize int
}

func (c VLQ) packetSize() int {
	if c.PacketSize == 0 {
		return DefaultPacketSize
	}
	return c.PacketSize
}

func (c VLQ) NewWriter(w io.Writer) (UnsignedWriter, error) {
	vw, err := NewVLQWriter(w, c.packetSize())
	if err != nil {
		return nil, err
	}
	return vw, nil
}

func (c VLQ) NewReader(r io.Reader) (UnsignedReader, error) {
	vr, err := NewVLQReader(r, c.packetSize())
	if err != nil {
		return nil, err
	}
	return vr, nil
}

// EliasGamma has nothing to configure.
type EliasGamma struct{}

func (EliasGamma) NewWriter(w io.Writer) (UnsignedWriter, error) {
	ew, err := NewEliasGammaWriter(w)
	if err != nil {
		return nil, err
	}
	return ew, nil
}

func (EliasGamma) NewReader(r io.Reader) (UnsignedReader, error) {
	er, err := NewEliasGammaReader(r)
	if err != nil {
		return nil, err
	}
	return er, nil
}

// Fibonacci has nothing to configure.
type Fibonacci struct{}

func (Fibonacci) NewWriter(w io.Writer) (UnsignedWriter, error) {
	fw, err := NewFibonacciWriter(w)
	if err != nil {
		return nil, err
	}
	return fw, nil
}

func (Fibonacci) NewReader(r io.Reader) (UnsignedReader, error) {
	fr, err := NewFibonacciReader(r)
	if err != nil {
		return nil, err
	}
	return fr, nil
}

// ThompsonAlpha configures ThompsonAlphaWriter and ThompsonAlphaReader.
type ThompsonAlpha struct {
	// LengthBits is the width of the length prefix, 1..6.
	// Zero means DefaultLengthBits.
	LengthBits int
}

func (c ThompsonAlpha) lengthBits() int {
	if c.LengthBits == 0 {
		return DefaultLengthBits
	}
	return c.LengthBits
}

func (c ThompsonAlpha) NewWriter(w io.Writer) (UnsignedWriter, error) {
	tw, err := NewThompsonAlphaWriter(w, c.lengthBits())
	if err != nil {
		return nil, err
	}
	return tw, nil
}

func (c ThompsonAlpha) NewReader(r io.Reader) (UnsignedReader, error) {
	tr, err := NewThompsonAlphaReader(r, c.lengthBits())
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// Encode writes values with c into a new byte slice.
func Encode(c Codec, values ...uint64) ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := c.NewWriter(buf)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := w.Write(v); err != nil {
			w.Close()
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeSigned is Encode for signed values.
func EncodeSigned(c Codec, values ...int64) ([]byte, error) {
	buf := &bytes.Buffer{}
	u, err := c.NewWriter(buf)
	if err != nil {
		return nil, err
	}
	w := NewSignedWriter(u)
	for _, v := range values {
		if err := w.Write(v); err != nil {
			w.Close()
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode returns the first value of b.
func Decode(c Codec, b []byte) (uint64, error) {
	r, err := c.NewReader(bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return r.Read()
}

// DecodeSigned returns the first signed value of b.
func DecodeSigned(c Codec, b []byte) (int64, error) {
	u, err := c.NewReader(bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	r := NewSignedReader(u)
	defer r.Close()

	return r.Read()
}

// DecodeAll returns the first n values of b.
func DecodeAll(c Codec, b []byte, n int) ([]uint64, error) {
	r, err := c.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	values := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		v, err := r.Read()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
