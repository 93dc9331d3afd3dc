package intcomp

import (
	"io"
	"math/bits"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultPacketSize is the number of value bits per VLQ byte unless
	// configured otherwise.
	DefaultPacketSize = 7

	vlqMore = 0x80 // continuation flag
)

func checkPacketSize(packetSize int) error {
	if packetSize < 1 || packetSize > 7 {
		return errors.Wrapf(ErrInvalidArgument, "vlq: packet size must be between 1 and 7, not %d", packetSize)
	}
	return nil
}

// VLQWriter writes unsigned values as Variable-Length Quantities: the value
// is cut into groups of packetSize bits, least significant group first, and
// every group goes into its own byte. The high bit of a byte is set if more
// groups follow.
type VLQWriter struct {
	encoder
	packetSize int
	mask       uint64
}

// NewVLQWriter returns a VLQWriter writing to w with packetSize (1..7)
// value bits per byte.
func NewVLQWriter(w io.Writer, packetSize int) (*VLQWriter, error) {
	if err := checkPacketSize(packetSize); err != nil {
		return nil, err
	}
	e, err := newEncoder(w, "vlq")
	if err != nil {
		return nil, err
	}
	return &VLQWriter{encoder: e, packetSize: packetSize, mask: 1<<packetSize - 1}, nil
}

// Write appends v to the stream.
func (w *VLQWriter) Write(v uint64) error {
	if w.closed {
		return ErrClosed
	}
	for {
		group := byte(v & w.mask)
		v >>= w.packetSize
		if v == 0 {
			return errors.Wrap(w.out.WriteByte(group), "vlq")
		}
		if err := w.out.WriteByte(vlqMore | group); err != nil {
			return errors.Wrap(err, "vlq")
		}
	}
}

// VLQReader reads values written by VLQWriter.
type VLQReader struct {
	decoder
	packetSize int
	mask       byte
}

// NewVLQReader returns a VLQReader reading from r. packetSize must match
// the one the values were written with.
func NewVLQReader(r io.Reader, packetSize int) (*VLQReader, error) {
	if err := checkPacketSize(packetSize); err != nil {
		return nil, err
	}
	d, err := newDecoder(r, "vlq")
	if err != nil {
		return nil, err
	}
	return &VLQReader{decoder: d, packetSize: packetSize, mask: 1<<packetSize - 1}, nil
}

// Read returns the next value of the stream.
func (r *VLQReader) Read() (uint64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	var v uint64
	for shift := uint(0); ; shift += uint(r.packetSize) {
		b, err := r.in.ReadByte()
		if err != nil {
			return 0, readErr(err, "vlq")
		}
		group := uint64(b & r.mask)
		// Bits shifted out of the top would be lost silently.
		if shift >= 64 || group>>(64-shift) != 0 {
			return 0, errors.Wrap(ErrMalformedCode, "vlq: value exceeds 64 bits")
		}
		v |= group << shift
		if b&vlqMore == 0 {
			return v, nil
		}
	}
}

// VLQBitLen returns the number of bits VLQWriter uses for v,
// always a multiple of 8.
func VLQBitLen(packetSize int, v uint64) (int, error) {
	if err := checkPacketSize(packetSize); err != nil {
		return 0, err
	}
	groups := (bits.Len64(v) + packetSize - 1) / packetSize
	if groups == 0 {
		groups = 1
	}
	return 8 * groups, nil
}
