package bitio

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"
)

func TestReader(t *testing.T) {
	data := []byte{3, 255, 0xcc, 0x1a, 0xbc, 0xde, 0x80, 0x01, 0x02, 0xf8, 0x08, 0xf0}

	r := NewReader(bytes.NewBuffer(data))

	if b, err := r.ReadByte(); b != 3 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", b, 3, err)
	}
	if i, err := r.ReadBits(8); i != 255 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", i, 255, err)
	}

	if i, err := r.ReadBits(4); i != 0xc || err != nil {
		t.Errorf("Got %x, want %x, error: %v", i, 0xc, err)
	}

	if i, err := r.ReadBits(8); i != 0xc1 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", i, 0xc1, err)
	}

	if i, err := r.ReadBits(20); i != 0xabcde || err != nil {
		t.Errorf("Got %x, want %x, error: %v", i, 0xabcde, err)
	}

	if b, err := r.ReadBool(); !b || err != nil {
		t.Errorf("Got %v, want %v, error: %v", b, true, err)
	}
	if b, err := r.ReadBool(); b || err != nil {
		t.Errorf("Got %v, want %v, error: %v", b, false, err)
	}

	if n := r.Align(); n != 6 {
		t.Errorf("Got %v, want %v", n, 6)
	}

	s := make([]byte, 2)
	if n, err := r.Read(s); n != 2 || err != nil || !bytes.Equal(s, []byte{0x01, 0x02}) {
		t.Errorf("Got %v, want %v, error: %v", s, []byte{0x01, 0x02}, err)
	}

	if i, err := r.ReadBits(4); i != 0xf || err != nil {
		t.Errorf("Got %x, want %x, error: %v", i, 0xf, err)
	}

	if n, err := r.Read(s); n != 2 || err != nil || !bytes.Equal(s, []byte{0x80, 0x8f}) {
		t.Errorf("Got %v, want %v, error: %v", s, []byte{0x80, 0x8f}, err)
	}

	if err := r.Close(); err != nil {
		t.Error("Got error:", err)
	}
}

func TestWriter(t *testing.T) {
	b := &bytes.Buffer{}

	w := NewWriter(b)

	expected := []byte{0xc1, 0x7f, 0xac, 0x89, 0x24, 0x78, 0x01, 0x02, 0xf8, 0x08, 0xf0}

	errs := []error{}
	errs = append(errs, w.WriteByte(0xc1))
	errs = append(errs, w.WriteBool(false))
	errs = append(errs, w.WriteBits(0x3f, 6))
	errs = append(errs, w.WriteBool(true))
	errs = append(errs, w.WriteByte(0xac))
	errs = append(errs, w.WriteBits(0x01, 1))
	errs = append(errs, w.WriteBits(0x1248f, 20))

	if n, err := w.Align(); n != 3 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", n, 3, err)
	}

	if n, err := w.Write([]byte{0x01, 0x02}); n != 2 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", n, 2, err)
	}

	errs = append(errs, w.WriteBits(0x0f, 4))

	if n, err := w.Write([]byte{0x80, 0x8f}); n != 2 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", n, 2, err)
	}

	if n, err := w.Align(); n != 4 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", n, 4, err)
	}
	if n, err := w.Align(); n != 0 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", n, 0, err)
	}

	errs = append(errs, w.Close())

	for _, v := range errs {
		if v != nil {
			t.Error("Got error:", v)
		}
	}

	if !bytes.Equal(b.Bytes(), expected) {
		t.Errorf("Got: %x, want: %x", b.Bytes(), expected)
	}
}

func TestWriterMasksHighBits(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewWriter(b)

	// Only the low 3 bits (101) of 0xfd may reach the output.
	if err := w.WriteBits(0xfd, 3); err != nil {
		t.Error("Got error:", err)
	}
	if err := w.WriteBits(0xff, 0); err != nil {
		t.Error("Got error:", err)
	}
	if err := w.Close(); err != nil {
		t.Error("Got error:", err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xa0}) {
		t.Errorf("Got: %x, want: %x", b.Bytes(), []byte{0xa0})
	}
}

func TestFullWidth(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewWriter(b)

	values := []uint64{0xffffffffffffffff, 0x8000000000000001, 0, 0x0123456789abcdef}
	w.WriteBool(true)
	for _, v := range values {
		if err := w.WriteBits(v, 64); err != nil {
			t.Error("Got error:", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Error("Got error:", err)
	}
	if got, want := len(b.Bytes()), 33; got != want {
		t.Errorf("Got %d bytes, want %d", got, want)
	}

	r := NewReader(bytes.NewReader(b.Bytes()))
	if bit, err := r.ReadBool(); !bit || err != nil {
		t.Errorf("Got %v, want %v, error: %v", bit, true, err)
	}
	for _, v := range values {
		if u, err := r.ReadBits(64); u != v || err != nil {
			t.Errorf("Got %x, want %x, error: %v", u, v, err)
		}
	}
}

func TestBitCountLimit(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.WriteBits(0, 65); !errors.Is(err, ErrBitCount) {
		t.Errorf("Got %v, want %v", err, ErrBitCount)
	}

	r := NewReader(bytes.NewReader(make([]byte, 16)))
	if _, err := r.ReadBits(65); !errors.Is(err, ErrBitCount) {
		t.Errorf("Got %v, want %v", err, ErrBitCount)
	}
	if u, err := r.ReadBits(0); u != 0 || err != nil {
		t.Errorf("Got %x, want %x, error: %v", u, 0, err)
	}
}

func TestWriterClose(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewWriter(b)

	if err := w.WriteBits(0x5, 3); err != nil {
		t.Error("Got error:", err)
	}
	if err := w.Close(); err != nil {
		t.Error("Got error:", err)
	}
	// Pending bits are flushed exactly once.
	if err := w.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xa0}) {
		t.Errorf("Got: %x, want: %x", b.Bytes(), []byte{0xa0})
	}

	if err := w.WriteBits(1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if err := w.WriteBool(true); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if err := w.WriteByte(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := w.Write([]byte{1}); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := w.Align(); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xa0}) {
		t.Errorf("Got: %x, want: %x", b.Bytes(), []byte{0xa0})
	}
}

func TestReaderClose(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff, 0xff}))

	if err := r.Close(); err != nil {
		t.Error("Got error:", err)
	}
	if err := r.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := r.ReadBool(); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := r.ReadByte(); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
	if _, err := r.Read(make([]byte, 1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Got %v, want %v", err, ErrClosed)
	}
}

func TestOwnership(t *testing.T) {
	out := &closeTracker{}
	w := NewWriter(out)
	w.WriteBool(true)
	if err := w.Close(); err != nil || out.closed != 0 {
		t.Errorf("Borrowed writer: closed %d times, error: %v", out.closed, err)
	}

	out = &closeTracker{}
	w = NewOwningWriter(out)
	w.WriteBool(true)
	if err := w.Close(); err != nil || out.closed != 1 {
		t.Errorf("Owning writer: closed %d times, error: %v", out.closed, err)
	}
	w.Close()
	if out.closed != 1 || !bytes.Equal(out.Bytes(), []byte{0x80}) {
		t.Errorf("Owning writer: closed %d times, got %x", out.closed, out.Bytes())
	}

	in := &closeTracker{}
	in.WriteByte(0x80)
	r := NewOwningReader(in)
	if b, err := r.ReadBool(); !b || err != nil {
		t.Errorf("Got %v, want %v, error: %v", b, true, err)
	}
	if err := r.Close(); err != nil || in.closed != 1 {
		t.Errorf("Owning reader: closed %d times, error: %v", in.closed, err)
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xf0}))

	if u, err := r.ReadBits(4); u != 0xf || err != nil {
		t.Errorf("Got %x, want %x, error: %v", u, 0xf, err)
	}
	// Never zero pads the remaining 4 bits to a full group.
	if _, err := r.ReadBits(5); err != io.EOF {
		t.Errorf("Got %v, want %v", err, io.EOF)
	}
}

func TestChain(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewWriter(b)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	expected := make([]uint64, 100000)
	bits := make([]byte, len(expected))

	// Writing (generating)
	for i := range expected {
		expected[i] = uint64(rnd.Int63())
		bits[i] = byte(1 + rnd.Int31n(60))
		expected[i] &= uint64(1)<<bits[i] - 1
		w.WriteBits(expected[i], bits[i])
	}
	if err := w.Close(); err != nil {
		t.Error("Got error:", err)
	}

	r := NewReader(bytes.NewBuffer(b.Bytes()))

	// Reading (verifying)
	for i, v := range expected {
		if u, err := r.ReadBits(bits[i]); u != v || err != nil {
			t.Errorf("Idx: %d, Got: %x, want: %x, bits: %d, error: %v", i, u, v, bits[i], err)
		}
	}
}

// closeTracker is a bytes.Buffer counting the calls to Close.
type closeTracker struct {
	bytes.Buffer
	closed int
}

func (c *closeTracker) Close() error {
	c.closed++
	return nil
}
