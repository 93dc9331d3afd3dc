package intcomp

import (
	"io"
	"math/bits"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	fibOnce  sync.Once
	fibTable []uint64
)

// fibonacci returns F(2), F(3), ... up to the largest Fibonacci number that
// fits in an uint64. The table is built on first use and never modified.
func fibonacci() []uint64 {
	fibOnce.Do(func() {
		t := []uint64{1, 2}
		for {
			a, b := t[len(t)-2], t[len(t)-1]
			next, carry := bits.Add64(a, b, 0)
			if carry != 0 {
				break
			}
			t = append(t, next)
		}
		fibTable = t
	})
	return fibTable
}

// fibCode is the Zeckendorf representation of an offset value: bit i of
// set[i/64] stands for fibonacci()[i], top is the highest index used.
type fibCode struct {
	set [2]uint64
	top int
}

func (c *fibCode) has(i int) bool {
	return c.set[i/64]&(1<<(i%64)) != 0
}

// zeckendorf picks the Fibonacci numbers summing up to v+1 greedily,
// largest first.
func zeckendorf(v uint64) fibCode {
	table := fibonacci()
	o, n := offset(v)
	c := fibCode{top: -1}

	i := len(table) - 1
	rem := o
	if n > 64 {
		// 2^64: the largest table entry is certainly part of it, and what
		// remains fits in an uint64.
		c.set[i/64] |= 1 << (i % 64)
		c.top = i
		rem = -table[i]
	}
	for rem > 0 {
		for table[i] > rem {
			i--
		}
		c.set[i/64] |= 1 << (i % 64)
		if c.top < 0 {
			c.top = i
		}
		rem -= table[i]
	}
	return c
}

// FibonacciWriter writes unsigned values in Fibonacci code: one bit per
// Fibonacci number of the Zeckendorf representation of v+1, smallest first,
// followed by an extra 1 bit. The only two adjacent 1 bits of a code are
// the last two.
type FibonacciWriter struct {
	encoder
}

// NewFibonacciWriter returns a FibonacciWriter writing to w.
func NewFibonacciWriter(w io.Writer) (*FibonacciWriter, error) {
	e, err := newEncoder(w, "fibonacci")
	if err != nil {
		return nil, err
	}
	return &FibonacciWriter{encoder: e}, nil
}

// Write appends v to the stream.
func (w *FibonacciWriter) Write(v uint64) error {
	if w.closed {
		return ErrClosed
	}
	c := zeckendorf(v)
	for i := 0; i <= c.top; i++ {
		if err := w.out.WriteBool(c.has(i)); err != nil {
			return errors.Wrap(err, "fibonacci")
		}
	}
	return errors.Wrap(w.out.WriteBool(true), "fibonacci")
}

// FibonacciReader reads values written by FibonacciWriter.
type FibonacciReader struct {
	decoder
}

// NewFibonacciReader returns a FibonacciReader reading from r.
func NewFibonacciReader(r io.Reader) (*FibonacciReader, error) {
	d, err := newDecoder(r, "fibonacci")
	if err != nil {
		return nil, err
	}
	return &FibonacciReader{decoder: d}, nil
}

// Read returns the next value of the stream.
func (r *FibonacciReader) Read() (uint64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	table := fibonacci()

	var sum uint64
	var wrapped, last bool
	for i := 0; ; i++ {
		bit, err := r.in.ReadBool()
		if err != nil {
			return 0, readErr(err, "fibonacci")
		}
		if bit && last {
			break
		}
		if i >= len(table) {
			return 0, errors.Wrapf(ErrMalformedCode, "fibonacci: no terminator within %d bits", len(table)+1)
		}
		if bit {
			var carry uint64
			sum, carry = bits.Add64(sum, table[i], 0)
			if carry != 0 {
				if wrapped {
					return 0, errors.Wrap(ErrMalformedCode, "fibonacci: value exceeds 64 bits")
				}
				wrapped = true
			}
		}
		last = bit
	}

	// A sum of exactly 2^64 decodes to math.MaxUint64; anything above cannot.
	if wrapped && sum != 0 {
		return 0, errors.Wrap(ErrMalformedCode, "fibonacci: value exceeds 64 bits")
	}
	return unoffset(sum), nil
}

// FibonacciBitLen returns the number of bits FibonacciWriter uses for v.
func FibonacciBitLen(v uint64) int {
	return zeckendorf(v).top + 2
}
