/*

Package bitio provides the bit-level Reader and Writer that the integer codes
of this module are built on.

Writer.WriteBits() appends the lowest n bits of an uint64 to an io.Writer, and
Reader.ReadBits() reads n bits from an io.Reader and returns them right-aligned
in an uint64. Byte boundaries are crossed transparently, so a code never needs
to know where in the current byte it starts.

Single bits are the most frequent operation of unary and Fibonacci style codes,
so both sides have a dedicated bool method: Reader.ReadBool() and Writer.WriteBool().
The byte-level methods (ReadByte / WriteByte, Read / Write) serve byte oriented
codes such as VLQ; they are fastest when the stream is at a byte boundary,
which Align() enforces.

Both sides keep a count of bits processed (Reader.GetBitPosition() and
Writer.GetBufferBitSize()), handy to measure the size of a single code.

Closing

A Writer must be closed: Close writes out the cached partial byte (zero padded)
exactly once. Writers and Readers created with NewWriter and NewReader borrow
their io.Writer / io.Reader; NewOwningWriter and NewOwningReader take ownership
and close it as part of Close. Any operation on a closed Writer or Reader,
including a second Close, returns ErrClosed.

Reading past the end of the input returns io.EOF, no zero padding is
ever invented by the Reader.

Bit order

The more general highest-bits-first order is used. So for example if the input provides the bytes 0x8f and 0x55:

    HEXA    8    f     5    5
    BINARY  1100 1111  0101 0101
            aaaa bbbc  ccdd dddd

Then ReadBits will return the following values:

    r := NewReader(bytes.NewBuffer([]byte{0x8f, 0x55}))
    a, err := r.ReadBits(4) //   1100 = 0x08
    b, err := r.ReadBits(3) //    111 = 0x07
    c, err := r.ReadBits(3) //    101 = 0x05
    d, err := r.ReadBits(6) // 010101 = 0x15

Writing the above values would result in the same sequence of bytes:

    b := &bytes.Buffer{}
    w := NewWriter(b)
    err := w.WriteBits(0x08, 4)
    err = w.WriteBits(0x07, 3)
    err = w.WriteBits(0x05, 3)
    err = w.WriteBits(0x15, 6)
    err = w.Close()
    // b will hold the bytes: 0x8f and 0x55

*/
package bitio
