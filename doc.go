/*

Package intcomp packs unsigned and signed 64-bit integers into variable-length
bit codes and reads them back.

Four codes are provided, each as a Writer / Reader pair built on the bit-level
streams of package bitio:

	VLQ            byte groups of PacketSize value bits and a continuation bit
	Elias Gamma    unary length prefix, binary remainder
	Fibonacci      Zeckendorf representation, terminated by two 1 bits
	Thompson-Alpha fixed-width length prefix, binary remainder

Elias Gamma, Fibonacci and Thompson-Alpha write v+1 so that zero has a code.
Signed values go through zigzag first, see NewSignedWriter and NewSignedReader.

The bit layouts are the wire format, there is no framing around them. Codes are
self-delimiting, so any number of them can be written back to back:

	w, err := intcomp.NewFibonacciWriter(f)
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := w.Write(v); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()

Writers must be closed, else up to 7 bits of the last code are lost.
A writer or reader created on a bitio.Writer / bitio.Reader uses it directly;
that is the way to have the underlying file closed too (bitio.NewOwningWriter).

Errors can be tested with errors.Is against ErrInvalidArgument, ErrValueTooLarge,
ErrEndOfInput, ErrMalformedCode and ErrClosed. None of them is recoverable:
a reader or writer that returned one should be discarded.

Writers and readers are not safe for concurrent use.

*/
package intcomp
