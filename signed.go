package intcomp

import "github.com/apobekiaris/integer-compression/zigzag"

// SignedWriter writes signed values through an UnsignedWriter, mapping
// them with zigzag first so that small negative values stay short.
type SignedWriter struct {
	u UnsignedWriter
}

// NewSignedWriter returns a SignedWriter on top of u. The SignedWriter
// takes over u: closing it closes u.
func NewSignedWriter(u UnsignedWriter) *SignedWriter {
	return &SignedWriter{u: u}
}

// Write appends v to the stream.
func (w *SignedWriter) Write(v int64) error {
	return w.u.Write(zigzag.Encode(v))
}

// Close closes the underlying UnsignedWriter.
func (w *SignedWriter) Close() error {
	return w.u.Close()
}

// SignedReader reads values written by a SignedWriter over the same code.
type SignedReader struct {
	u UnsignedReader
}

// NewSignedReader returns a SignedReader on top of u. Closing it closes u.
func NewSignedReader(u UnsignedReader) *SignedReader {
	return &SignedReader{u: u}
}

// Read returns the next value of the stream.
func (r *SignedReader) Read() (int64, error) {
	u, err := r.u.Read()
	if err != nil {
		return 0, err
	}
	return zigzag.Decode(u), nil
}

// Close closes the underlying UnsignedReader.
func (r *SignedReader) Close() error {
	return r.u.Close()
}
