package intcomp

import (
	"io"

	"github.com/apobekiaris/integer-compression/bitio"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned for a nil sink or source and for
	// configuration parameters outside their valid range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueTooLarge is returned when a value cannot be represented
	// under the current configuration.
	ErrValueTooLarge = errors.New("value too large")

	// ErrEndOfInput is returned when the source is exhausted before a
	// code could be read completely.
	ErrEndOfInput = errors.New("end of input")

	// ErrMalformedCode is returned when the input holds a bit pattern that
	// no writer of the same code could have produced.
	ErrMalformedCode = errors.New("malformed code")

	// ErrClosed is returned by every operation on a closed reader or
	// writer, including a second Close.
	ErrClosed = bitio.ErrClosed
)

// readErr maps an error of the bit reader to the error kinds of this package.
func readErr(err error, code string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(ErrEndOfInput, code)
	}
	return errors.Wrap(err, code)
}
