// Package errs holds the error taxonomy shared by the codec, the chunker and
// the pipeline. Callers match with errors.Is; producers wrap with context.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument reports a caller mistake: a non-positive worker
	// count, an unknown mode, or a result set that does not cover 0..N-1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat reports a malformed compressed stream.
	ErrFormat = errors.New("malformed rle stream")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// Formatf wraps ErrFormat with a formatted message.
func Formatf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrFormat, format, args...)
}

// Wrapf adds context to err, keeping it matchable with errors.Is.
// A nil err yields nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}
