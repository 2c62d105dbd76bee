package throw

import "github.com/pkg/errors"

// Threading errors through every vector and matrix operation would bury the
// arithmetic. Precondition violations panic instead, and the public API
// recovers to convert them to an error.

// Error is the panic value for a violated precondition. Any other panic is a
// real bug and is never recovered.
type Error struct {
	cause error
}

func (e Error) Error() string { return e.cause.Error() }

func (e Error) Cause() error { return e.cause }

func (e Error) Unwrap() error { return e.cause }

// Panic with an Error.
func Fatalf(format string, args ...interface{}) {
	panic(Error{errors.Errorf(format, args...)})
}

// Recover converts a recovered Error into an error. It must be passed the
// result of recover(). Panics that are not an Error are re-raised.
func Recover(r interface{}) error {
	if r != nil {
		if err, ok := r.(Error); ok {
			return err
		}
		panic(r)
	}
	return nil
}
