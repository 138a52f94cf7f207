package internal

import "github.com/pkg/errors"

// Threading errors through every arithmetic operation would turn each formula
// into a ladder of error checks. Instead, the domains panic with a Thrown
// value, and the public API recovers to convert to an error.

type Thrown struct {
	Err error
}

func (t Thrown) Error() string {
	return t.Err.Error()
}

func (t Thrown) Unwrap() error {
	return t.Err
}

// Panic with err wrapped as a Thrown.
func Throw(err error) {
	panic(Thrown{Err: err})
}

// Panic with a formatted error.
func Throwf(format string, args ...interface{}) {
	Throw(errors.Errorf(format, args...))
}

// Convert a recovered value back into an error. Anything that wasn't thrown
// with Throw is a real panic, and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(Thrown); ok {
			return thrown.Err
		}
		panic(r)
	}
	return nil
}
