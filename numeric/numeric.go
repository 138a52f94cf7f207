// Package numeric defines the number domains the rational trigonometry
// formulas are evaluated over.
//
// Three domains are provided: Int (exact, arbitrary precision integers), Rat
// (exact, always reduced rationals) and Float (IEEE-754 doubles). Values are
// immutable; every operation returns a new value, so they can be shared freely
// between goroutines.
//
// Formulas that only add, subtract and multiply are written against Ring.
// Formulas that divide need a Field, which Int is not. Integers are promoted to
// rationals explicitly with Int.Rat, which keeps the result exact.
package numeric

import (
	"fmt"
	"math"

	"github.com/osuushi/rattrig/internal"
	"github.com/pkg/errors"
)

// ErrDivisionByZero is the only error any formula can produce. It is raised
// when a quotient's divisor is the additive identity.
var ErrDivisionByZero = errors.New("division by zero")

// Ring is the constraint for domains closed under addition, subtraction and
// multiplication, with a total order.
//
// FromInt64 ignores its receiver's value, and is how generic code gets at
// constants like 1 and 4. It must work on the zero value of T.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Cmp(T) int
	Sign() int
	IsZero() bool
	FromInt64(int64) T
	fmt.Stringer
}

// Field is a Ring with division. Quo throws ErrDivisionByZero for a zero
// divisor.
type Field[T any] interface {
	Ring[T]
	Quo(T) T
}

// Float64er is implemented by every domain, for rendering and other places
// where an approximation is explicitly wanted.
type Float64er interface {
	Float64() float64
}

func Equal[T Ring[T]](a, b T) bool {
	return a.Cmp(b) == 0
}

// Square of x.
func Square[T Ring[T]](x T) T {
	return x.Mul(x)
}

const Tolerance = 1e-9

// Float results accumulate rounding error, so tests and callers comparing them
// should use a tolerance rather than exact equality.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func throwDivisionByZero(dividend fmt.Stringer) {
	internal.Throw(errors.Wrapf(ErrDivisionByZero, "%s / 0", dividend))
}
