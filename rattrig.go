// Rational trigonometry for Go.
//
// This package computes quadrances (squared lengths) and spreads (the rational
// replacement for angles), and the triangle relations between them, without
// ever taking a square root or a sine. Over the exact domains Int and Rat,
// every result is exact.
//
// All functions are generic over the numeric domain. Functions that divide
// need a field, so integer vectors and quadrances must be promoted to Rat
// first (see PromoteVector). Mixing domains in one call doesn't compile.
//
// The functions here return an error wrapping ErrDivisionByZero for degenerate
// input. The advanced package has the same formulas without the error
// handling.
package rattrig

import (
	"github.com/osuushi/rattrig/advanced"
	"github.com/osuushi/rattrig/internal"
	"github.com/osuushi/rattrig/numeric"
)

type Int = numeric.Int
type Rat = numeric.Rat
type Float = numeric.Float

var ErrDivisionByZero = numeric.ErrDivisionByZero

func Vec[T numeric.Ring[T]](x, y T) advanced.Vector[T] {
	return advanced.Vec(x, y)
}

// Promote an integer vector to an exact rational one.
func PromoteVector(v advanced.Vector[Int]) advanced.Vector[Rat] {
	return advanced.MapVector(v, numeric.Int.Rat)
}

func Dot[T numeric.Ring[T]](v1, v2 advanced.Vector[T]) T {
	return advanced.Dot(v1, v2)
}

func Cross[T numeric.Ring[T]](v1, v2 advanced.Vector[T]) T {
	return advanced.Cross(v1, v2)
}

// Quadrance of a vector, its squared length.
func Quad[T numeric.Ring[T]](v advanced.Vector[T]) T {
	return advanced.Quad(v)
}

// Spread between two vectors. Fails if either vector is zero.
func Spread[T numeric.Field[T]](v1, v2 advanced.Vector[T]) (result T, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return advanced.Spread(v1, v2), nil
}

func Archimedes[T numeric.Ring[T]](q1, q2, q3 T) T {
	return advanced.Archimedes(q1, q2, q3)
}

// Spread opposite the side with quadrance q3. Fails if q1 or q2 is zero.
func SpreadLaw[T numeric.Field[T]](q1, q2, q3 T) (result T, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return advanced.SpreadLaw(q1, q2, q3), nil
}

func TripleQuadFormula[T numeric.Ring[T]](q1, q2, s3 T) T {
	return advanced.TripleQuadFormula(q1, q2, s3)
}
