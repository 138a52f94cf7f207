package advanced

import (
	"fmt"

	"github.com/osuushi/rattrig/numeric"
)

// A vector is a plain pair of components. Vectors are values: operations
// return new vectors and never modify their operands.
type Vector[T numeric.Ring[T]] struct {
	X T
	Y T
}

func Vec[T numeric.Ring[T]](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

// Convert each component to another domain, e.g. MapVector(v, numeric.Int.Rat).
func MapVector[T numeric.Ring[T], U numeric.Ring[U]](v Vector[T], convert func(T) U) Vector[U] {
	return Vector[U]{X: convert(v.X), Y: convert(v.Y)}
}

func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{v.X.Add(w.X), v.Y.Add(w.Y)}
}

func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{v.X.Sub(w.X), v.Y.Sub(w.Y)}
}

func (v Vector[T]) Scale(k T) Vector[T] {
	return Vector[T]{v.X.Mul(k), v.Y.Mul(k)}
}

// Rotate a quarter turn counterclockwise: (a, b) -> (-b, a)
func (v Vector[T]) Perp() Vector[T] {
	return Vector[T]{v.Y.Neg(), v.X}
}

func (v Vector[T]) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero()
}

func (v Vector[T]) Equal(w Vector[T]) bool {
	return numeric.Equal(v.X, w.X) && numeric.Equal(v.Y, w.Y)
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}

func Dot[T numeric.Ring[T]](v1, v2 Vector[T]) T {
	return v1.X.Mul(v2.X).Add(v1.Y.Mul(v2.Y))
}

// Two dimensional cross product, i.e. the determinant of [v1 v2]. Twice the
// signed area of the triangle spanned by the two vectors.
func Cross[T numeric.Ring[T]](v1, v2 Vector[T]) T {
	return v1.X.Mul(v2.Y).Sub(v1.Y.Mul(v2.X))
}

// Quadrance, the squared length of v.
func Quad[T numeric.Ring[T]](v Vector[T]) T {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y))
}
