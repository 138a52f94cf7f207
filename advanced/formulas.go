// Package advanced holds the rational trigonometry formulas as generic
// functions over the numeric domains.
//
// Functions here panic when a divisor is zero, the same way Go's built in
// integer division does. Callers who have already checked that their vectors
// and quadrances are non-zero can use them directly; everyone else should use
// the error returning wrappers in the root package.
package advanced

import "github.com/osuushi/rattrig/numeric"

// The spread between two vectors: the rational replacement for the angle
// between them, analogous to the squared sine.
//
//	spread = cross(v1, v2)² / (quad(v1) · quad(v2))
//
// It is 0 for parallel vectors, 1 for perpendicular ones, and never leaves
// [0, 1]. Either vector being zero is a division by zero.
func Spread[T numeric.Field[T]](v1, v2 Vector[T]) T {
	c := Cross(v1, v2)
	return c.Mul(c).Quo(Quad(v1).Mul(Quad(v2)))
}

// Archimedes' function of three quadrances:
//
//	4·q1·q2 − (q1 + q2 − q3)²
//
// For the side quadrances of a triangle, this is 16 times the squared area,
// and it is zero exactly when the three points are collinear. Symmetric in q1
// and q2.
func Archimedes[T numeric.Ring[T]](q1, q2, q3 T) T {
	temp := q1.Add(q2).Sub(q3)
	return q1.FromInt64(4).Mul(q1).Mul(q2).Sub(temp.Mul(temp))
}

// The spread law. Given the quadrances of a triangle, this is the spread at the
// vertex opposite the side of quadrance q3:
//
//	archimedes(q1, q2, q3) / (4·q1·q2)
//
// q1 or q2 being zero is a division by zero. No check is made that the three
// quadrances form a triangle; quadrances that don't will give a spread
// outside [0, 1].
func SpreadLaw[T numeric.Field[T]](q1, q2, q3 T) T {
	numerator := Archimedes(q1, q2, q3)
	denominator := q1.FromInt64(4).Mul(q1).Mul(q2)
	return numerator.Quo(denominator)
}

// Combines two quadrances and a spread:
//
//	(q1 + q2)² − 4·q1·q2·(1 − s3)
//
// which equals (q1 − q2)² when s3 is 0 and (q1 + q2)² when s3 is 1.
//
// Note that this is not the inverse of SpreadLaw. Feeding SpreadLaw's result
// back in does not give q3 back. It is also not the collinear triple quad
// identity (q1+q2+q3)² = 2(q1²+q2²+q3²).
func TripleQuadFormula[T numeric.Ring[T]](q1, q2, s3 T) T {
	sum := q1.Add(q2)
	one := q1.FromInt64(1)
	return sum.Mul(sum).Sub(q1.FromInt64(4).Mul(q1).Mul(q2).Mul(one.Sub(s3)))
}
