package advanced

import (
	"fmt"

	"github.com/osuushi/rattrig/numeric"
)

// Triangle with vertices A, B and C. Sides and spreads are named after the
// vertex they are opposite to (or at), so qa is the quadrance of BC and sa is
// the spread at A.
type Triangle[T numeric.Ring[T]] struct {
	A, B, C Vector[T]
}

func (tri Triangle[T]) Quadrances() (qa, qb, qc T) {
	qa = Quad(tri.B.Sub(tri.C))
	qb = Quad(tri.A.Sub(tri.C))
	qc = Quad(tri.A.Sub(tri.B))
	return
}

// The quadrea is 16 times the squared area. It is computed from the quadrances
// alone, with Archimedes' function.
func (tri Triangle[T]) Quadrea() T {
	qa, qb, qc := tri.Quadrances()
	return Archimedes(qa, qb, qc)
}

// Collinear points make a degenerate triangle, with zero quadrea.
func (tri Triangle[T]) IsDegenerate() bool {
	return tri.Quadrea().IsZero()
}

// Twice the signed area. Positive for counterclockwise triangles.
func (tri Triangle[T]) DoubleSignedArea() T {
	return Cross(tri.B.Sub(tri.A), tri.C.Sub(tri.A))
}

func (tri Triangle[T]) String() string {
	return fmt.Sprintf("Tri(%s, %s, %s)", tri.A, tri.B, tri.C)
}

// Spreads at each vertex, measured between the two sides meeting there. Two
// coincident vertices make a zero side, which panics with a division by zero.
func Spreads[T numeric.Field[T]](tri Triangle[T]) (sa, sb, sc T) {
	sa = Spread(tri.B.Sub(tri.A), tri.C.Sub(tri.A))
	sb = Spread(tri.A.Sub(tri.B), tri.C.Sub(tri.B))
	sc = Spread(tri.A.Sub(tri.C), tri.B.Sub(tri.C))
	return
}
