package numeric

import (
	"math"
	"strconv"
)

// Float is a float64 domain. Unlike the raw float64 operators, Quo refuses to
// divide by zero rather than producing an infinity.
type Float float64

func (x Float) Add(y Float) Float {
	return x + y
}

func (x Float) Sub(y Float) Float {
	return x - y
}

func (x Float) Mul(y Float) Float {
	return x * y
}

func (x Float) Quo(y Float) Float {
	if y == 0 {
		throwDivisionByZero(x)
	}
	return x / y
}

func (x Float) Neg() Float {
	return -x
}

// NaN compares equal to everything.
func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Float) Sign() int {
	return x.Cmp(0)
}

func (x Float) IsZero() bool {
	return x == 0
}

func (Float) FromInt64(n int64) Float {
	return Float(n)
}

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

func (x Float) Float64() float64 {
	return float64(x)
}

func (x Float) IsFinite() bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}
