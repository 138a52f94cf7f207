package numeric

import "math/big"

// Rat is an exact rational number. It is always stored in lowest terms with a
// positive denominator. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns num/den. A zero denominator throws ErrDivisionByZero.
func NewRat(num, den int64) Rat {
	if den == 0 {
		throwDivisionByZero(NewInt(num))
	}
	return Rat{big.NewRat(num, den)}
}

func RatFromInt(n int64) Rat {
	return Rat{new(big.Rat).SetInt64(n)}
}

func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Big returns a copy of the underlying value.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.val())
}

func (x Rat) Num() Int {
	return IntFromBig(x.val().Num())
}

func (x Rat) Denom() Int {
	return IntFromBig(x.val().Denom())
}

func (x Rat) IsInt() bool {
	return x.val().IsInt()
}

func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.val(), y.val())}
}

func (x Rat) Sub(y Rat) Rat {
	return Rat{new(big.Rat).Sub(x.val(), y.val())}
}

func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.val(), y.val())}
}

func (x Rat) Quo(y Rat) Rat {
	if y.IsZero() {
		throwDivisionByZero(x)
	}
	return Rat{new(big.Rat).Quo(x.val(), y.val())}
}

func (x Rat) Neg() Rat {
	return Rat{new(big.Rat).Neg(x.val())}
}

func (x Rat) Cmp(y Rat) int {
	return x.val().Cmp(y.val())
}

func (x Rat) Sign() int {
	return x.val().Sign()
}

func (x Rat) IsZero() bool {
	return x.Sign() == 0
}

func (Rat) FromInt64(n int64) Rat {
	return RatFromInt(n)
}

// String gives "a/b", or just "a" for integers.
func (x Rat) String() string {
	return x.val().RatString()
}

// Float converts x to the nearest float. This is the only way out of the exact
// domain, and it must be asked for.
func (x Rat) Float() Float {
	return Float(x.Float64())
}

func (x Rat) Float64() float64 {
	f, _ := x.val().Float64()
	return f
}
