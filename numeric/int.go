package numeric

import "math/big"

// Int is an exact integer of arbitrary size. The zero value is 0.
type Int struct {
	i *big.Int
}

func NewInt(n int64) Int {
	return Int{big.NewInt(n)}
}

// IntFromBig copies n, so later changes to n don't leak into the Int.
func IntFromBig(n *big.Int) Int {
	return Int{new(big.Int).Set(n)}
}

func (x Int) val() *big.Int {
	if x.i == nil {
		return new(big.Int)
	}
	return x.i
}

// Big returns a copy of the underlying value.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.val())
}

func (x Int) Add(y Int) Int {
	return Int{new(big.Int).Add(x.val(), y.val())}
}

func (x Int) Sub(y Int) Int {
	return Int{new(big.Int).Sub(x.val(), y.val())}
}

func (x Int) Mul(y Int) Int {
	return Int{new(big.Int).Mul(x.val(), y.val())}
}

func (x Int) Neg() Int {
	return Int{new(big.Int).Neg(x.val())}
}

func (x Int) Cmp(y Int) int {
	return x.val().Cmp(y.val())
}

func (x Int) Sign() int {
	return x.val().Sign()
}

func (x Int) IsZero() bool {
	return x.Sign() == 0
}

func (Int) FromInt64(n int64) Int {
	return NewInt(n)
}

func (x Int) String() string {
	return x.val().String()
}

// Rat promotes x to an exact rational.
func (x Int) Rat() Rat {
	return Rat{new(big.Rat).SetInt(x.val())}
}

// Float promotes x to the nearest float.
func (x Int) Float() Float {
	return Float(x.Float64())
}

func (x Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.val()).Float64()
	return f
}
