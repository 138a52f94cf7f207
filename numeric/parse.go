package numeric

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseInt reads a base 10 integer of any size.
func ParseInt(s string) (Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return Int{}, errors.Errorf("invalid integer %q", s)
	}
	return Int{n}, nil
}

// ParseRat reads an integer, a fraction like "-3/4", or a decimal like "0.25".
// Decimals are read exactly, so "0.1" is 1/10. Exponents (decimal or binary)
// are not accepted, since "1e999999999" would be expanded into an exact billion
// digit integer.
func ParseRat(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eEpP") {
		return Rat{}, errors.Errorf("invalid rational %q: exponents are not supported", s)
	}
	if num, den, found := strings.Cut(s, "/"); found {
		d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if ok && d.Sign() == 0 {
			return Rat{}, errors.Wrapf(ErrDivisionByZero, "invalid rational %q", s)
		}
		if _, ok := new(big.Int).SetString(strings.TrimSpace(num), 10); !ok || d == nil {
			return Rat{}, errors.Errorf("invalid rational %q", s)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, errors.Errorf("invalid rational %q", s)
	}
	return Rat{r}, nil
}

// ParseFloat reads a finite float. "Inf" and "NaN" are rejected.
func ParseFloat(s string) (Float, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float %q", s)
	}
	if !Float(f).IsFinite() {
		return 0, errors.Errorf("invalid float %q: not finite", s)
	}
	return Float(f), nil
}
