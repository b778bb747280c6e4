// Package rational implements exact rational numbers of arbitrary size.
//
// A Rational is immutable and always normalized: numerator and denominator
// share no common factor, the denominator is positive and the sign lives on
// the numerator. Equal values therefore have equal representations.
//
// Usage:
//
//	half, _ := rational.DivBy(1, 2)
//	third, _ := rational.DivBy(1, 3)
//	fmt.Println(half.Add(third)) // 5/6
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrZeroDenominator = errors.New("denominator cannot be 0")
	ErrInvalidFormat   = errors.New("invalid rational format")
)

// Rational is an immutable fraction. The zero value is not usable; build
// values with New, DivBy or Parse.
type Rational struct {
	r *big.Rat
}

// New returns n/d in lowest terms.
func New(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return Rational{r: new(big.Rat).SetFrac(n, d)}, nil
}

// DivBy returns n/d in lowest terms.
func DivBy(n, d int64) (Rational, error) {
	return New(big.NewInt(n), big.NewInt(d))
}

// FromInt returns n/1.
func FromInt(n *big.Int) Rational {
	return Rational{r: new(big.Rat).SetInt(n)}
}

// Parse reads "n" or "n/d" where n and d are base-10 integers of any size.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return Rational{}, fmt.Errorf("%w: %q has more than one '/'", ErrInvalidFormat, s)
	}

	n, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: bad numerator %q", ErrInvalidFormat, parts[0])
	}
	if len(parts) == 1 {
		return FromInt(n), nil
	}

	d, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: bad denominator %q", ErrInvalidFormat, parts[1])
	}
	return New(n, d)
}

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Div returns a/b, or ErrZeroDenominator when b is zero.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.rat().Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.rat())}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

func (a Rational) Equal(b Rational) bool {
	return a.Cmp(b) == 0
}

func (a Rational) Less(b Rational) bool {
	return a.Cmp(b) < 0
}

// InRange reports whether lo <= a <= hi.
func (a Rational) InRange(lo, hi Rational) bool {
	return lo.Cmp(a) <= 0 && a.Cmp(hi) <= 0
}

// Numerator returns a copy of the normalized numerator.
func (a Rational) Numerator() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

// Denominator returns a copy of the normalized, positive denominator.
func (a Rational) Denominator() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

// String formats a as "n" when the denominator is 1 and "n/d" otherwise.
func (a Rational) String() string {
	r := a.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}

func (a Rational) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Rational) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
