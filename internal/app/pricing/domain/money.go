package domain

import (
	"fmt"
	"math/big"
)

// Money represents an exact monetary value backed by big.Rat.
// Intermediate pricing arithmetic stays rational so that no precision is
// lost; rounding happens only through Quantize.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("money denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// ParseMoney creates a Money from a decimal string such as "1000.00".
func ParseMoney(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid money value %q", s)
	}
	return &Money{rat: rat}, nil
}

// ZeroMoney returns a Money with value zero.
func ZeroMoney() *Money {
	return &Money{rat: new(big.Rat)}
}

// NewMoneyFromRat creates a Money from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return ZeroMoney()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Numerator returns the numerator of the reduced fraction.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the reduced fraction.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsSafeForStorage reports whether both numerator and denominator fit in
// int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat returns m scaled by the given rational factor.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyByInt returns m scaled by an integer quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return m.MultiplyByRat(big.NewRat(n, 1))
}

// Quantize rounds the value to 2 fraction digits using round half up
// (ties away from zero). This is the single rounding step of the pricing
// engine; everything before it is exact.
func (m *Money) Quantize() *Money {
	num := new(big.Int).Mul(m.rat.Num(), big.NewInt(100))
	den := m.rat.Denom()

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	rem.Abs(rem)
	rem.Mul(rem, big.NewInt(2))
	if rem.Cmp(den) >= 0 {
		if num.Sign() >= 0 {
			quo.Add(quo, big.NewInt(1))
		} else {
			quo.Sub(quo, big.NewInt(1))
		}
	}

	return &Money{rat: new(big.Rat).SetFrac(quo, big.NewInt(100))}
}

// IsZero reports whether the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the value is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive reports whether the value is above zero.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan reports whether m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan reports whether m > other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// GreaterOrEqual reports whether m >= other.
func (m *Money) GreaterOrEqual(other *Money) bool {
	return m.rat.Cmp(other.rat) >= 0
}

// Equals reports whether m == other.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the value with 2 fraction digits.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
