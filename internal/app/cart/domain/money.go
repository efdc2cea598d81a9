package domain

import (
	"strconv"
	"strings"
)

// Money is an amount in Chilean pesos. CLP carries no fractional unit in this
// storefront, so amounts are plain non-negative integers of the smallest
// denomination.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw peso amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyBy scales the amount by a unit count.
func (m Money) MultiplyBy(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Equals reports whether two amounts are equal.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// Format renders the amount the way the store displays prices: a dollar sign
// followed by the peso amount with dot thousands separators, e.g. $12.990.
func (m Money) Format() string {
	s := strconv.FormatInt(m.amount, 10)
	n := len(s)

	var b strings.Builder
	b.Grow(n + n/3 + 1)
	b.WriteByte('$')
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// String implements fmt.Stringer using the display format.
func (m Money) String() string {
	return m.Format()
}
