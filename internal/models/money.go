package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/svnhec/qoda-sub003/internal/common"
)

// Money is a signed amount of minor currency units (cents).
// All ledger arithmetic is integer arithmetic; floats never enter the core.
type Money int64

const (
	// MaxSafeCents is the largest amount that can be handed to consumers
	// that decode JSON numbers as IEEE 754 doubles (2^53 - 1).
	MaxSafeCents Money = 1<<53 - 1

	// BasisPointsDenominator is the number of basis points in 100%.
	BasisPointsDenominator int64 = 10000

	// DefaultMarkupBasisPoints is applied when an organization has no
	// markup configured (1500 bps = 15%).
	DefaultMarkupBasisPoints int64 = 1500
)

func NewMoney(cents int64) Money {
	return Money(cents)
}

// Add returns m + other, rejecting results outside the int64 range.
func (m Money) Add(other Money) (Money, error) {
	sum := m + other
	if (other > 0 && sum < m) || (other < 0 && sum > m) {
		return 0, fmt.Errorf("%w: %d + %d", common.ErrAmountOutOfRange, m, other)
	}
	return sum, nil
}

func (m Money) Sub(other Money) (Money, error) {
	return m.Add(-other)
}

// MulInt returns m * n, rejecting results outside the int64 range.
func (m Money) MulInt(n int64) (Money, error) {
	if m == 0 || n == 0 {
		return 0, nil
	}
	product := int64(m) * n
	if product/n != int64(m) {
		return 0, fmt.Errorf("%w: %d * %d", common.ErrAmountOutOfRange, m, n)
	}
	return Money(product), nil
}

// DivInt returns m / n truncated toward zero.
func (m Money) DivInt(n int64) (Money, error) {
	if n == 0 {
		return 0, common.ErrDivisionByZero
	}
	return Money(int64(m) / n), nil
}

// ApplyBasisPoints computes round((m * bps) / 10000) using the round-half-up
// idiom (m*bps + 5000) / 10000. The engine normalizes amounts to positive
// before fees are computed, so the formula is exact for its call sites.
func (m Money) ApplyBasisPoints(bps int64) (Money, error) {
	scaled, err := m.MulInt(bps)
	if err != nil {
		return 0, err
	}
	half := Money(BasisPointsDenominator / 2)
	rounded, err := scaled.Add(half)
	if err != nil {
		return 0, err
	}
	return rounded.DivInt(BasisPointsDenominator)
}

// SplitEvenly divides m into parts portions whose sum is exactly m.
// The remainder is distributed one cent at a time to the first portions.
func (m Money) SplitEvenly(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: cannot split into %d parts", common.ErrDivisionByZero, parts)
	}

	base := int64(m) / int64(parts)
	remainder := int64(m) % int64(parts)

	portions := make([]Money, parts)
	for i := range portions {
		portions[i] = Money(base)
		if remainder > 0 {
			portions[i]++
			remainder--
		} else if remainder < 0 {
			portions[i]--
			remainder++
		}
	}

	return portions, nil
}

func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsPositive() bool { return m > 0 }

func (m Money) Neg() Money { return -m }

// Abs normalizes webhook amounts, which arrive negative for purchases.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// CheckSafeRange rejects amounts that would be truncated by bounded-integer
// consumers such as the billing system's usage quantity field.
func (m Money) CheckSafeRange() error {
	if m > MaxSafeCents || m < -MaxSafeCents {
		return fmt.Errorf("%w: %d cents exceeds safe integer range", common.ErrAmountOutOfRange, m)
	}
	return nil
}

// Decimal returns the amount in currency units (cents scaled by 10^-2),
// used at reporting boundaries only.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func MinMoney(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}

func MaxMoney(a, b Money) Money {
	if a > b {
		return a
	}
	return b
}

// SumMoney adds all amounts, rejecting overflow on any intermediate sum.
func SumMoney(amounts ...Money) (Money, error) {
	var total Money
	var err error
	for _, a := range amounts {
		total, err = total.Add(a)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
