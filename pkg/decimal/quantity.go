package decimal

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Quantity is a non-integral count (expected guesses, seconds) kept as an
// exact decimal so very large ID spaces do not lose precision.
type Quantity struct {
	decimal.Decimal
}

// NewQuantity creates a Quantity from a float64
func NewQuantity(value float64) Quantity {
	return Quantity{decimal.NewFromFloat(value)}
}

// NewQuantityFromUint creates a Quantity from an unsigned count such as 2^32
func NewQuantityFromUint(value uint64) Quantity {
	return Quantity{decimal.NewFromBigInt(new(big.Int).SetUint64(value), 0)}
}

// NewQuantityFromDecimal creates a Quantity from a decimal.Decimal
func NewQuantityFromDecimal(d decimal.Decimal) Quantity {
	return Quantity{d}
}

// NewQuantityFromString parses a Quantity
func NewQuantityFromString(value string) (Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{d}, nil
}

// Ratio returns num/den; a zero denominator yields zero.
func Ratio(num, den Quantity) Quantity {
	if den.IsZero() {
		return Zero()
	}
	return Quantity{num.Decimal.Div(den.Decimal)}
}

// Per divides the quantity by a rate, e.g. guesses per second into seconds.
func (q Quantity) Per(rate decimal.Decimal) Quantity {
	if rate.IsZero() {
		return Zero()
	}
	return Quantity{q.Decimal.Div(rate)}
}

// Add adds another Quantity
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{q.Decimal.Add(other.Decimal)}
}

// Round rounds to two decimal places
func (q Quantity) Round() Quantity {
	return Quantity{q.Decimal.Round(2)}
}

// Zero returns a zero Quantity
func Zero() Quantity {
	return Quantity{decimal.Zero}
}

// One returns a Quantity of 1
func One() Quantity {
	return Quantity{decimal.NewFromInt(1)}
}

// String returns the value with two decimals, matching the report format
func (q Quantity) String() string {
	return q.Decimal.StringFixed(2)
}
