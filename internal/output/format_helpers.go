package output

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rpgo/session-bruteforce/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FormatCount renders a counter with thousands separators.
func FormatCount(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// FormatDecimal renders a decimal with two places and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatDecimal(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + fixed
	}
	return sign + humanize.BigComma(n) + "." + frac
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatSignedPercentage is FormatPercentage with an explicit plus sign.
func FormatSignedPercentage(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatPercentage(amount)
	}
	return FormatPercentage(amount)
}

// FormatSeconds renders an attack duration, or "n/a" when no rate was set.
func FormatSeconds(seconds *decimal.Decimal) string {
	if seconds == nil {
		return "n/a"
	}
	return dateutil.HumanizeSeconds(*seconds)
}

// FormatRate renders a request rate, or "n/a" when unset.
func FormatRate(rate *decimal.Decimal) string {
	if rate == nil {
		return "n/a"
	}
	return FormatDecimal(*rate) + " req/s"
}
