// Package dateutil renders attack durations in human units.
package dateutil

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type unit struct {
	name    string
	seconds int64
}

// Calendar units use average lengths: 365.25-day years and 1/12 of that per month.
var units = []unit{
	{"year", 31557600},
	{"month", 2629800},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// HumanizeSeconds renders a number of seconds as "2 days, 3 hours, 4 seconds",
// rounded to the nearest second. Sub-second values are shown in milliseconds.
// Years are comma grouped so multi-millennium estimates stay readable.
func HumanizeSeconds(seconds decimal.Decimal) string {
	if seconds.IsNegative() {
		return "-" + HumanizeSeconds(seconds.Neg())
	}
	if seconds.LessThan(decimal.NewFromInt(1)) {
		ms := seconds.Mul(decimal.NewFromInt(1000)).Round(0).IntPart()
		return plural(humanize.Comma(ms), "millisecond", ms)
	}

	remaining := seconds.Round(0).BigInt()
	var parts []string
	for _, u := range units {
		size := big.NewInt(u.seconds)
		if remaining.Cmp(size) < 0 {
			continue
		}
		count, rest := new(big.Int).QuoRem(remaining, size, new(big.Int))
		remaining = rest
		n := int64(2)
		if count.IsInt64() {
			n = count.Int64()
		}
		parts = append(parts, plural(humanize.BigComma(count), u.name, n))
	}
	return strings.Join(parts, ", ")
}

// HumanizeDuration is HumanizeSeconds for a time.Duration.
func HumanizeDuration(d time.Duration) string {
	return HumanizeSeconds(decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(time.Second))))
}

func plural(count, name string, n int64) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", count, name)
	}
	return fmt.Sprintf("%s %ss", count, name)
}
