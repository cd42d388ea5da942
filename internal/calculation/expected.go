package calculation

import (
	"github.com/rpgo/session-bruteforce/internal/domain"
	qty "github.com/rpgo/session-bruteforce/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Formulas shown next to the closed-form estimates.
const (
	FormulaUniform        = "2^B / S"
	FormulaUniformRate    = "2^B / (S * A)"
	FormulaSequential     = "(2^B + 1) / (S + 1)"
	FormulaSequentialRate = "(2^B + 1) / ((S + 1) * A)"
	FormulaDuration       = "Expected Guesses / A"
)

// ExpectedGuesses returns the closed-form expected number of guesses for cfg.
//
// When the valid set rotates after every miss, or when guesses are drawn at
// random, each guess succeeds independently with probability S/2^B and the
// expectation is 2^B / S. A non-repeating sweep against a static set is the
// expected position of the first of S marked items among 2^B, which is
// (2^B + 1) / (S + 1). With a request rate A the estimate is also expressed in
// seconds.
func ExpectedGuesses(cfg domain.SimulationConfig) domain.ExpectedGuesses {
	total := qty.NewQuantityFromUint(cfg.TotalIDs())
	sessions := qty.NewQuantityFromUint(cfg.SessionCount)

	var est domain.ExpectedGuesses
	if cfg.SessionMethod == domain.SessionDynamic || !cfg.GuessStrategy.Sequential() {
		est.Guesses = qty.Ratio(total, sessions).Decimal
		est.Formula = FormulaUniform
		if cfg.RequestsPerSecond != nil {
			est.Formula = FormulaUniformRate
		}
	} else {
		est.Guesses = qty.Ratio(total.Add(qty.One()), sessions.Add(qty.One())).Decimal
		est.Formula = FormulaSequential
		if cfg.RequestsPerSecond != nil {
			est.Formula = FormulaSequentialRate
		}
	}

	if cfg.RequestsPerSecond != nil && cfg.RequestsPerSecond.IsPositive() {
		seconds := qty.NewQuantityFromDecimal(est.Guesses).Per(*cfg.RequestsPerSecond).Decimal
		est.Seconds = &seconds
	}
	return est
}

// AverageSeconds converts an observed average number of guesses into attack
// time at the configured request rate. It returns nil without a rate.
func AverageSeconds(avgGuesses decimal.Decimal, cfg domain.SimulationConfig) *decimal.Decimal {
	if cfg.RequestsPerSecond == nil || !cfg.RequestsPerSecond.IsPositive() {
		return nil
	}
	s := qty.NewQuantityFromDecimal(avgGuesses).Per(*cfg.RequestsPerSecond).Decimal
	return &s
}
