package output

import (
	"github.com/rpgo/session-bruteforce/internal/calculation"
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
)

// Comparison contrasts the observed average with the closed-form estimate.
type Comparison struct {
	Observed *decimal.Decimal
	Expected decimal.Decimal
	// Difference and PercentDifference are zero when nothing was observed.
	Difference        decimal.Decimal
	PercentDifference decimal.Decimal
	Note              string
	Suboptimal        bool
}

// AnalyzeReport compares a run's observed average against the expected number of guesses.
// Extracted from the console formatters for testability.
func AnalyzeReport(report *domain.SimulationReport) Comparison {
	cmp := Comparison{
		Observed:   report.AverageGuesses,
		Expected:   report.Expected.Guesses,
		Note:       calculation.StrategyNote(report.Config.SessionMethod, report.Config.GuessStrategy),
		Suboptimal: calculation.IsSuboptimal(report.Config.SessionMethod, report.Config.GuessStrategy),
	}
	if report.AverageGuesses == nil {
		return cmp
	}
	cmp.Difference = report.AverageGuesses.Sub(cmp.Expected)
	if !cmp.Expected.IsZero() {
		cmp.PercentDifference = cmp.Difference.Div(cmp.Expected).Mul(decimal.NewFromInt(100))
	}
	return cmp
}
