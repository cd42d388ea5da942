package output

import (
	"testing"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzeReport_ObservedAboveExpected(t *testing.T) {
	report := buildTestReport()
	cmp := AnalyzeReport(report)

	if !cmp.Difference.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("difference = %s, want 0.5", cmp.Difference)
	}
	if got := cmp.PercentDifference.StringFixed(2); got != "5.88" {
		t.Fatalf("percent difference = %s, want 5.88", got)
	}
	if cmp.Suboptimal {
		t.Fatalf("static increment should not be flagged as suboptimal")
	}
	if cmp.Note == "" {
		t.Fatalf("expected a strategy note")
	}
}

func TestAnalyzeReport_NoObservations(t *testing.T) {
	report := buildTestReport()
	report.AverageGuesses = nil
	report.Config.GuessStrategy = domain.GuessRandom

	cmp := AnalyzeReport(report)
	if cmp.Observed != nil {
		t.Fatalf("expected no observed average")
	}
	if !cmp.Difference.IsZero() || !cmp.PercentDifference.IsZero() {
		t.Fatalf("expected zero deviation, got %s / %s", cmp.Difference, cmp.PercentDifference)
	}
	if !cmp.Suboptimal {
		t.Fatalf("static random should be flagged as suboptimal")
	}
}
