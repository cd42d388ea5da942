package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/domain"
)

// ConsoleFormatter provides a concise one-screen summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	cfg := report.Config
	fmt.Fprintln(&buf, "SESSION BRUTE-FORCE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "B=%d S=%s method=%s strategy=%s state=%s\n",
		cfg.Bits, FormatCount(cfg.SessionCount), cfg.SessionMethod, cfg.GuessStrategy, report.State)
	fmt.Fprintf(&buf, "Trials: %s/%s (%d%%)\n",
		FormatCount(report.Stats.CompletedTrials), FormatCount(report.Stats.TotalTrials), report.Stats.PercentComplete())

	cmp := AnalyzeReport(report)
	if cmp.Observed != nil {
		fmt.Fprintf(&buf, "Average guesses: %s (expected %s, %s)\n",
			FormatDecimal(*cmp.Observed), FormatDecimal(cmp.Expected), FormatSignedPercentage(cmp.PercentDifference))
	} else {
		fmt.Fprintf(&buf, "Average guesses: n/a (expected %s)\n", FormatDecimal(cmp.Expected))
	}
	if report.AverageSeconds != nil {
		fmt.Fprintf(&buf, "Average attack time: %s\n", FormatSeconds(report.AverageSeconds))
	}
	if report.Error != "" {
		fmt.Fprintf(&buf, "Error: %s\n", report.Error)
	}
	return buf.Bytes(), nil
}
