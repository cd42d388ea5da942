package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	cfg := report.Config

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "SESSION ID BRUTE-FORCE SIMULATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PARAMETERS:")
	line(&buf, "Session ID space", fmt.Sprintf("2^%d = %s IDs", cfg.Bits, FormatCount(cfg.TotalIDs())))
	line(&buf, "Valid sessions", FormatCount(cfg.SessionCount))
	line(&buf, "Session method", string(cfg.SessionMethod))
	line(&buf, "Guess strategy", string(cfg.GuessStrategy))
	line(&buf, "Request rate", FormatRate(cfg.RequestsPerSecond))
	line(&buf, "Batch size", FormatCount(uint64(cfg.BatchSize)))
	if cfg.Seed != 0 {
		line(&buf, "Seed", fmt.Sprintf("%d", cfg.Seed))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RUN:")
	line(&buf, "State", report.State.String())
	line(&buf, "Workers", fmt.Sprintf("%d", report.Workers))
	line(&buf, "Trials completed", fmt.Sprintf("%s of %s (%d%%)",
		FormatCount(report.Stats.CompletedTrials), FormatCount(report.Stats.TotalTrials), report.Stats.PercentComplete()))
	line(&buf, "Total guesses", FormatCount(report.Stats.TotalGuesses))
	line(&buf, "Elapsed", dateutil.HumanizeDuration(report.Elapsed))
	if report.Error != "" {
		line(&buf, "Error", report.Error)
	}
	fmt.Fprintln(&buf)

	cmp := AnalyzeReport(report)
	fmt.Fprintln(&buf, "RESULTS:")
	if cmp.Observed != nil {
		line(&buf, "Average guesses", FormatDecimal(*cmp.Observed))
	} else {
		line(&buf, "Average guesses", "n/a (no trial completed)")
	}
	line(&buf, "Expected guesses", fmt.Sprintf("%s  [%s]", FormatDecimal(cmp.Expected), report.Expected.Formula))
	if cmp.Observed != nil {
		line(&buf, "Deviation", fmt.Sprintf("%s (%s)", FormatDecimal(cmp.Difference), FormatSignedPercentage(cmp.PercentDifference)))
	}
	if cfg.RequestsPerSecond != nil {
		line(&buf, "Average attack time", FormatSeconds(report.AverageSeconds))
		line(&buf, "Expected attack time", FormatSeconds(report.Expected.Seconds))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Note: %s\n", cmp.Note)
	if cmp.Suboptimal {
		fmt.Fprintln(&buf, "Tip: increment or decrement guessing never repeats a guess against a static session set.")
	}
	return buf.Bytes(), nil
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-22s %s\n", label+":", value)
}
