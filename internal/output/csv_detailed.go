package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/session-bruteforce/internal/domain"
)

// CSVDetailedExporter writes one metric per row, which reads better in
// spreadsheets than the wide summary and keeps the formula next to each estimate.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	cfg := report.Config
	cmp := AnalyzeReport(report)

	rows := [][]string{
		{"Section", "Metric", "Value", "Note"},
		{"parameters", "bits", strconv.Itoa(cfg.Bits), ""},
		{"parameters", "total_ids", strconv.FormatUint(cfg.TotalIDs(), 10), "2^B"},
		{"parameters", "session_count", strconv.FormatUint(cfg.SessionCount, 10), ""},
		{"parameters", "session_method", string(cfg.SessionMethod), ""},
		{"parameters", "guess_strategy", string(cfg.GuessStrategy), ""},
		{"parameters", "requests_per_second", optionalFixed(cfg.RequestsPerSecond), ""},
		{"parameters", "batch_size", strconv.Itoa(cfg.BatchSize), ""},
		{"run", "state", report.State.String(), report.Error},
		{"run", "workers", strconv.Itoa(report.Workers), ""},
		{"run", "completed_trials", strconv.FormatUint(report.Stats.CompletedTrials, 10), ""},
		{"run", "total_trials", strconv.FormatUint(report.Stats.TotalTrials, 10), ""},
		{"run", "total_guesses", strconv.FormatUint(report.Stats.TotalGuesses, 10), ""},
		{"run", "final", strconv.FormatBool(report.Stats.Final), ""},
		{"results", "average_guesses", optionalFixed(report.AverageGuesses), ""},
		{"results", "expected_guesses", report.Expected.Guesses.StringFixed(2), report.Expected.Formula},
		{"results", "percent_difference", cmp.PercentDifference.StringFixed(2), ""},
		{"results", "average_seconds", optionalFixed(report.AverageSeconds), ""},
		{"results", "expected_seconds", optionalFixed(report.Expected.Seconds), ""},
		{"results", "note", cmp.Note, ""},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
