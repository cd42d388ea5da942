package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer implements the simple summary CSV output (one row per run).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Bits", "SessionCount", "SessionMethod", "GuessStrategy", "RequestsPerSecond", "TrialCount", "CompletedTrials", "TotalGuesses", "AverageGuesses", "ExpectedGuesses", "AverageSeconds", "ExpectedSeconds", "State", "Workers", "ElapsedSeconds"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	cfg := report.Config
	row := []string{
		strconv.Itoa(cfg.Bits),
		strconv.FormatUint(cfg.SessionCount, 10),
		string(cfg.SessionMethod),
		string(cfg.GuessStrategy),
		optionalFixed(cfg.RequestsPerSecond),
		strconv.Itoa(cfg.TrialCount),
		strconv.FormatUint(report.Stats.CompletedTrials, 10),
		strconv.FormatUint(report.Stats.TotalGuesses, 10),
		optionalFixed(report.AverageGuesses),
		report.Expected.Guesses.StringFixed(2),
		optionalFixed(report.AverageSeconds),
		optionalFixed(report.Expected.Seconds),
		report.State.String(),
		strconv.Itoa(report.Workers),
		strconv.FormatFloat(report.Elapsed.Seconds(), 'f', 3, 64),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// optionalFixed leaves the cell empty for unset values.
func optionalFixed(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
