package calculation

import (
	"errors"
	"time"

	"github.com/rpgo/session-bruteforce/internal/domain"
	qty "github.com/rpgo/session-bruteforce/pkg/decimal"
)

// RunResult is the observable outcome of a run, as read from a run handle.
type RunResult struct {
	Config  domain.SimulationConfig
	State   domain.RunState
	Stats   domain.AggregateStats
	Workers int
	Elapsed time.Duration
	Err     error
}

// BuildReport combines an observed run with its closed-form estimate.
// Cancellation is not recorded as an error; the state already says so.
func BuildReport(r RunResult) *domain.SimulationReport {
	report := &domain.SimulationReport{
		Config:   r.Config,
		State:    r.State,
		Stats:    r.Stats,
		Expected: ExpectedGuesses(r.Config),
		Workers:  r.Workers,
		Elapsed:  r.Elapsed,
	}
	if r.Stats.CompletedTrials > 0 {
		avg := qty.Ratio(qty.NewQuantityFromUint(r.Stats.TotalGuesses), qty.NewQuantityFromUint(r.Stats.CompletedTrials)).Decimal
		report.AverageGuesses = &avg
		report.AverageSeconds = AverageSeconds(avg, r.Config)
	}
	if r.Err != nil && !errors.Is(r.Err, domain.ErrCancelled) {
		report.Error = r.Err.Error()
	}
	return report
}
