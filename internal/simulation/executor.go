package simulation

import (
	"context"
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/rng"
)

// Executor runs one contiguous shard of trials sequentially.
type Executor struct {
	ID        int
	Config    domain.SimulationConfig
	Trials    int
	BatchSize int
	Source    rng.Source
	Logger    Logger
}

// Run executes the shard in batches of BatchSize trials. After every batch it
// sends a progress event with the shard's cumulative counters, and after the
// last one a single done event. Cumulative values let the receiver derive
// deltas even if it only looks at some of the snapshots.
//
// Cancellation is observed between batches and while blocked on a send; a
// batch already in progress runs to completion. A panic inside a trial (for
// example a failed entropy read) is returned as an error.
func (e *Executor) Run(ctx context.Context, events chan<- domain.ProgressEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in trial: %v", r)
		}
	}()

	logger := e.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	batch := e.BatchSize
	if batch <= 0 {
		batch = e.Trials
	}
	logger.Debugf("worker %d: starting shard of %d trials (batch size %d)", e.ID, e.Trials, batch)

	var progress domain.WorkerProgress
	for done := 0; done < e.Trials; {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < batch && done < e.Trials; j++ {
			progress = progress.Add(RunTrial(e.Config, e.Source))
			done++
		}
		if err := e.send(ctx, events, domain.EventProgress, progress); err != nil {
			return err
		}
	}

	logger.Debugf("worker %d: shard finished after %d guesses", e.ID, progress.TotalGuesses)
	return e.send(ctx, events, domain.EventDone, progress)
}

func (e *Executor) send(ctx context.Context, events chan<- domain.ProgressEvent, kind domain.EventKind, p domain.WorkerProgress) error {
	ev := domain.ProgressEvent{WorkerID: e.ID, Kind: kind, Cumulative: p}
	select {
	case events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
