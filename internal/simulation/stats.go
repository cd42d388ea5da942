package simulation

import (
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/domain"
)

// progressTracker turns the cumulative snapshots reported by each worker into
// deltas and folds them into the run totals. It is owned by the coordinator's
// fold goroutine and is never touched concurrently.
type progressTracker struct {
	last      []domain.WorkerProgress
	done      []bool
	remaining int
	stats     domain.AggregateStats
}

func newProgressTracker(workers int, totalTrials uint64) *progressTracker {
	return &progressTracker{
		last:      make([]domain.WorkerProgress, workers),
		done:      make([]bool, workers),
		remaining: workers,
		stats:     domain.AggregateStats{TotalTrials: totalTrials},
	}
}

// apply folds one event. finished is true once every worker's done event has been folded.
func (t *progressTracker) apply(ev domain.ProgressEvent) (finished bool, err error) {
	id := ev.WorkerID
	if id < 0 || id >= len(t.last) {
		return false, fmt.Errorf("event from unknown worker %d", id)
	}
	if t.done[id] {
		return false, fmt.Errorf("%s event after done", ev.Kind)
	}

	delta, err := ev.Cumulative.Delta(t.last[id])
	if err != nil {
		return false, err
	}
	t.stats.Fold(delta)
	t.last[id] = ev.Cumulative

	if ev.Kind == domain.EventDone {
		t.done[id] = true
		t.remaining--
	}
	return t.remaining == 0, nil
}

// finalize marks the totals as complete.
func (t *progressTracker) finalize() domain.AggregateStats {
	t.stats.Final = true
	return t.stats
}
