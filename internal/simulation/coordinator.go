package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/rng"
)

// Observer receives run events. Callbacks are invoked from the coordinator's
// fold goroutine, one at a time; any of them may be nil.
type Observer struct {
	// OnProgress is called after every folded event.
	OnProgress func(stats domain.AggregateStats, fraction float64)
	// OnDone is called exactly once, when the run completes.
	OnDone func(stats domain.AggregateStats)
	// OnFailure is called once if a worker fails.
	OnFailure func(err error)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers fixes the number of parallel executors. Zero keeps the default of one per CPU.
func WithWorkers(n int) Option {
	return func(c *Coordinator) { c.workers = n }
}

// WithSourceFactory overrides how per-worker random sources are built.
func WithSourceFactory(f rng.Factory) Option {
	return func(c *Coordinator) { c.factory = f }
}

// WithObserver registers run callbacks.
func WithObserver(o Observer) Option {
	return func(c *Coordinator) { c.observer = o }
}

// WithLogger sets the coordinator's logger.
func WithLogger(l Logger) Option {
	return func(c *Coordinator) { c.SetLogger(l) }
}

// Coordinator partitions a simulation across parallel executors and folds
// their progress into a single set of statistics. It runs one simulation at
// a time.
type Coordinator struct {
	workers  int
	factory  rng.Factory
	observer Observer
	logger   Logger

	mu     sync.Mutex
	active *RunHandle
}

// NewCoordinator creates a coordinator.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{logger: NopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (c *Coordinator) SetLogger(l Logger) {
	if l == nil {
		c.logger = NopLogger{}
		return
	}
	c.logger = l
}

// Start validates cfg and launches a run. It returns a ConfigError without
// creating a run when cfg is invalid, and ErrRunInProgress while a previous
// run started by this coordinator is still running.
func (c *Coordinator) Start(ctx context.Context, cfg domain.SimulationConfig) (*RunHandle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && c.active.State() == domain.StateRunning {
		return nil, domain.ErrRunInProgress
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = c.workers
	}
	if workers <= 0 {
		workers = DefaultWorkerCount()
	}
	factory := c.factory
	if factory == nil {
		factory = rng.FactoryFor(cfg.Seed)
	}

	shards := PartitionTrials(cfg.TrialCount, workers)
	runCtx, cancel := context.WithCancel(ctx)
	h := &RunHandle{
		cfg:         cfg,
		workers:     len(shards),
		observer:    c.observer,
		logger:      c.logger,
		cancel:      cancel,
		state:       domain.StateRunning,
		tracker:     newProgressTracker(len(shards), uint64(cfg.TrialCount)),
		started:     nowFunc(),
		loopDone:    make(chan struct{}),
		workersDone: make(chan struct{}),
	}

	c.logger.Infof("starting %d trials across %d workers (bits=%d sessions=%d method=%s strategy=%s)",
		cfg.TrialCount, len(shards), cfg.Bits, cfg.SessionCount, cfg.SessionMethod, cfg.GuessStrategy)

	// Buffered so a worker's final send or failure report never waits on a stopped fold loop.
	events := make(chan domain.ProgressEvent, len(shards))
	failures := make(chan *domain.WorkerError, len(shards))

	var wg sync.WaitGroup
	for i, n := range shards {
		wg.Add(1)
		ex := &Executor{
			ID:        i,
			Config:    cfg,
			Trials:    n,
			BatchSize: cfg.BatchSize,
			Source:    factory(i),
			Logger:    c.logger,
		}
		go func() {
			defer wg.Done()
			if err := ex.Run(runCtx, events); err != nil && runCtx.Err() == nil {
				failures <- &domain.WorkerError{WorkerID: ex.ID, Err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(h.workersDone)
	}()
	go h.foldLoop(runCtx, events, failures)

	c.active = h
	return h, nil
}

// RunHandle controls and inspects one simulation run.
type RunHandle struct {
	cfg      domain.SimulationConfig
	workers  int
	observer Observer
	logger   Logger
	cancel   context.CancelFunc

	// tracker is written only by foldLoop; mu guards publication of its
	// stats to other goroutines together with the state fields below.
	tracker *progressTracker

	mu       sync.Mutex
	state    domain.RunState
	err      error
	started  time.Time
	finished time.Time

	loopDone    chan struct{}
	workersDone chan struct{}
}

// Cancel stops the run. Workers stop at their next batch boundary and no
// further events are folded or delivered to the observer; a callback that is
// already executing finishes normally. Cancel is a no-op on terminal runs.
func (h *RunHandle) Cancel() {
	if h.transition(domain.StateCancelled, domain.ErrCancelled) {
		h.logger.Infof("simulation cancelled")
	}
	h.cancel()
}

// Wait blocks until the run is terminal and every worker has exited. It
// returns the latest statistics together with nil, ErrCancelled or a
// *WorkerError.
func (h *RunHandle) Wait() (domain.AggregateStats, error) {
	<-h.loopDone
	<-h.workersDone
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tracker.stats, h.err
}

// Done is closed when the run reaches a terminal state.
func (h *RunHandle) Done() <-chan struct{} { return h.loopDone }

// State returns the current lifecycle state.
func (h *RunHandle) State() domain.RunState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Stats returns a snapshot of the totals folded so far. Stats.Final is false
// unless the run completed.
func (h *RunHandle) Stats() domain.AggregateStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tracker.stats
}

// Err returns the terminal error, if any.
func (h *RunHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Workers is the number of executors the run was split across.
func (h *RunHandle) Workers() int { return h.workers }

// Config returns the configuration the run was started with.
func (h *RunHandle) Config() domain.SimulationConfig { return h.cfg }

// Elapsed is the wall time from start until now, or until the run ended.
func (h *RunHandle) Elapsed() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished.IsZero() {
		return nowFunc().Sub(h.started)
	}
	return h.finished.Sub(h.started)
}

// transition moves a running handle to a terminal state. It reports false if
// the run had already left Running.
func (h *RunHandle) transition(to domain.RunState, err error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != domain.StateRunning {
		return false
	}
	h.state = to
	h.err = err
	h.finished = nowFunc()
	if to == domain.StateCompleted {
		h.tracker.finalize()
	}
	return true
}

func (h *RunHandle) foldLoop(ctx context.Context, events <-chan domain.ProgressEvent, failures <-chan *domain.WorkerError) {
	defer close(h.loopDone)
	for {
		select {
		case <-ctx.Done():
			// Cancel already transitioned; this covers a cancelled parent context.
			if h.transition(domain.StateCancelled, domain.ErrCancelled) {
				h.logger.Infof("simulation cancelled: %v", context.Cause(ctx))
			}
			return
		case werr := <-failures:
			h.fail(werr)
			return
		case ev := <-events:
			if !h.handle(ev) {
				return
			}
		}
	}
}

// handle folds one event and notifies the observer. It returns false when
// the loop should stop.
func (h *RunHandle) handle(ev domain.ProgressEvent) bool {
	h.mu.Lock()
	if h.state != domain.StateRunning {
		h.mu.Unlock()
		return false
	}
	finished, err := h.tracker.apply(ev)
	snapshot := h.tracker.stats
	h.mu.Unlock()

	if err != nil {
		h.fail(&domain.WorkerError{WorkerID: ev.WorkerID, Err: err})
		return false
	}
	if ev.Kind == domain.EventDone {
		h.logger.Debugf("worker %d released (%d trials, %d guesses)",
			ev.WorkerID, ev.Cumulative.CompletedTrials, ev.Cumulative.TotalGuesses)
	}

	if h.observer.OnProgress != nil {
		if h.State() != domain.StateRunning {
			return false
		}
		h.observer.OnProgress(snapshot, snapshot.FractionComplete())
	}

	if !finished {
		return true
	}
	if !h.transition(domain.StateCompleted, nil) {
		return false
	}
	final := h.Stats()
	if avg, ok := final.AverageGuesses(); ok {
		h.logger.Infof("simulation completed: %d trials, average %.2f guesses", final.CompletedTrials, avg)
	}
	if h.observer.OnDone != nil {
		h.observer.OnDone(final)
	}
	h.cancel()
	return false
}

func (h *RunHandle) fail(werr *domain.WorkerError) {
	if !h.transition(domain.StateFailed, werr) {
		return
	}
	h.logger.Errorf("simulation failed: %v", werr)
	h.cancel()
	if h.observer.OnFailure != nil {
		h.observer.OnFailure(werr)
	}
}
