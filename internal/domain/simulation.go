package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxBits is the widest session ID space the simulator accepts.
const MaxBits = 32

// SessionMethod selects how often the valid session set is regenerated.
type SessionMethod string

const (
	// SessionStatic keeps one valid set for the whole trial.
	SessionStatic SessionMethod = "static"
	// SessionDynamic regenerates the valid set after every failed guess.
	SessionDynamic SessionMethod = "dynamic"
)

// ParseSessionMethod maps a user supplied name to a SessionMethod.
func ParseSessionMethod(s string) (SessionMethod, error) {
	switch m := SessionMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case SessionStatic, SessionDynamic:
		return m, nil
	default:
		return "", fmt.Errorf("unknown session method %q (want static or dynamic)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so YAML and JSON inputs are validated on load.
func (m *SessionMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseSessionMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// GuessStrategy selects the rule that produces successive guesses.
type GuessStrategy string

const (
	GuessRandom    GuessStrategy = "random"
	GuessIncrement GuessStrategy = "increment"
	GuessDecrement GuessStrategy = "decrement"
)

// ParseGuessStrategy maps a user supplied name to a GuessStrategy.
func ParseGuessStrategy(s string) (GuessStrategy, error) {
	switch g := GuessStrategy(strings.ToLower(strings.TrimSpace(s))); g {
	case GuessRandom, GuessIncrement, GuessDecrement:
		return g, nil
	default:
		return "", fmt.Errorf("unknown guess strategy %q (want random, increment or decrement)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GuessStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseGuessStrategy(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Sequential reports whether the strategy sweeps the ID space without repeats.
func (g GuessStrategy) Sequential() bool {
	return g == GuessIncrement || g == GuessDecrement
}

// SimulationConfig holds everything needed to run a simulation
type SimulationConfig struct {
	Bits              int              `json:"bits" yaml:"bits"`
	SessionCount      uint64           `json:"session_count" yaml:"session_count"`
	RequestsPerSecond *decimal.Decimal `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty"`
	SessionMethod     SessionMethod    `json:"session_method" yaml:"session_method"`
	GuessStrategy     GuessStrategy    `json:"guess_strategy" yaml:"guess_strategy"`
	TrialCount        int              `json:"trial_count" yaml:"trial_count"`
	BatchSize         int              `json:"batch_size" yaml:"batch_size"`

	// Workers caps the number of parallel executors; 0 means one per CPU.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
	// Seed makes a run reproducible when non-zero; 0 uses the crypto RNG.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// TotalIDs returns the size of the session ID space, 2^Bits.
// uint64 is used because 2^32 does not fit in a uint32.
func (c SimulationConfig) TotalIDs() uint64 {
	if c.Bits <= 0 {
		return 0
	}
	return uint64(1) << uint(c.Bits)
}

// TrialOutcome is the result of one guess-until-hit trial.
type TrialOutcome struct {
	GuessesTaken uint64 `json:"guesses_taken"`
}

// WorkerProgress is a worker's cumulative counters since its shard started.
type WorkerProgress struct {
	CompletedTrials uint64 `json:"completed_trials"`
	TotalGuesses    uint64 `json:"total_guesses"`
}

// Add folds one trial outcome into the cumulative counters.
func (p WorkerProgress) Add(o TrialOutcome) WorkerProgress {
	p.CompletedTrials++
	p.TotalGuesses += o.GuessesTaken
	return p
}

// Delta returns the increase from prev to p. It fails if either counter went
// backwards, which would mean a worker reported out of order.
func (p WorkerProgress) Delta(prev WorkerProgress) (WorkerProgress, error) {
	if p.CompletedTrials < prev.CompletedTrials || p.TotalGuesses < prev.TotalGuesses {
		return WorkerProgress{}, fmt.Errorf("cumulative progress went backwards: %d/%d after %d/%d",
			p.CompletedTrials, p.TotalGuesses, prev.CompletedTrials, prev.TotalGuesses)
	}
	return WorkerProgress{
		CompletedTrials: p.CompletedTrials - prev.CompletedTrials,
		TotalGuesses:    p.TotalGuesses - prev.TotalGuesses,
	}, nil
}

// EventKind distinguishes intermediate progress from a worker's final report.
type EventKind int

const (
	EventProgress EventKind = iota
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventDone:
		return "done"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ProgressEvent is sent by a worker after every batch and once when its shard is exhausted.
type ProgressEvent struct {
	WorkerID   int
	Kind       EventKind
	Cumulative WorkerProgress
}

// AggregateStats are the run-wide totals folded from worker deltas.
type AggregateStats struct {
	CompletedTrials uint64 `json:"completed_trials" yaml:"completed_trials"`
	TotalGuesses    uint64 `json:"total_guesses" yaml:"total_guesses"`
	TotalTrials     uint64 `json:"total_trials" yaml:"total_trials"`
	// Final is set only when every worker finished; cancelled or failed runs stay non-final.
	Final bool `json:"final" yaml:"final"`
}

// Fold adds a worker delta to the totals.
func (s *AggregateStats) Fold(delta WorkerProgress) {
	s.CompletedTrials += delta.CompletedTrials
	s.TotalGuesses += delta.TotalGuesses
}

// AverageGuesses returns TotalGuesses/CompletedTrials. ok is false when no
// trial has completed yet.
func (s AggregateStats) AverageGuesses() (avg float64, ok bool) {
	if s.CompletedTrials == 0 {
		return 0, false
	}
	return float64(s.TotalGuesses) / float64(s.CompletedTrials), true
}

// FractionComplete is CompletedTrials/TotalTrials in [0, 1].
func (s AggregateStats) FractionComplete() float64 {
	if s.TotalTrials == 0 {
		return 0
	}
	f := float64(s.CompletedTrials) / float64(s.TotalTrials)
	if f > 1 {
		return 1
	}
	return f
}

// PercentComplete is the floored percentage shown on progress lines.
func (s AggregateStats) PercentComplete() int {
	return int(s.FractionComplete() * 100)
}
