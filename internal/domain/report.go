package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunState is the lifecycle state of a simulation run.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s RunState) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

// MarshalText implements encoding.TextMarshaler so reports show the state name.
func (s RunState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ExpectedGuesses is the closed-form estimate for a configuration.
type ExpectedGuesses struct {
	Guesses decimal.Decimal `json:"guesses" yaml:"guesses"`
	Formula string          `json:"formula" yaml:"formula"`
	// Seconds is set only when a request rate was configured.
	Seconds *decimal.Decimal `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// SimulationReport bundles a finished (or stopped) run for the output formatters.
type SimulationReport struct {
	Config   SimulationConfig `json:"config" yaml:"config"`
	State    RunState         `json:"state" yaml:"state"`
	Stats    AggregateStats   `json:"stats" yaml:"stats"`
	Expected ExpectedGuesses  `json:"expected" yaml:"expected"`
	Workers  int              `json:"workers" yaml:"workers"`
	Elapsed  time.Duration    `json:"elapsed_ns" yaml:"elapsed"`
	// AverageGuesses is empty when no trial completed.
	AverageGuesses *decimal.Decimal `json:"average_guesses,omitempty" yaml:"average_guesses,omitempty"`
	// AverageSeconds is AverageGuesses divided by the configured request rate.
	AverageSeconds *decimal.Decimal `json:"average_seconds,omitempty" yaml:"average_seconds,omitempty"`
	Error          string           `json:"error,omitempty" yaml:"error,omitempty"`
}
