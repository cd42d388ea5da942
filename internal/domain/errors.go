package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("invalid simulation configuration")
	// ErrWorkerFailed is wrapped by every WorkerError.
	ErrWorkerFailed = errors.New("simulation worker failed")
	// ErrCancelled is returned by Wait for runs stopped through Cancel.
	ErrCancelled = errors.New("simulation cancelled")
	// ErrRunInProgress is returned when Start is called while a run is active.
	ErrRunInProgress = errors.New("simulation already running")
)

// ConfigError reports a configuration rejected before any work starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// WorkerError reports an executor that terminated abnormally.
type WorkerError struct {
	WorkerID int
	Err      error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.WorkerID, e.Err)
}

// Is makes errors.Is(err, ErrWorkerFailed) match while Unwrap still exposes the cause.
func (e *WorkerError) Is(target error) bool { return target == ErrWorkerFailed }

func (e *WorkerError) Unwrap() error { return e.Err }

// Validate checks the invariants the simulation core relies on.
func (c SimulationConfig) Validate() error {
	if c.Bits < 1 || c.Bits > MaxBits {
		return &ConfigError{Field: "bits", Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxBits, c.Bits)}
	}
	if c.SessionCount == 0 {
		return &ConfigError{Field: "session_count", Reason: "must be at least 1"}
	}
	if c.SessionCount >= c.TotalIDs() {
		return &ConfigError{Field: "session_count", Reason: fmt.Sprintf("must be less than 2^%d (%d), got %d", c.Bits, c.TotalIDs(), c.SessionCount)}
	}
	if _, err := ParseSessionMethod(string(c.SessionMethod)); err != nil {
		return &ConfigError{Field: "session_method", Reason: err.Error()}
	}
	if _, err := ParseGuessStrategy(string(c.GuessStrategy)); err != nil {
		return &ConfigError{Field: "guess_strategy", Reason: err.Error()}
	}
	if c.TrialCount <= 0 {
		return &ConfigError{Field: "trial_count", Reason: "must be positive"}
	}
	if c.BatchSize <= 0 {
		return &ConfigError{Field: "batch_size", Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Reason: "cannot be negative"}
	}
	if c.RequestsPerSecond != nil && !c.RequestsPerSecond.IsPositive() {
		return &ConfigError{Field: "requests_per_second", Reason: "must be positive when set"}
	}
	return nil
}
