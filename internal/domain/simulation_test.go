package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionMethod(t *testing.T) {
	m, err := ParseSessionMethod(" Dynamic ")
	require.NoError(t, err)
	assert.Equal(t, SessionDynamic, m)

	_, err = ParseSessionMethod("rolling")
	assert.Error(t, err)
}

func TestParseGuessStrategy(t *testing.T) {
	for _, s := range []string{"random", "INCREMENT", "decrement"} {
		_, err := ParseGuessStrategy(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseGuessStrategy("spiral")
	assert.Error(t, err)

	assert.True(t, GuessIncrement.Sequential())
	assert.True(t, GuessDecrement.Sequential())
	assert.False(t, GuessRandom.Sequential())
}

func TestTotalIDs(t *testing.T) {
	assert.Equal(t, uint64(16), SimulationConfig{Bits: 4}.TotalIDs())
	assert.Equal(t, uint64(4294967296), SimulationConfig{Bits: 32}.TotalIDs())
	assert.Zero(t, SimulationConfig{}.TotalIDs())
}

func TestValidate(t *testing.T) {
	valid := SimulationConfig{
		Bits: 32, SessionCount: 4294967295, SessionMethod: SessionStatic,
		GuessStrategy: GuessRandom, TrialCount: 1, BatchSize: 1,
	}
	require.NoError(t, valid.Validate())

	negative := decimal.NewFromInt(-5)
	bad := valid
	bad.RequestsPerSecond = &negative
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "requests_per_second")
}

func TestWorkerProgressDelta(t *testing.T) {
	prev := WorkerProgress{CompletedTrials: 10, TotalGuesses: 100}
	next := prev.Add(TrialOutcome{GuessesTaken: 7})

	delta, err := next.Delta(prev)
	require.NoError(t, err)
	assert.Equal(t, WorkerProgress{CompletedTrials: 1, TotalGuesses: 7}, delta)

	_, err = prev.Delta(next)
	assert.Error(t, err)
}

func TestAggregateStats(t *testing.T) {
	s := AggregateStats{TotalTrials: 8}
	_, ok := s.AverageGuesses()
	assert.False(t, ok)
	assert.Zero(t, s.PercentComplete())

	s.Fold(WorkerProgress{CompletedTrials: 3, TotalGuesses: 30})
	avg, ok := s.AverageGuesses()
	require.True(t, ok)
	assert.Equal(t, 10.0, avg)
	assert.InDelta(t, 0.375, s.FractionComplete(), 1e-12)
	assert.Equal(t, 37, s.PercentComplete())
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("entropy source unavailable")
	werr := &WorkerError{WorkerID: 2, Err: cause}
	assert.True(t, errors.Is(werr, ErrWorkerFailed))
	assert.True(t, errors.Is(werr, cause))
	assert.Equal(t, "worker 2: entropy source unavailable", werr.Error())

	cerr := &ConfigError{Field: "bits", Reason: "too wide"}
	assert.True(t, errors.Is(cerr, ErrInvalidConfig))
	assert.Equal(t, "bits: too wide", cerr.Error())
}

func TestRunStateText(t *testing.T) {
	b, err := StateCancelled.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cancelled", string(b))
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateRunning.Terminal())
}
