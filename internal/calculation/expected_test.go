package calculation

import (
	"testing"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimateConfig(bits int, sessions uint64, method domain.SessionMethod, strategy domain.GuessStrategy) domain.SimulationConfig {
	return domain.SimulationConfig{
		Bits:          bits,
		SessionCount:  sessions,
		SessionMethod: method,
		GuessStrategy: strategy,
		TrialCount:    1,
		BatchSize:     1,
	}
}

func TestExpectedGuesses(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.SimulationConfig
		guesses string
		formula string
	}{
		{"dynamic random", estimateConfig(4, 1, domain.SessionDynamic, domain.GuessRandom), "16", FormulaUniform},
		{"dynamic increment", estimateConfig(4, 1, domain.SessionDynamic, domain.GuessIncrement), "16", FormulaUniform},
		{"static random", estimateConfig(4, 1, domain.SessionStatic, domain.GuessRandom), "16", FormulaUniform},
		{"static increment", estimateConfig(4, 1, domain.SessionStatic, domain.GuessIncrement), "8.5", FormulaSequential},
		{"static decrement", estimateConfig(4, 3, domain.SessionStatic, domain.GuessDecrement), "4.25", FormulaSequential},
		{"32 bits", estimateConfig(32, 1024, domain.SessionDynamic, domain.GuessRandom), "4194304", FormulaUniform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := ExpectedGuesses(tt.cfg)
			assert.True(t, decimal.RequireFromString(tt.guesses).Equal(est.Guesses), "got %s", est.Guesses)
			assert.Equal(t, tt.formula, est.Formula)
			assert.Nil(t, est.Seconds)
		})
	}
}

func TestExpectedGuessesWithRequestRate(t *testing.T) {
	rate := decimal.NewFromInt(4)

	cfg := estimateConfig(4, 1, domain.SessionStatic, domain.GuessIncrement)
	cfg.RequestsPerSecond = &rate
	est := ExpectedGuesses(cfg)
	assert.Equal(t, FormulaSequentialRate, est.Formula)
	require.NotNil(t, est.Seconds)
	assert.Equal(t, "2.125", est.Seconds.String())

	cfg.SessionMethod = domain.SessionDynamic
	est = ExpectedGuesses(cfg)
	assert.Equal(t, FormulaUniformRate, est.Formula)
	require.NotNil(t, est.Seconds)
	assert.Equal(t, "4", est.Seconds.String())
}

func TestAverageSeconds(t *testing.T) {
	cfg := estimateConfig(4, 1, domain.SessionStatic, domain.GuessIncrement)
	assert.Nil(t, AverageSeconds(decimal.NewFromInt(10), cfg))

	rate := decimal.NewFromInt(5)
	cfg.RequestsPerSecond = &rate
	got := AverageSeconds(decimal.NewFromInt(10), cfg)
	require.NotNil(t, got)
	assert.Equal(t, "2", got.String())
}

func TestStrategyNote(t *testing.T) {
	for _, s := range []domain.GuessStrategy{domain.GuessRandom, domain.GuessIncrement, domain.GuessDecrement} {
		assert.Contains(t, StrategyNote(domain.SessionDynamic, s), "perform equally")
	}
	assert.Contains(t, StrategyNote(domain.SessionStatic, domain.GuessRandom), "repeated guesses")
	assert.Contains(t, StrategyNote(domain.SessionStatic, domain.GuessIncrement), "Incremental")
	assert.Contains(t, StrategyNote(domain.SessionStatic, domain.GuessDecrement), "Decremental")

	assert.True(t, IsSuboptimal(domain.SessionStatic, domain.GuessRandom))
	assert.False(t, IsSuboptimal(domain.SessionDynamic, domain.GuessRandom))
	assert.False(t, IsSuboptimal(domain.SessionStatic, domain.GuessIncrement))
}
