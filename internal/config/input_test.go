package config

import (
	"os"
	"testing"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "bits: 16\n" +
		"session_count: 10\n" +
		"requests_per_second: 2500\n" +
		"session_method: dynamic\n" +
		"guess_strategy: decrement\n" +
		"trial_count: 500\n" +
		"batch_size: 50\n" +
		"workers: 2\n" +
		"seed: 42\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, 16, config.Bits)
	assert.Equal(t, uint64(10), config.SessionCount)
	require.NotNil(t, config.RequestsPerSecond)
	assert.True(t, config.RequestsPerSecond.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, domain.SessionDynamic, config.SessionMethod)
	assert.Equal(t, domain.GuessDecrement, config.GuessStrategy)
	assert.Equal(t, 500, config.TrialCount)
	assert.Equal(t, 50, config.BatchSize)
	assert.Equal(t, 2, config.Workers)
	assert.Equal(t, uint64(42), config.Seed)
}

func TestLoadFromFile_JSON(t *testing.T) {
	testConfig := `{"bits": 8, "session_count": 3, "session_method": "static", "guess_strategy": "increment"}`

	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, 8, config.Bits)
	assert.Nil(t, config.RequestsPerSecond)
	assert.Equal(t, DefaultTrialCount, config.TrialCount)
	assert.Equal(t, DefaultBatchSize, config.BatchSize)
}

func TestLoadFromFile_Defaults(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, "bits: 12\nsession_count: 1\n"))

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatic, config.SessionMethod)
	assert.Equal(t, domain.GuessRandom, config.GuessStrategy)
	assert.Equal(t, DefaultTrialCount, config.TrialCount)
	assert.Equal(t, DefaultBatchSize, config.BatchSize)
	assert.Zero(t, config.Workers)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
bits: 16
	session_count: "not-a-number"
`
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_UnknownStrategy(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, "bits: 8\nsession_count: 1\nguess_strategy: spiral\n"))

	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "spiral")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, "bits: 4\nsession_count: 16\n"))

	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, IsConfigError(err))
}

func TestDecodeFileSkipsValidation(t *testing.T) {
	config, err := NewInputParser().DecodeFile(writeTempConfig(t, "bits: 40\nsession_count: 0\n"))

	require.NoError(t, err)
	assert.Equal(t, 40, config.Bits)
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))
}

func TestValidateConfiguration_Nil(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(nil)
	assert.True(t, IsConfigError(err))
}

func TestValidateConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SimulationConfig)
		field  string
	}{
		{"bits above 32", func(c *domain.SimulationConfig) { c.Bits = 33 }, "bits"},
		{"no sessions", func(c *domain.SimulationConfig) { c.SessionCount = 0 }, "session_count"},
		{"session space full", func(c *domain.SimulationConfig) { c.SessionCount = 1 << 16 }, "session_count"},
		{"unknown method", func(c *domain.SimulationConfig) { c.SessionMethod = "rolling" }, "session_method"},
		{"negative workers", func(c *domain.SimulationConfig) { c.Workers = -2 }, "workers"},
		{"zero rate", func(c *domain.SimulationConfig) {
			zero := decimal.Zero
			c.RequestsPerSecond = &zero
		}, "requests_per_second"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)

			err := parser.ValidateConfiguration(config)
			require.Error(t, err)
			var cerr *domain.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestNormalizeClampsSessionCount(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Bits = 4
	config.SessionCount = 40

	adjusted := parser.Normalize(config)

	assert.Equal(t, uint64(15), config.SessionCount)
	require.Len(t, adjusted, 1)
	assert.Contains(t, adjusted[0], "session_count")
	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestNormalizeCapsRequestRate(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	rate := decimal.NewFromInt(250000000)
	config.RequestsPerSecond = &rate

	adjusted := parser.Normalize(config)

	require.Len(t, adjusted, 1)
	assert.True(t, config.RequestsPerSecond.Equal(decimal.NewFromInt(MaxRequestsPerSecond)))
	// The caller's value is not mutated through the pointer.
	assert.True(t, rate.Equal(decimal.NewFromInt(250000000)))
}

func TestNormalizeLeavesValidConfigAlone(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	before := *config

	assert.Empty(t, parser.Normalize(config))
	assert.Equal(t, before, *config)
}

func TestNormalizeIgnoresOutOfRangeBits(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Bits = 48

	assert.Empty(t, parser.Normalize(config))
	assert.Error(t, parser.ValidateConfiguration(config))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.Equal(t, 16, config.Bits)
	assert.Equal(t, domain.SessionStatic, config.SessionMethod)
	assert.Equal(t, domain.GuessIncrement, config.GuessStrategy)
	require.NotNil(t, config.RequestsPerSecond)

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}
