package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvMap(t *testing.T) {
	o, err := ParseEnvMap(map[string]string{
		"SESSIM_WORKERS":    "6",
		"SESSIM_BATCH_SIZE": "250",
		"SESSIM_SEED":       "99",
		"SESSIM_LOG_LEVEL":  "debug",
	})
	require.NoError(t, err)

	require.NotNil(t, o.Workers)
	assert.Equal(t, 6, *o.Workers)
	require.NotNil(t, o.BatchSize)
	assert.Equal(t, 250, *o.BatchSize)
	require.NotNil(t, o.Seed)
	assert.Equal(t, uint64(99), *o.Seed)
	assert.Equal(t, "debug", o.LogLevel)
}

func TestParseEnvMapDefaults(t *testing.T) {
	o, err := ParseEnvMap(map[string]string{})
	require.NoError(t, err)

	assert.Nil(t, o.Workers)
	assert.Nil(t, o.BatchSize)
	assert.Nil(t, o.Seed)
	assert.Equal(t, "info", o.LogLevel)
}

func TestParseEnvMapRejectsGarbage(t *testing.T) {
	_, err := ParseEnvMap(map[string]string{"SESSIM_WORKERS": "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse environment")
}

func TestEnvOverridesApply(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()
	workers := 3
	o := EnvOverrides{Workers: &workers}

	o.Apply(config)

	assert.Equal(t, 3, config.Workers)
	assert.Equal(t, DefaultBatchSize, config.BatchSize)
	assert.Zero(t, config.Seed)
}
