package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBatchSize is the number of trials a worker runs between progress reports.
	DefaultBatchSize = 1000
	// DefaultTrialCount is used when a configuration leaves trial_count unset.
	DefaultTrialCount = 10000
	// MaxRequestsPerSecond caps the attack rate accepted from user input.
	MaxRequestsPerSecond = 100000000
)

// InputParser handles parsing of simulation configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file, fills defaults
// and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	config, err := ip.DecodeFile(filename)
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// DecodeFile reads filename and fills defaults without validating, so callers
// can layer flag and environment overrides on top first.
func (ip *InputParser) DecodeFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Decode(data)
}

// Decode parses YAML (JSON is a subset) and fills defaults.
func (ip *InputParser) Decode(data []byte) (*domain.SimulationConfig, error) {
	var config domain.SimulationConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	ip.ApplyDefaults(&config)
	return &config, nil
}

// ApplyDefaults fills fields a user may reasonably leave out.
func (ip *InputParser) ApplyDefaults(config *domain.SimulationConfig) {
	if config.SessionMethod == "" {
		config.SessionMethod = domain.SessionStatic
	}
	if config.GuessStrategy == "" {
		config.GuessStrategy = domain.GuessRandom
	}
	if config.TrialCount == 0 {
		config.TrialCount = DefaultTrialCount
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultBatchSize
	}
}

// Normalize clamps values the way the interactive form does instead of
// rejecting them: a session count that fills the ID space is lowered to
// 2^bits - 1 and the request rate is capped. It returns a description of
// every adjustment so callers can warn about them.
func (ip *InputParser) Normalize(config *domain.SimulationConfig) []string {
	var adjusted []string
	if config.Bits >= 1 && config.Bits <= domain.MaxBits {
		if total := config.TotalIDs(); config.SessionCount >= total {
			adjusted = append(adjusted, fmt.Sprintf("session_count %d lowered to %d (must be less than 2^%d)", config.SessionCount, total-1, config.Bits))
			config.SessionCount = total - 1
		}
	}
	limit := decimal.NewFromInt(MaxRequestsPerSecond)
	if config.RequestsPerSecond != nil && config.RequestsPerSecond.GreaterThan(limit) {
		adjusted = append(adjusted, fmt.Sprintf("requests_per_second %s capped at %s", config.RequestsPerSecond, limit))
		config.RequestsPerSecond = &limit
	}
	return adjusted
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.SimulationConfig) error {
	if config == nil {
		return &domain.ConfigError{Field: "config", Reason: "no configuration provided"}
	}
	return config.Validate()
}

// IsConfigError reports whether err was caused by invalid configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, domain.ErrInvalidConfig)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationConfig {
	rate := decimal.NewFromInt(1000)
	return &domain.SimulationConfig{
		Bits:              16,
		SessionCount:      10,
		RequestsPerSecond: &rate,
		SessionMethod:     domain.SessionStatic,
		GuessStrategy:     domain.GuessIncrement,
		TrialCount:        DefaultTrialCount,
		BatchSize:         DefaultBatchSize,
	}
}
