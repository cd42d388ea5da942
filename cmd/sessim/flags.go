package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/session-bruteforce/internal/config"
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addSimulationFlags registers the parameters shared by simulate and expected.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "YAML or JSON configuration file; flags override its values")
	cmd.Flags().IntP("bits", "b", 16, "Session ID length in bits (1-32)")
	cmd.Flags().Uint64P("sessions", "s", 1, "Number of simultaneously valid sessions")
	cmd.Flags().StringP("rate", "a", "", "Attacker requests per second (optional)")
	cmd.Flags().StringP("method", "m", string(domain.SessionStatic), "Session method: static or dynamic")
	cmd.Flags().StringP("strategy", "g", string(domain.GuessRandom), "Guess strategy: random, increment or decrement")
	cmd.Flags().IntP("trials", "n", config.DefaultTrialCount, "Number of simulated attacks")
	cmd.Flags().Int("batch-size", config.DefaultBatchSize, "Trials per progress report")
	cmd.Flags().Int("workers", 0, "Parallel workers (0 = one per CPU)")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible run (0 = crypto random)")
}

// loadConfig layers the configuration, lowest precedence first: the file (or
// flag defaults without one), SESSIM_* environment overrides, then flags set
// on the command line. The result is clamped and validated.
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*domain.SimulationConfig, error) {
	parser := config.NewInputParser()
	flags := cmd.Flags()

	cfg := &domain.SimulationConfig{}
	path, _ := flags.GetString("config")
	if path != "" {
		loaded, err := parser.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if err := applyFlags(cfg, flags, false); err != nil {
		return nil, err
	}

	env, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	env.Apply(cfg)

	if err := applyFlags(cfg, flags, true); err != nil {
		return nil, err
	}

	for _, adjustment := range parser.Normalize(cfg) {
		logger.Warn("adjusted configuration", "change", adjustment)
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies flag values onto cfg. With onlyChanged set, flags left at
// their defaults are skipped.
func applyFlags(cfg *domain.SimulationConfig, flags *pflag.FlagSet, onlyChanged bool) error {
	use := func(name string) bool { return !onlyChanged || flags.Changed(name) }

	if use("bits") {
		cfg.Bits, _ = flags.GetInt("bits")
	}
	if use("sessions") {
		cfg.SessionCount, _ = flags.GetUint64("sessions")
	}
	if use("rate") {
		raw, _ := flags.GetString("rate")
		if raw != "" {
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return &domain.ConfigError{Field: "requests_per_second", Reason: fmt.Sprintf("not a number: %q", raw)}
			}
			cfg.RequestsPerSecond = &rate
		}
	}
	if use("method") {
		raw, _ := flags.GetString("method")
		method, err := domain.ParseSessionMethod(raw)
		if err != nil {
			return &domain.ConfigError{Field: "session_method", Reason: err.Error()}
		}
		cfg.SessionMethod = method
	}
	if use("strategy") {
		raw, _ := flags.GetString("strategy")
		strategy, err := domain.ParseGuessStrategy(raw)
		if err != nil {
			return &domain.ConfigError{Field: "guess_strategy", Reason: err.Error()}
		}
		cfg.GuessStrategy = strategy
	}
	if use("trials") {
		cfg.TrialCount, _ = flags.GetInt("trials")
	}
	if use("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
	if use("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if use("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	return nil
}

// newLogger builds the stderr logger from --log-level, falling back to SESSIM_LOG_LEVEL.
func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		if env, err := config.ParseEnv(); err == nil {
			level = env.LogLevel
		}
	}
	return logging.NewLogger(level, w)
}
