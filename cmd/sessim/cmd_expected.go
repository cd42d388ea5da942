package main

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/calculation"
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// expectedResult is the JSON shape of the expected command.
type expectedResult struct {
	Config          domain.SimulationConfig `json:"config"`
	ExpectedGuesses decimal.Decimal         `json:"expected_guesses"`
	Formula         string                  `json:"formula"`
	ExpectedSeconds *decimal.Decimal        `json:"expected_seconds,omitempty"`
	Duration        string                  `json:"duration,omitempty"`
	Note            string                  `json:"note"`
	Suboptimal      bool                    `json:"suboptimal"`
}

func newExpectedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expected",
		Short:   "Print the closed-form expected number of guesses without simulating",
		Example: `  sessim expected --bits 32 --sessions 1000 --rate 5000 --method dynamic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cmd.ErrOrStderr())
			cfg, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}

			est := calculation.ExpectedGuesses(*cfg)
			result := expectedResult{
				Config:          *cfg,
				ExpectedGuesses: est.Guesses,
				Formula:         est.Formula,
				ExpectedSeconds: est.Seconds,
				Note:            calculation.StrategyNote(cfg.SessionMethod, cfg.GuessStrategy),
				Suboptimal:      calculation.IsSuboptimal(cfg.SessionMethod, cfg.GuessStrategy),
			}
			if est.Seconds != nil {
				result.Duration = output.FormatSeconds(est.Seconds)
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintf(out, "Expected guesses: %s  [%s]\n", output.FormatDecimal(est.Guesses), est.Formula)
			if est.Seconds != nil {
				fmt.Fprintf(out, "Expected time:    %s  [%s]\n", result.Duration, calculation.FormulaDuration)
			}
			fmt.Fprintf(out, "Note: %s\n", result.Note)
			return nil
		},
	}
	addSimulationFlags(cmd)
	return cmd
}
