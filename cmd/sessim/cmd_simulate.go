package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/rpgo/session-bruteforce/internal/calculation"
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/logging"
	"github.com/rpgo/session-bruteforce/internal/output"
	"github.com/rpgo/session-bruteforce/internal/simulation"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the Monte Carlo brute-force simulation",
		Long: `Run many independent brute-force attacks against a simulated session store
and report the average number of guesses needed to hit a valid session.

Progress is printed to stderr while the run is active. Interrupt (Ctrl+C)
cancels the run and reports the trials completed so far.`,
		Example: `  sessim simulate --bits 16 --sessions 10 --strategy increment
  sessim simulate --config sessim.yaml --trials 100000 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := &lockedWriter{w: cmd.ErrOrStderr()}
			logger := newLogger(cmd, stderr)

			cfg, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			quiet, _ := cmd.Flags().GetBool("quiet")
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("output-dir")
			if jsonOut {
				format = "json"
			}
			if output.NormalizeFormatName(format) == "all" {
				if outDir == "" {
					return errors.New("format \"all\" requires --output-dir")
				}
			} else if output.GetFormatterByName(format) == nil {
				return fmt.Errorf("%w: %q (available: %s)", output.ErrUnsupportedFormat, format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			var progress *progressPrinter
			if !quiet {
				progress = &progressPrinter{w: stderr}
			}
			coordinator := simulation.NewCoordinator(
				simulation.WithLogger(logging.NewPrintf(logger)),
				simulation.WithObserver(progress.observer()),
			)

			handle, err := coordinator.Start(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			notifySignals(sigCh)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					logger.Warn("interrupt received, cancelling run")
					handle.Cancel()
				case <-handle.Done():
				}
			}()

			stats, runErr := handle.Wait()
			progress.finish()

			report := calculation.BuildReport(calculation.RunResult{
				Config:  handle.Config(),
				State:   handle.State(),
				Stats:   stats,
				Workers: handle.Workers(),
				Elapsed: handle.Elapsed(),
				Err:     runErr,
			})

			if outDir != "" {
				files, err := output.GenerateReport(report, format, outDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					logger.Info("report written", "file", f)
				}
			} else if err := writeReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}

			if runErr != nil && !errors.Is(runErr, domain.ErrCancelled) {
				return fmt.Errorf("simulation failed: %w", runErr)
			}
			return nil
		},
	}

	addSimulationFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", "Report format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all")
	cmd.Flags().StringP("output-dir", "o", "", "Write timestamped report files to this directory instead of stdout")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print progress")
	return cmd
}

// writeReport renders report to w in a single format.
func writeReport(w io.Writer, report *domain.SimulationReport, format string) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s report: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// progressPrinter redraws a single status line on stderr. A nil printer is silent.
type progressPrinter struct {
	w       io.Writer
	printed bool
}

func (p *progressPrinter) observer() simulation.Observer {
	if p == nil {
		return simulation.Observer{}
	}
	return simulation.Observer{
		OnProgress: func(stats domain.AggregateStats, _ float64) {
			fmt.Fprintf(p.w, "\r%s", output.FormatProgress(stats))
			p.printed = true
		},
		OnFailure: func(err error) {
			fmt.Fprintf(p.w, "\nworker failure: %v", err)
			p.printed = true
		},
	}
}

// finish terminates the status line. It must only be called after Wait.
func (p *progressPrinter) finish() {
	if p != nil && p.printed {
		fmt.Fprintln(p.w)
	}
}

// lockedWriter serializes writes from the logger and the progress printer,
// which run on different goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
