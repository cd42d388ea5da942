package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpgo/session-bruteforce/internal/config"
	"github.com/rpgo/session-bruteforce/internal/output"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "Write an example simulation configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sessim.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			example := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(example, path); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"path": path})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}
