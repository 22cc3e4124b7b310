package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aixadm/nimres/internal/adapter"
	"github.com/aixadm/nimres/internal/config"
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <tasks.yaml>",
		Short: "Run a NIM resource task file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, flags, args[0])
		},
	}

	return cmd
}

func runApply(cmd *cobra.Command, flags *rootFlags, path string) error {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return err
	}

	if flags.dryRun {
		cfg.Settings.DryRun = true
	}
	if flags.verbose {
		cfg.Settings.Verbose = true
	}

	a, err := newApplyAdapter(flags, cfg)
	if err != nil {
		return err
	}

	results, runErr := a.RunConfig(context.Background(), cfg)
	for _, res := range results {
		printTaskResult(cmd, res)
	}

	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d task(s) completed\n", len(results))
	return nil
}

func newApplyAdapter(flags *rootFlags, cfg *config.Config) (*adapter.Adapter, error) {
	effective := *flags
	if cfg.Settings.Verbose {
		effective.verbose = true
	}
	return newAdapter(&effective)
}

func printTaskResult(cmd *cobra.Command, res adapter.TaskResult) {
	marker := " ok "
	switch {
	case res.Outcome.Fatal():
		marker = "fail"
	case res.Outcome.Changed:
		marker = "chng"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", marker, res.TaskID, res.Outcome.Message)
}
