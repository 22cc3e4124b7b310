package main

import (
	"github.com/spf13/cobra"

	"github.com/aixadm/nimres/internal/adapter"
	"github.com/aixadm/nimres/internal/executor"
	"github.com/aixadm/nimres/internal/logger"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nimres",
		Short:         "nimres manages AIX NIM resource objects through lsnim and nim",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Preview commands without executing them")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newCreateCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newAdapter(flags *rootFlags) (*adapter.Adapter, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, err
	}

	shell, err := executor.NewShell()
	if err != nil {
		return nil, err
	}

	return adapter.New(shell, log), nil
}
