package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aixadm/nimres/internal/config"
	"github.com/aixadm/nimres/internal/model"
)

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a NIM resource object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, flags, args[0])
		},
	}

	return cmd
}

func runRemove(cmd *cobra.Command, flags *rootFlags, name string) error {
	task := config.Task{ID: "remove", Action: "remove", Name: name, Preview: flags.dryRun}
	if err := config.ValidateTask(task); err != nil {
		return err
	}

	a, err := newAdapter(flags)
	if err != nil {
		return err
	}

	outcome, err := a.Run(context.Background(), model.ActionRemove, task.Request())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
	return nil
}
