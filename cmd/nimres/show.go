package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aixadm/nimres/internal/config"
	"github.com/aixadm/nimres/internal/model"
)

type showOptions struct {
	objectType string
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show NIM resource objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runShow(cmd, flags, opts, name)
		},
	}

	cmd.Flags().StringVarP(&opts.objectType, "type", "t", "", "Restrict listing to one NIM object type")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resource catalog as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, name string) error {
	task := config.Task{ID: "show", Action: "show", Name: name, ObjectType: opts.objectType, Preview: flags.dryRun}
	if err := config.ValidateTask(task); err != nil {
		return err
	}

	a, err := newAdapter(flags)
	if err != nil {
		return err
	}

	outcome, err := a.Run(context.Background(), model.ActionShow, task.Request())
	if err != nil {
		return err
	}

	if outcome.Catalog == nil {
		fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
		return nil
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(outcome.Catalog)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	renderCatalog(cmd.OutOrStdout(), outcome.Catalog, styled)
	return nil
}
