package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aixadm/nimres/internal/config"
	"github.com/aixadm/nimres/internal/model"
	nimerrors "github.com/aixadm/nimres/pkg/errors"
)

type createOptions struct {
	objectType string
	attributes []string
}

func newCreateCmd(flags *rootFlags) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Define a NIM resource object on the master server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.objectType, "type", "t", "", "NIM object type (lpp_source, spot, res_group, ...)")
	cmd.Flags().StringArrayVarP(&opts.attributes, "attr", "a", nil, "Resource attribute as key=value; repeat to add more, order is kept")
	cmd.MarkFlagRequired("type") //nolint:errcheck

	return cmd
}

func runCreate(cmd *cobra.Command, flags *rootFlags, opts *createOptions, name string) error {
	attrs, err := parseAttributeFlags(opts.attributes)
	if err != nil {
		return err
	}

	task := config.Task{
		ID:         "create",
		Action:     "create",
		Name:       name,
		ObjectType: opts.objectType,
		Attributes: attrs,
		Preview:    flags.dryRun,
	}
	if err := config.ValidateTask(task); err != nil {
		return err
	}

	a, err := newAdapter(flags)
	if err != nil {
		return err
	}

	outcome, err := a.Run(context.Background(), model.ActionCreate, task.Request())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
	return nil
}

// parseAttributeFlags converts repeated -a key=value flags into ordered
// attributes. Values keep everything after the first equals sign verbatim.
func parseAttributeFlags(raw []string) (config.Attributes, error) {
	attrs := make(config.Attributes, 0, len(raw))
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, nimerrors.NewValidationError("attr", fmt.Sprintf("expected key=value, got %q", pair), nil)
		}
		attrs = append(attrs, model.Attribute{Key: strings.TrimSpace(key), Value: value})
	}
	return attrs, nil
}
