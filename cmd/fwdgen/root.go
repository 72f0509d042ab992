package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bethropolis/fwdgen/internal/app"
	"github.com/bethropolis/fwdgen/internal/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fwdgen",
		Short: "Generate forwarding headers for C/C++ source trees",
		Long: `fwdgen scans the input directories for header files and writes, for each
one, a small header into the output directory that includes the original by
its relative path. Every file is stamped with the generation time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, a *app.App) error {
				_, err := a.Forward(ctx)
				return err
			})
		},
	}

	config.BindCommon(cmd.Flags())
	config.BindTraversal(cmd.Flags())
	config.BindForward(cmd.Flags())

	cmd.AddCommand(newAggregateCmd(), newSolinkCmd())
	return cmd
}

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aggregate",
		Short:         "Write one header including every discovered header",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, a *app.App) error {
				_, err := a.Aggregate(ctx)
				return err
			})
		},
	}
	config.BindCommon(cmd.Flags())
	config.BindTraversal(cmd.Flags())
	config.BindAggregate(cmd.Flags())
	return cmd
}

func newSolinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "solink",
		Short:         "Link libfoo.so to the versioned shared libraries in the working directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, a *app.App) error {
				_, err := a.Solink(ctx)
				return err
			})
		},
	}
	config.BindCommon(cmd.Flags())
	config.BindSolink(cmd.Flags())
	return cmd
}

// run loads the configuration for cmd and hands the resulting App to fn.
// Errors are logged before they are returned.
func run(cmd *cobra.Command, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
		return err
	}

	a := app.New(cfg, cmd.ErrOrStderr())
	if err := fn(cmd.Context(), a); err != nil {
		a.Logger().Error("%v", err)
		return err
	}
	return nil
}
