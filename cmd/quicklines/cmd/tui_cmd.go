package cmd

import (
	"github.com/spf13/cobra"

	"quicklines/internal/core"
	"quicklines/internal/tui"
)

// newTUICmd builds the interactive preview command.
func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui FILE",
		Short: "Browse sampled lines interactively and resample with r",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return tui.Run(cmd.Context(), args[0], cfg, core.NewRunner(core.WithLogger(log)))
		},
	}
}
