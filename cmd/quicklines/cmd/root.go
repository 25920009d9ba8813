package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quicklines/internal/config"
	"quicklines/internal/core"
	"quicklines/internal/logging"
)

// version is overridden at build time with -ldflags "-X quicklines/cmd/quicklines/cmd.version=...".
var version = "dev"

// newRootCmd builds the base command, which samples lines to stdout.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quicklines FILE",
		Short: "Sample random lines from a large file without reading all of it",
		Long: `quicklines memory-maps FILE and probes random byte offsets, snapping each
probe forward to the next line start. Only the probed lines are ever read, so
sampling a handful of lines from a file of many gigabytes is instant.

Lines are distinct unless --replacement is given. Probing is uniform over bytes,
so lines following long lines are favored; use --exact for sampling that is
uniform over lines at the cost of one pass over the file.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSample,
	}
	config.AddFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newTUICmd())
	return rootCmd
}

// setup resolves the configuration and the logger shared by all commands.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner := core.NewRunner(core.WithLogger(log))
	if _, err := runner.Run(cmd.Context(), args[0], cfg, cmd.OutOrStdout()); err != nil {
		log.Debug("run failed", zap.String("path", args[0]), zap.Error(err))
		return err
	}
	return nil
}

// Execute runs the command line and exits non-zero on failure. Interrupts
// cancel the run in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "quicklines:", err)
		os.Exit(1)
	}
}
