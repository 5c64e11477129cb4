package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/haormj/cpubench/clock"
	"github.com/haormj/cpubench/logging"
	"github.com/haormj/cpubench/prime"
	"github.com/haormj/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var clockName, logLevel string

	cmd := &cobra.Command{
		Use:           "primes",
		Short:         "Time a trial-division prime count over [90000000000, 90000100000]",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			clk, err := clock.New(clockName)
			if err != nil {
				return err
			}

			bench := &prime.Benchmark{
				Start:  prime.RangeStart,
				End:    prime.RangeEnd,
				Clock:  clk,
				Logger: logger,
			}

			res, err := bench.Run(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.String())
			return err
		},
	}

	cmd.Flags().StringVar(&clockName, "clock", "cpu", "timing source: cpu or wall")
	cmd.Flags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level written to stderr")

	cmd.SetVersionTemplate(strings.TrimRight(version.FullVersion(), "\n") + "\n")

	return cmd
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("primes failed", "error", err)
		os.Exit(1)
	}
}
