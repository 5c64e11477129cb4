package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/haormj/cpubench/logging"
	"github.com/haormj/cpubench/sched"
	"github.com/haormj/version"
	"github.com/spf13/cobra"
)

type options struct {
	tasks    int
	policies []string
	priority int
	sudo     bool
	out      string
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "schedbench [flags] -- <benchmark> [args...]",
		Short: "Run concurrent copies of a benchmark under each scheduling policy",
		Example: "  schedbench --tasks 4 -- ./matmul\n" +
			"  schedbench --policy cfs,fifo --sudo=false -- ./primes --clock wall",
		Args:          cobra.MinimumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			policies, err := sched.Policies(opts.policies, opts.priority, opts.sudo)
			if err != nil {
				return err
			}

			runner := &sched.Runner{
				Command:  args,
				Tasks:    opts.tasks,
				Policies: policies,
				Logger:   logger,
			}

			records, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("schedbench: failed to create %s: %w", opts.out, err)
			}

			if err := sched.WriteCSV(f, records); err != nil {
				f.Close()
				return err
			}

			if err := f.Close(); err != nil {
				return fmt.Errorf("schedbench: failed to close %s: %w", opts.out, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", opts.out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.tasks, "tasks", 4, "concurrent copies per policy")
	flags.StringSliceVar(&opts.policies, "policy", sched.DefaultPolicies, "policies to run, in order: cfs, rr, fifo")
	flags.IntVar(&opts.priority, "priority", 10, "real-time priority passed to chrt")
	flags.BoolVar(&opts.sudo, "sudo", true, "run chrt through sudo")
	flags.StringVar(&opts.out, "out", "task_monitor_results.csv", "csv file to write")
	flags.StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "log level written to stderr")

	cmd.SetVersionTemplate(strings.TrimRight(version.FullVersion(), "\n") + "\n")

	return cmd
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("schedbench failed", "error", err)
		os.Exit(1)
	}
}
