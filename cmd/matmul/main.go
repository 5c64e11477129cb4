package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/haormj/cpubench/accelerated/cpu"
	"github.com/haormj/cpubench/accelerated/gonum"
	"github.com/haormj/cpubench/clock"
	"github.com/haormj/cpubench/logging"
	"github.com/haormj/cpubench/matrix"
	"github.com/haormj/version"
	"github.com/spf13/cobra"
)

type options struct {
	seed     uint64
	verify   bool
	clock    string
	logLevel string
}

func newRootCommand(alloc matrix.Allocator) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "matmul",
		Short:         "Time a naive 500x500 int32 matrix product",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			clk, err := clock.New(opts.clock)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(opts.seed, 0))
			}

			bench := &matrix.Benchmark{
				Size:    matrix.Size,
				Backend: &cpu.CPU{},
				Alloc:   alloc,
				Rand:    rng,
				Clock:   clk,
				Logger:  logger,
			}
			if opts.verify {
				bench.Verifier = gonum.New()
			}

			res, err := bench.Run(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.String())
			return err
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.seed, "seed", 0, "seed the input fill for a reproducible run")
	flags.BoolVar(&opts.verify, "verify", false, "check the product against gonum after timing")
	flags.StringVar(&opts.clock, "clock", "cpu", "timing source: cpu or wall")
	flags.StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "log level written to stderr")

	cmd.SetVersionTemplate(strings.TrimRight(version.FullVersion(), "\n") + "\n")

	return cmd
}

// allocator backs the three benchmark matrices.
var allocator matrix.Allocator = matrix.HeapAllocator

func main() {
	if err := newRootCommand(allocator).ExecuteContext(context.Background()); err != nil {
		slog.Error("matmul failed", "error", err)
		os.Exit(1)
	}
}
