// Package main provides the CLI entry point for microbench, a runner
// for a fixed suite of isolated micro-benchmark binaries.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/microbench/bench"
	"github.com/weiihann/microbench/harness"
	"github.com/weiihann/microbench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "microbench",
		Short: "Isolated micro-benchmark suite runner",
		Long: `Microbench builds and runs a fixed suite of standalone benchmark
binaries (recursive Fibonacci, prime sieve, dense matrix multiply), parses
their standardized output, and compares the measured timings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		benchmarks []string
		binDir     string
		moduleDir  string
		repeat     int
		timeout    time.Duration
		skipBuild  bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and run the benchmark binaries",
		Long: `Build the selected benchmark binaries, execute each one sequentially
(optionally repeated), and print a comparison report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.Context(), logger, runConfig{
				benchmarks: benchmarks,
				binDir:     binDir,
				moduleDir:  moduleDir,
				repeat:     repeat,
				timeout:    timeout,
				skipBuild:  skipBuild,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&benchmarks, "benchmarks", nil,
		"Benchmarks to run (default: all)")
	flags.StringVar(&binDir, "bin-dir", "bin",
		"Directory for benchmark binaries")
	flags.StringVar(&moduleDir, "module-dir", ".",
		"Module root containing the cmd tree")
	flags.IntVar(&repeat, "repeat", 1,
		"Number of runs per benchmark")
	flags.DurationVar(&timeout, "timeout", 10*time.Minute,
		"Per-run timeout")
	flags.BoolVar(&skipBuild, "skip-build", false,
		"Skip building benchmark binaries")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of table")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available benchmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range bench.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

type runConfig struct {
	benchmarks []string
	binDir     string
	moduleDir  string
	repeat     int
	timeout    time.Duration
	skipBuild  bool
	outputJSON bool
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	names := cfg.benchmarks
	if len(names) == 0 {
		names = bench.Names()
	}

	for _, name := range names {
		if _, ok := bench.Lookup(name); !ok {
			return fmt.Errorf("unknown benchmark %q", name)
		}
	}

	if cfg.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", cfg.repeat)
	}

	logger.InfoContext(ctx, "starting benchmark suite",
		slog.Any("benchmarks", names),
		slog.Int("repeat", cfg.repeat),
	)

	moduleDir, err := filepath.Abs(cfg.moduleDir)
	if err != nil {
		return fmt.Errorf("resolve module dir: %w", err)
	}

	if err = os.MkdirAll(cfg.binDir, 0o755); err != nil {
		return fmt.Errorf("create bin dir: %w", err)
	}

	// Step 1: Build benchmark binaries (unless --skip-build).
	binaries := make(map[string]string, len(names))

	for _, name := range names {
		binPath := harness.ResolveBinary(cfg.binDir, name)

		if !cfg.skipBuild {
			binPath, err = harness.Build(
				ctx, logger, moduleDir, cfg.binDir, name,
			)
			if err != nil {
				return fmt.Errorf("build %s: %w", name, err)
			}
		}

		binaries[name] = binPath
	}

	// Step 2: Run each benchmark sequentially.
	results := make([]harness.Result, 0, len(names)*cfg.repeat)

	for _, name := range names {
		runner := harness.NewRunner(name, binaries[name], logger)

		for i := 0; i < cfg.repeat; i++ {
			result, runErr := runner.Run(ctx, harness.RunConfig{
				Timeout: cfg.timeout,
			})
			if runErr != nil {
				return fmt.Errorf("run %s: %w", name, runErr)
			}

			results = append(results, *result)
		}
	}

	// Step 3: Generate report.
	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark suite complete")

	return nil
}
