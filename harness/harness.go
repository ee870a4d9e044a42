package harness

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// RunConfig holds parameters for a single benchmark execution.
type RunConfig struct {
	Timeout time.Duration
}

// Runner launches and manages a single benchmark binary.
type Runner struct {
	Name       string
	BinaryPath string
	Logger     *slog.Logger
}

// NewRunner creates a Runner for the named benchmark.
func NewRunner(name, binaryPath string, logger *slog.Logger) *Runner {
	return &Runner{
		Name:       name,
		BinaryPath: binaryPath,
		Logger:     logger.With(slog.String("benchmark", name)),
	}
}

// Run executes the benchmark binary and returns its parsed output.
// The binary takes no arguments and reads no input; its whole workload
// is hard-coded.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.BinaryPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("starting benchmark",
		slog.String("binary", r.BinaryPath),
	)

	wallStart := time.Now()

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"benchmark %s failed: %w\nstderr: %s",
			r.Name, err, stderr.String(),
		)
	}

	wallElapsed := time.Since(wallStart)

	r.Logger.Info("benchmark finished",
		slog.Duration("wall_time", wallElapsed),
	)

	result, err := parseResult(r.Name, &stdout)
	if err != nil {
		return nil, fmt.Errorf(
			"parse %s output: %w\nstdout: %s",
			r.Name, err, stdout.String(),
		)
	}

	return result, nil
}

// parseResult reads the standardized benchmark output:
//
//	STARTUP_TIME_US: <integer>
//	COMPUTE_TIME_US: <integer>
//	RESULT: <integer>
//
// The two timing lines are required, RESULT is optional.
func parseResult(benchmark string, r io.Reader) (*Result, error) {
	var startupUs, computeUs, resultValue *int64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		// Only the three known keys are parsed; anything else on
		// stdout is skipped, numeric or not.
		var dst **int64

		switch key {
		case "STARTUP_TIME_US":
			dst = &startupUs
		case "COMPUTE_TIME_US":
			dst = &computeUs
		case "RESULT":
			dst = &resultValue
		default:
			continue
		}

		value, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}

		*dst = &value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	if startupUs == nil {
		return nil, fmt.Errorf("missing STARTUP_TIME_US field")
	}

	if computeUs == nil {
		return nil, fmt.Errorf("missing COMPUTE_TIME_US field")
	}

	return &Result{
		Benchmark: benchmark,
		StartupUs: *startupUs,
		ComputeUs: *computeUs,
		TotalUs:   *startupUs + *computeUs,
		Result:    resultValue,
	}, nil
}
