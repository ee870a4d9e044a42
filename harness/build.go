package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveBinary returns the expected binary path for a benchmark
// given the output directory.
func ResolveBinary(binDir, benchmark string) string {
	return filepath.Join(binDir, benchmark)
}

// Build compiles the benchmark binary from the module's cmd tree into
// binDir and returns the binary path.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	moduleDir, binDir, benchmark string,
) (string, error) {
	binPath, err := filepath.Abs(ResolveBinary(binDir, benchmark))
	if err != nil {
		return "", fmt.Errorf("resolve binary path: %w", err)
	}

	logger.InfoContext(ctx, "building benchmark",
		slog.String("benchmark", benchmark),
		slog.String("binary", binPath),
	)

	cmd := exec.CommandContext(
		ctx, "go", "build", "-o", binPath, "./cmd/"+benchmark,
	)
	cmd.Dir = moduleDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s: %w", benchmark, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s: binary not found at %s", benchmark, binPath,
		)
	}

	return binPath, nil
}
