// Package bench defines the fixed micro-benchmark workloads and the
// timing harness that measures them. Each benchmark is a pure function
// of hard-coded inputs: same run, same result, every time.
package bench

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// warmupIterations sizes the fixed accumulation loop executed during
// the startup phase.
const warmupIterations = 100000

// Benchmark describes a single self-contained workload. Setup runs in
// the startup phase and builds the kernel's operands; Kernel is the
// only code inside the timed compute interval; Result extracts the
// final value after timing stops, so checksum reductions never count
// as compute.
type Benchmark struct {
	Name     string
	Setup    func()
	Kernel   func()
	Result   func() int64
	Expected int64
	// Checked benchmarks assert the result against Expected.
	// The matmul variants are checksum-only.
	Checked bool
}

// Measurement holds the timings and result of one benchmark execution.
// Durations are truncated to integer microseconds.
type Measurement struct {
	StartupUs int64
	ComputeUs int64
	Result    int64
}

// All returns the registered benchmarks in canonical order. Each call
// builds fresh instances, so a benchmark's captured state never leaks
// between runs.
func All() []Benchmark {
	return []Benchmark{
		newFibonacci(),
		newPrimes(),
		newMatmul(),
		newMatmulGonum(),
	}
}

// Lookup returns the benchmark with the given name.
func Lookup(name string) (Benchmark, bool) {
	for _, b := range All() {
		if b.Name == name {
			return b, true
		}
	}

	return Benchmark{}, false
}

// Names returns the names of all registered benchmarks.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))

	for _, b := range all {
		names = append(names, b.Name)
	}

	return names
}

// Measure runs the benchmark between monotonic timestamps. The startup
// phase executes a fixed warmup loop and the benchmark's Setup; the
// warmup accumulator is checked against an impossible value so the
// loop cannot be elided as dead code, and a zero accumulator
// invalidates the startup timing and is returned as an error. Only
// Kernel runs inside the compute interval.
func Measure(b Benchmark) (Measurement, error) {
	t0 := time.Now()

	acc := warmup(warmupIterations)

	if b.Setup != nil {
		b.Setup()
	}

	if acc == 0 {
		return Measurement{}, errors.New(
			"warmup accumulator is zero: startup phase was eliminated",
		)
	}

	t1 := time.Now()

	b.Kernel()

	t2 := time.Now()

	return Measurement{
		StartupUs: t1.Sub(t0).Microseconds(),
		ComputeUs: t2.Sub(t1).Microseconds(),
		Result:    b.Result(),
	}, nil
}

// Validate checks a computed result against the benchmark's expected
// constant. Unchecked benchmarks always pass.
func (b Benchmark) Validate(result int64) error {
	if !b.Checked {
		return nil
	}

	if result != b.Expected {
		return fmt.Errorf(
			"%s: result %d, want %d", b.Name, result, b.Expected,
		)
	}

	return nil
}

// RunStandalone measures the named benchmark and writes the three-line
// report to w:
//
//	STARTUP_TIME_US: <integer>
//	COMPUTE_TIME_US: <integer>
//	RESULT: <integer>
//
// Validation runs after the report is written, so the timings stay
// visible even when the result is wrong.
func RunStandalone(w io.Writer, name string) error {
	b, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown benchmark %q", name)
	}

	m, err := Measure(b)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "STARTUP_TIME_US: %d\n", m.StartupUs)
	fmt.Fprintf(w, "COMPUTE_TIME_US: %d\n", m.ComputeUs)
	fmt.Fprintf(w, "RESULT: %d\n", m.Result)

	return b.Validate(m.Result)
}

func warmup(iterations int) int64 {
	var acc int64
	for i := 0; i < iterations; i++ {
		acc += int64(i)
	}

	return acc
}
