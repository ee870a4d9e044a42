package bench

import (
	"bytes"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		b, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)

			continue
		}
		if b.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, b.Name)
		}
	}

	if _, ok := Lookup("bogosort"); ok {
		t.Error("Lookup should fail for unknown benchmark")
	}
}

func TestMeasure(t *testing.T) {
	var result int64

	b := Benchmark{
		Name:     "answer",
		Kernel:   func() { result = 42 },
		Result:   func() int64 { return result },
		Expected: 42,
		Checked:  true,
	}

	m, err := Measure(b)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if m.Result != 42 {
		t.Errorf("result = %d, want 42", m.Result)
	}
	if m.StartupUs < 0 {
		t.Errorf("startup_us = %d, want >= 0", m.StartupUs)
	}
	if m.ComputeUs < 0 {
		t.Errorf("compute_us = %d, want >= 0", m.ComputeUs)
	}
}

func TestMeasureRunsSetupBeforeKernel(t *testing.T) {
	var operand, result int64

	b := Benchmark{
		Name:   "setup-order",
		Setup:  func() { operand = 21 },
		Kernel: func() { result = operand * 2 },
		Result: func() int64 { return result },
	}

	m, err := Measure(b)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if m.Result != 42 {
		t.Errorf("result = %d, want 42", m.Result)
	}
}

func TestMeasureIdempotent(t *testing.T) {
	b, ok := Lookup("primes")
	if !ok {
		t.Fatal("primes benchmark not registered")
	}

	first, err := Measure(b)
	if err != nil {
		t.Fatalf("first Measure failed: %v", err)
	}

	second, err := Measure(b)
	if err != nil {
		t.Fatalf("second Measure failed: %v", err)
	}

	if first.Result != second.Result {
		t.Errorf("results differ: %d vs %d", first.Result, second.Result)
	}
}

func TestValidate(t *testing.T) {
	checked := Benchmark{Name: "checked", Expected: 7, Checked: true}

	if err := checked.Validate(7); err != nil {
		t.Errorf("Validate(7) = %v, want nil", err)
	}
	if err := checked.Validate(8); err == nil {
		t.Error("expected error for mismatched result")
	}

	unchecked := Benchmark{Name: "unchecked"}
	if err := unchecked.Validate(-1); err != nil {
		t.Errorf("unchecked Validate = %v, want nil", err)
	}
}

func TestRunStandalone(t *testing.T) {
	var buf bytes.Buffer

	if err := RunStandalone(&buf, "primes"); err != nil {
		t.Fatalf("RunStandalone failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3:\n%s", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "STARTUP_TIME_US: ") {
		t.Errorf("line 1 = %q, want STARTUP_TIME_US prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "COMPUTE_TIME_US: ") {
		t.Errorf("line 2 = %q, want COMPUTE_TIME_US prefix", lines[1])
	}
	if lines[2] != "RESULT: 9592" {
		t.Errorf("line 3 = %q, want RESULT: 9592", lines[2])
	}
}

func TestRunStandaloneUnknown(t *testing.T) {
	var buf bytes.Buffer

	err := RunStandalone(&buf, "no-such-benchmark")
	if err == nil {
		t.Fatal("expected error for unknown benchmark")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWarmupNonZero(t *testing.T) {
	if warmup(warmupIterations) == 0 {
		t.Error("warmup accumulator is zero")
	}
}
