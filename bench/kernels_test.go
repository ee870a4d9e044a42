package bench

import "testing"

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{FibN, FibExpected},
	}

	for _, tt := range tests {
		got := Fibonacci(tt.n)
		if got != tt.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSieveCount(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{10, 4},
		{100, 25},
		{1000, 168},
		{SieveN, SieveExpected},
	}

	for _, tt := range tests {
		got := SieveCount(tt.n)
		if got != tt.want {
			t.Errorf("SieveCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// execute runs a benchmark's phases in order and returns the checksum.
func execute(b Benchmark) int64 {
	if b.Setup != nil {
		b.Setup()
	}
	b.Kernel()

	return b.Result()
}

func TestMatmulDeterministic(t *testing.T) {
	first := execute(newMatmul())
	second := execute(newMatmul())

	if first != second {
		t.Errorf("checksums differ across runs: %d vs %d", first, second)
	}
}

func TestMatmulVariantsAgree(t *testing.T) {
	// Cells are integer-valued and every partial sum stays far below
	// 2^53, so both variants compute exact float64 arithmetic and the
	// truncated checksums must be identical.
	loop := execute(newMatmul())
	lib := execute(newMatmulGonum())

	if loop != lib {
		t.Errorf("triple-loop checksum %d != gonum checksum %d", loop, lib)
	}
}

func TestMatmulKernelIsMultiplyOnly(t *testing.T) {
	// Operand generation happens in Setup and the checksum reduction
	// in Result, so after Setup alone the product is still all zeros
	// and a single Kernel call accounts for the entire checksum.
	for _, variant := range []Benchmark{newMatmul(), newMatmulGonum()} {
		variant.Setup()

		if got := variant.Result(); got != 0 {
			t.Errorf("%s: checksum before kernel = %d, want 0",
				variant.Name, got)
		}

		variant.Kernel()

		if got := variant.Result(); got == 0 {
			t.Errorf("%s: checksum after kernel is zero", variant.Name)
		}
	}
}

func TestMatrixGenerators(t *testing.T) {
	a := matrixA(MatrixDim)
	b := matrixB(MatrixDim)

	if len(a) != MatrixDim*MatrixDim {
		t.Fatalf("len(a) = %d, want %d", len(a), MatrixDim*MatrixDim)
	}

	checks := []struct {
		idx   int
		wantA float64
		wantB float64
	}{
		{0, 0, 0},
		{1, 1, 2},
		{99, 99, 98},
		{100, 0, 0},
		{150, 50, 0},
	}

	for _, tt := range checks {
		if a[tt.idx] != tt.wantA {
			t.Errorf("a[%d] = %v, want %v", tt.idx, a[tt.idx], tt.wantA)
		}
		if b[tt.idx] != tt.wantB {
			t.Errorf("b[%d] = %v, want %v", tt.idx, b[tt.idx], tt.wantB)
		}
	}
}
