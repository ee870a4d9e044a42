package bench

import "gonum.org/v1/gonum/mat"

// MatrixDim is the side length of the square matmul inputs.
const MatrixDim = 128

// newMatmul is the triple-loop baseline. Operand generation and the
// output buffer belong to Setup, the checksum reduction to Result:
// the compute interval covers the multiplication alone.
func newMatmul() Benchmark {
	var a, b, c []float64

	return Benchmark{
		Name: "matmul",
		Setup: func() {
			a = matrixA(MatrixDim)
			b = matrixB(MatrixDim)
			c = make([]float64, MatrixDim*MatrixDim)
		},
		Kernel: func() { multiply(c, a, b, MatrixDim) },
		Result: func() int64 { return checksum(c) },
	}
}

// newMatmulGonum is the library-accelerated variant: same fixed
// inputs, product computed by gonum's BLAS-backed Dense.Mul. It exists
// to compare the explicit triple loop against an optimized backend and
// stays a separately-named benchmark, never the baseline. With
// integer-valued cells every intermediate is exact in float64, so the
// checksum matches the baseline's regardless of accumulation order.
func newMatmulGonum() Benchmark {
	var a, b, c *mat.Dense

	return Benchmark{
		Name: "matmul-gonum",
		Setup: func() {
			a = mat.NewDense(MatrixDim, MatrixDim, matrixA(MatrixDim))
			b = mat.NewDense(MatrixDim, MatrixDim, matrixB(MatrixDim))
			c = mat.NewDense(MatrixDim, MatrixDim, nil)
		},
		Kernel: func() { c.Mul(a, b) },
		Result: func() int64 { return int64(mat.Sum(c)) },
	}
}

// multiply computes dst = a x b for square dim matrices in flat
// row-major layout. The i,k,j order walks both operands row-major,
// which keeps the inner loop cache-friendly without reaching for a
// vectorized library; that contrast is what the gonum variant is for.
func multiply(dst, a, b []float64, dim int) {
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			aik := a[i*dim+k]
			for j := 0; j < dim; j++ {
				dst[i*dim+j] += aik * b[k*dim+j]
			}
		}
	}
}

// checksum returns the truncated sum of all cells.
func checksum(values []float64) int64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return int64(sum)
}

// matrixA generates the fixed left operand: cell i (row-major) holds
// i mod 100.
func matrixA(dim int) []float64 {
	m := make([]float64, dim*dim)
	for i := range m {
		m[i] = float64(i % 100)
	}

	return m
}

// matrixB generates the fixed right operand: cell i holds (2*i) mod 100.
func matrixB(dim int) []float64 {
	m := make([]float64, dim*dim)
	for i := range m {
		m[i] = float64((2 * i) % 100)
	}

	return m
}
