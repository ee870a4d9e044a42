package bench

// Fibonacci workload constants.
const (
	FibN        = 35
	FibExpected = 9227465
)

func newFibonacci() Benchmark {
	var result int64

	return Benchmark{
		Name:     "fibonacci",
		Kernel:   func() { result = Fibonacci(FibN) },
		Result:   func() int64 { return result },
		Expected: FibExpected,
		Checked:  true,
	}
}

// Fibonacci returns the nth Fibonacci number (0-indexed) by naive
// recursion. The exponential form is the point of the benchmark: it
// measures call and stack-frame overhead. Do not memoize or rewrite
// iteratively.
func Fibonacci(n int) int64 {
	if n < 2 {
		return int64(n)
	}

	return Fibonacci(n-1) + Fibonacci(n-2)
}
