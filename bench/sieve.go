package bench

// Prime sieve workload constants.
const (
	SieveN        = 100000
	SieveExpected = 9592
)

func newPrimes() Benchmark {
	var result int64

	return Benchmark{
		Name:     "primes",
		Kernel:   func() { result = SieveCount(SieveN) },
		Result:   func() int64 { return result },
		Expected: SieveExpected,
		Checked:  true,
	}
}

// SieveCount returns the number of primes <= n using the Sieve of
// Eratosthenes. The bound and loop variables are int64 so p*p cannot
// overflow if the kernel is reused at 1e9 scale.
func SieveCount(n int64) int64 {
	if n < 2 {
		return 0
	}

	composite := make([]bool, n+1)

	for p := int64(2); p*p <= n; p++ {
		if composite[p] {
			continue
		}

		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}

	var count int64
	for i := int64(2); i <= n; i++ {
		if !composite[i] {
			count++
		}
	}

	return count
}
