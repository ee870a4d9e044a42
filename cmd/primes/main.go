// Command primes counts primes below a fixed bound with the Sieve of
// Eratosthenes and prints the standardized three-line benchmark report.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/microbench/bench"
)

func main() {
	if err := bench.RunStandalone(os.Stdout, "primes"); err != nil {
		fmt.Fprintln(os.Stderr, "primes:", err)
		os.Exit(1)
	}
}
