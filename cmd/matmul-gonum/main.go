// Command matmul-gonum is the library-accelerated counterpart of
// matmul: same fixed inputs, product computed through gonum. Run both
// to compare the explicit triple loop against an optimized backend.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/microbench/bench"
)

func main() {
	if err := bench.RunStandalone(os.Stdout, "matmul-gonum"); err != nil {
		fmt.Fprintln(os.Stderr, "matmul-gonum:", err)
		os.Exit(1)
	}
}
