// Command fibonacci measures naive recursive Fibonacci of a fixed
// input and prints the standardized three-line benchmark report.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/microbench/bench"
)

func main() {
	if err := bench.RunStandalone(os.Stdout, "fibonacci"); err != nil {
		fmt.Fprintln(os.Stderr, "fibonacci:", err)
		os.Exit(1)
	}
}
