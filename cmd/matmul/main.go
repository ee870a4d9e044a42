// Command matmul multiplies two fixed 128x128 matrices with an
// explicit triple loop and prints the standardized three-line
// benchmark report. The RESULT line is a checksum, not a fixed
// expected constant.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/microbench/bench"
)

func main() {
	if err := bench.RunStandalone(os.Stdout, "matmul"); err != nil {
		fmt.Fprintln(os.Stderr, "matmul:", err)
		os.Exit(1)
	}
}
