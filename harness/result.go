// Package harness manages execution of standalone benchmark binaries.
package harness

// Result holds the parsed output of one benchmark binary run.
//
// Result (the RESULT line) is optional in the wire format: startup-only
// benchmarks emit just the two timing lines.
type Result struct {
	Benchmark string `json:"benchmark"`
	StartupUs int64  `json:"startup_time_us"`
	ComputeUs int64  `json:"compute_time_us"`
	TotalUs   int64  `json:"total_time_us"`
	Result    *int64 `json:"result,omitempty"`
}
