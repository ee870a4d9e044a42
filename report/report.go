// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/weiihann/microbench/analyzer"
	"github.com/weiihann/microbench/harness"
)

// group collects the repeated runs of one benchmark, in input order.
type group struct {
	name    string
	results []harness.Result
}

// summary holds the per-benchmark medians rendered into the table.
type summary struct {
	name      string
	runs      int
	startupUs float64
	computeUs float64
	totalUs   float64
	result    *int64
}

// Generate writes a markdown comparison table for the given results.
// Repeated runs of the same benchmark are collapsed to their medians.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	groups := groupResults(results)
	summaries := summarize(groups)
	fastestUs := findFastest(summaries)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	// Determinism check: a benchmark's RESULT must not vary between
	// runs of the same binary.
	if stable, unstable := checkDeterminism(groups); stable {
		fmt.Fprintln(w, "Results: **deterministic across runs**")
	} else {
		fmt.Fprintln(w, "Results: **NONDETERMINISTIC**")

		for _, g := range unstable {
			fmt.Fprintf(w, "  - %s:", g.name)

			for _, r := range g.results {
				if r.Result != nil {
					fmt.Fprintf(w, " %d", *r.Result)
				}
			}

			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)

	// Table header.
	fmt.Fprintln(w, "| Benchmark | Runs | Startup | Compute | Total "+
		"| Result | Slowdown |")
	fmt.Fprintln(w, "|-----------|------|---------|---------|-------"+
		"|--------|----------|")

	for _, s := range summaries {
		slowdown := 1.0
		if fastestUs > 0 && s.totalUs > 0 {
			slowdown = s.totalUs / fastestUs
		}

		resultCell := "-"
		if s.result != nil {
			resultCell = fmt.Sprintf("%d", *s.result)
		}

		fmt.Fprintf(w, "| %s | %d | %s | %s | %s | %s | %.2fx |\n",
			s.name,
			s.runs,
			formatUs(s.startupUs),
			formatUs(s.computeUs),
			formatUs(s.totalUs),
			resultCell,
			slowdown,
		)
	}

	writeSpread(w, groups)

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// writeSpread renders the compute-time aggregation section for
// benchmarks with enough repeats to say anything about spread.
func writeSpread(w io.Writer, groups []group) {
	var rows []string

	for _, g := range groups {
		if len(g.results) < 3 {
			continue
		}

		times := make([]float64, len(g.results))
		for i, r := range g.results {
			times[i] = float64(r.ComputeUs)
		}

		agg, err := analyzer.Aggregate(times)
		if err != nil {
			// Sub-microsecond kernels can report zero compute time,
			// which the mean-of-rates metrics reject.
			continue
		}

		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s | %d |",
			g.name,
			formatUs(agg.Median),
			formatUs(agg.GeometricMean),
			formatUs(agg.MAD),
			len(agg.Outliers),
		))
	}

	if len(rows) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "### Compute Time Spread")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Benchmark | Median | Geomean | MAD | Outliers |")
	fmt.Fprintln(w, "|-----------|--------|---------|-----|----------|")

	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
}

func groupResults(results []harness.Result) []group {
	var groups []group
	index := make(map[string]int)

	for _, r := range results {
		i, ok := index[r.Benchmark]
		if !ok {
			i = len(groups)
			index[r.Benchmark] = i
			groups = append(groups, group{name: r.Benchmark})
		}

		groups[i].results = append(groups[i].results, r)
	}

	return groups
}

func summarize(groups []group) []summary {
	summaries := make([]summary, 0, len(groups))

	for _, g := range groups {
		s := summary{
			name:   g.name,
			runs:   len(g.results),
			result: g.results[0].Result,
		}

		startups := make([]float64, len(g.results))
		computes := make([]float64, len(g.results))
		totals := make([]float64, len(g.results))

		for i, r := range g.results {
			startups[i] = float64(r.StartupUs)
			computes[i] = float64(r.ComputeUs)
			totals[i] = float64(r.TotalUs)
		}

		// Median of a non-empty slice cannot fail.
		s.startupUs, _ = analyzer.Median(startups)
		s.computeUs, _ = analyzer.Median(computes)
		s.totalUs, _ = analyzer.Median(totals)

		summaries = append(summaries, s)
	}

	return summaries
}

// checkDeterminism reports whether every benchmark produced the same
// RESULT on every run, and returns the groups that did not.
func checkDeterminism(groups []group) (bool, []group) {
	var unstable []group

	for _, g := range groups {
		first := g.results[0].Result
		if first == nil {
			continue
		}

		for _, r := range g.results[1:] {
			if r.Result == nil || *r.Result != *first {
				unstable = append(unstable, g)

				break
			}
		}
	}

	return len(unstable) == 0, unstable
}

func findFastest(summaries []summary) float64 {
	fastest := math.MaxFloat64
	for _, s := range summaries {
		if s.totalUs > 0 && s.totalUs < fastest {
			fastest = s.totalUs
		}
	}

	if fastest == math.MaxFloat64 {
		return 0
	}

	return fastest
}

func formatUs(us float64) string {
	switch {
	case us < 1000:
		return fmt.Sprintf("%dus", int64(us))
	case us < 1e6:
		return fmt.Sprintf("%.2fms", us/1000)
	default:
		return fmt.Sprintf("%.2fs", us/1e6)
	}
}
