// Package analyzer aggregates repeated benchmark timings.
//
// Geometric mean is the traditional benchmark aggregate, as in the
// SPEC CPU suites: it keeps a single run from dominating. Arithmetic mean reflects
// total cost, harmonic mean averages rates. Outliers are detected with
// the median-absolute-deviation method, which tolerates non-normal
// timing distributions far better than a z-score.
package analyzer

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// madScale makes MAD consistent with the standard deviation for
// normally distributed data.
const madScale = 1.4826

// OutlierK is the default number of scaled MADs from the median beyond
// which a value counts as an outlier.
const OutlierK = 3.0

// Aggregation holds the computed metrics for one set of values.
type Aggregation struct {
	GeometricMean  float64 `json:"geometric_mean"`
	ArithmeticMean float64 `json:"arithmetic_mean"`
	HarmonicMean   float64 `json:"harmonic_mean"`
	Median         float64 `json:"median"`
	MAD            float64 `json:"mad"`
	Outliers       []int   `json:"outliers,omitempty"`
}

// Aggregate computes all metrics for the given values.
func Aggregate(values []float64) (Aggregation, error) {
	geo, err := GeometricMean(values)
	if err != nil {
		return Aggregation{}, err
	}

	arith, err := ArithmeticMean(values)
	if err != nil {
		return Aggregation{}, err
	}

	harm, err := HarmonicMean(values)
	if err != nil {
		return Aggregation{}, err
	}

	median, err := Median(values)
	if err != nil {
		return Aggregation{}, err
	}

	mad, err := MAD(values, median)
	if err != nil {
		return Aggregation{}, err
	}

	return Aggregation{
		GeometricMean:  geo,
		ArithmeticMean: arith,
		HarmonicMean:   harm,
		Median:         median,
		MAD:            mad,
		Outliers:       OutliersMAD(values, OutlierK),
	}, nil
}

// GeometricMean returns (prod xi)^(1/n). All values must be positive.
func GeometricMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("geometric mean of empty values")
	}

	for _, v := range values {
		if v <= 0 {
			return 0, fmt.Errorf(
				"geometric mean requires positive values, found %v", v,
			)
		}
	}

	// gonum computes in log space, so large products cannot overflow.
	return stat.GeometricMean(values, nil), nil
}

// ArithmeticMean returns (sum xi) / n.
func ArithmeticMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("arithmetic mean of empty values")
	}

	return stat.Mean(values, nil), nil
}

// HarmonicMean returns n / (sum 1/xi). Values must be non-zero.
func HarmonicMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("harmonic mean of empty values")
	}

	for _, v := range values {
		if v == 0 {
			return 0, fmt.Errorf("harmonic mean undefined for zero values")
		}
	}

	return stat.HarmonicMean(values, nil), nil
}

// Median returns the middle value, averaging the two central values
// for even-length input.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("median of empty values")
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}

	return sorted[mid], nil
}

// MAD returns the median absolute deviation from the given median.
func MAD(values []float64, median float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("MAD of empty values")
	}

	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - median)
	}

	return Median(deviations)
}

// OutliersMAD returns the indices of values further than k scaled MADs
// from the median. A zero MAD means all values are effectively
// identical, so nothing is flagged.
func OutliersMAD(values []float64, k float64) []int {
	if len(values) == 0 {
		return nil
	}

	median, err := Median(values)
	if err != nil {
		return nil
	}

	mad, err := MAD(values, median)
	if err != nil || mad == 0 {
		return nil
	}

	threshold := k * madScale * mad

	var outliers []int
	for i, v := range values {
		if math.Abs(v-median) > threshold {
			outliers = append(outliers, i)
		}
	}

	return outliers
}
