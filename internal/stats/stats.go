// Package stats computes distribution statistics over assessed values.
//
// All functions are pure: inputs are never reordered or retained. Integer
// results use 64-bit arithmetic with truncating division, so the mean and the
// even-count median are whole currency units.
package stats

import (
	"errors"
	"slices"
)

// ErrNoValues is returned when a statistic is requested over zero values.
var ErrNoValues = errors.New("no values")

// Summary bundles the statistics shown for a group of properties.
type Summary struct {
	Count  int   `json:"count" yaml:"count"`
	Min    int64 `json:"min" yaml:"min"`
	Max    int64 `json:"max" yaml:"max"`
	Range  int64 `json:"range" yaml:"range"`
	Mean   int64 `json:"mean" yaml:"mean"`
	Median int64 `json:"median" yaml:"median"`
}

// Min returns the smallest value.
func Min(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrNoValues
	}
	return slices.Min(vals), nil
}

// Max returns the largest value.
func Max(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrNoValues
	}
	return slices.Max(vals), nil
}

// Range returns Max - Min.
func Range(vals []int64) (int64, error) {
	lo, err := Min(vals)
	if err != nil {
		return 0, err
	}
	hi, _ := Max(vals)
	return hi - lo, nil
}

// Mean returns the sum divided by the count, truncated.
func Mean(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrNoValues
	}
	var sum int64
	for _, v := range vals {
		sum += v
	}
	return sum / int64(len(vals)), nil
}

// Median sorts a copy of vals. For an even count it returns the truncated
// average of the two central values.
func Median(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrNoValues
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return medianSorted(sorted), nil
}

func medianSorted(sorted []int64) int64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Summarize computes every statistic with a single sort.
func Summarize(vals []int64) (Summary, error) {
	if len(vals) == 0 {
		return Summary{}, ErrNoValues
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	var sum int64
	for _, v := range sorted {
		sum += v
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	return Summary{
		Count:  len(sorted),
		Min:    lo,
		Max:    hi,
		Range:  hi - lo,
		Mean:   sum / int64(len(sorted)),
		Median: medianSorted(sorted),
	}, nil
}
