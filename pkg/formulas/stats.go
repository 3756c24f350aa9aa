// Package formulas provides shared statistical and indicator primitives.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// PercentChanges converts prices to day-over-day percentage changes.
// The result has the same length as the input; the first element is NaN
// because no prior close exists.
//
// Changes[i] = (Price[i] - Price[i-1]) / Price[i-1] * 100
func PercentChanges(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i := range out {
		out[i] = math.NaN()
	}
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			out[i] = (prices[i] - prices[i-1]) / prices[i-1] * 100
		}
	}
	return out
}

// RollingStdDev computes the rolling sample standard deviation over the given
// window. Entries before the window fills, and windows containing NaN inputs,
// are NaN.
func RollingStdDev(data []float64, window int) []float64 {
	out := make([]float64, len(data))
	for i := range out {
		out[i] = math.NaN()
	}
	if window < 2 || len(data) < window {
		return out
	}

	buf := make([]float64, 0, window)
	for i := window - 1; i < len(data); i++ {
		buf = buf[:0]
		valid := true
		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(data[j]) {
				valid = false
				break
			}
			buf = append(buf, data[j])
		}
		if valid {
			out[i] = stat.StdDev(buf, nil)
		}
	}
	return out
}

// Finite reports whether v is a usable number (not NaN, not infinite).
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteValues returns only the finite entries of data.
func FiniteValues(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if Finite(v) {
			out = append(out, v)
		}
	}
	return out
}
