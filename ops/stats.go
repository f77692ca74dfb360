package ops

import (
	"errors"
	"math"
	"slices"
)

// errEmptyData is returned by the quartile helpers for empty input.
var errEmptyData = errors.New("ops: empty numeric data")

// InterquartileRange returns Q3 minus Q1 of the data, using
// linear-interpolation percentiles. An empty slice returns an error.
func InterquartileRange(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errEmptyData
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	return quantile(sorted, 0.75) - quantile(sorted, 0.25), nil
}

// ExtremeOutlierBounds returns the lower and upper bounds for extreme
// outliers using the interquartile-range method with scale coefficient k:
// (max(0, Q1-k*IQR), Q3+k*IQR). The lower bound is clamped at zero, so it
// is never negative. An empty slice returns an error.
func ExtremeOutlierBounds(data []float64, k float64) (lower, upper float64, err error) {
	if len(data) == 0 {
		return 0, 0, errEmptyData
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1

	lower = math.Max(0, q1-k*iqr)
	upper = q3 + k*iqr

	return lower, upper, nil
}

// quantile computes the q-th quantile (0 <= q <= 1) of sorted data using
// linear interpolation between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
