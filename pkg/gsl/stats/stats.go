// Package stats exposes the double-precision routines of gsl_statistics.
// Unlike the container packages there are no native handles: every function
// operates on a caller-owned []float64 with unit stride, and the data never
// outlives the call.
//
// The native routines assume at least one element and read memory
// unconditionally, so empty (and, for the sample statistics, too-short)
// inputs are rejected Go-side with EInval before the boundary is crossed.
package stats

import (
	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

func emptyErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EInval}
}

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_mean")
	}
	return backend.StatsMean(data), nil
}

// Variance returns the unbiased sample variance of data, normalized by
// n-1. It requires at least two elements.
func Variance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_variance")
	}
	return backend.StatsVariance(data), nil
}

// VarianceMean returns the sample variance of data relative to the given
// mean instead of the computed one.
func VarianceMean(data []float64, mean float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_variance_m")
	}
	return backend.StatsVarianceM(data, mean), nil
}

// SD returns the sample standard deviation, the square root of Variance.
func SD(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_sd")
	}
	return backend.StatsSD(data), nil
}

// SDMean returns the sample standard deviation relative to the given mean.
func SDMean(data []float64, mean float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_sd_m")
	}
	return backend.StatsSDM(data, mean), nil
}

// TSS returns the total sum of squares about the mean.
func TSS(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_tss")
	}
	return backend.StatsTSS(data), nil
}

// AbsDev returns the mean absolute deviation from the mean.
func AbsDev(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_absdev")
	}
	return backend.StatsAbsDev(data), nil
}

// Skew returns the sample skewness of data.
func Skew(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_skew")
	}
	return backend.StatsSkew(data), nil
}

// Kurtosis returns the excess kurtosis of data.
func Kurtosis(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_kurtosis")
	}
	return backend.StatsKurtosis(data), nil
}

// Lag1Autocorrelation returns the lag-1 autocorrelation of data.
func Lag1Autocorrelation(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, emptyErr("stats_lag1_autocorrelation")
	}
	return backend.StatsLag1Autocorrelation(data), nil
}

// Covariance returns the unbiased sample covariance of x and y, which must
// have equal length of at least two.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, &gsl.Error{Op: "stats_covariance", Code: gsl.EBadLen}
	}
	if len(x) < 2 {
		return 0, emptyErr("stats_covariance")
	}
	return backend.StatsCovariance(x, y), nil
}

// Correlation returns the Pearson correlation coefficient of x and y.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, &gsl.Error{Op: "stats_correlation", Code: gsl.EBadLen}
	}
	if len(x) < 2 {
		return 0, emptyErr("stats_correlation")
	}
	return backend.StatsCorrelation(x, y), nil
}

// Spearman returns the Spearman rank correlation coefficient of x and y.
// The scratch array the native routine needs is allocated here.
func Spearman(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, &gsl.Error{Op: "stats_spearman", Code: gsl.EBadLen}
	}
	if len(x) < 2 {
		return 0, emptyErr("stats_spearman")
	}
	work := make([]float64, 2*len(x))
	return backend.StatsSpearman(x, y, work), nil
}

// Max returns the largest element of data.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_max")
	}
	return backend.StatsMax(data), nil
}

// Min returns the smallest element of data.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_min")
	}
	return backend.StatsMin(data), nil
}

// MinMax returns the smallest and largest elements in a single pass.
func MinMax(data []float64) (min, max float64, err error) {
	if len(data) == 0 {
		return 0, 0, emptyErr("stats_minmax")
	}
	min, max = backend.StatsMinmax(data)
	return min, max, nil
}

// MaxIndex returns the index of the largest element. Ties resolve to the
// lowest index, matching gsl_stats_max_index.
func MaxIndex(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_max_index")
	}
	return backend.StatsMaxIndex(data), nil
}

// MinIndex returns the index of the smallest element.
func MinIndex(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, emptyErr("stats_min_index")
	}
	return backend.StatsMinIndex(data), nil
}

// MedianFromSortedData returns the median of data, which must already be
// sorted in ascending order. For even lengths the two middle values are
// averaged.
func MedianFromSortedData(sorted []float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, emptyErr("stats_median_from_sorted_data")
	}
	return backend.StatsMedianFromSortedData(sorted), nil
}

// QuantileFromSortedData returns the f-quantile of sorted data for f in
// [0, 1], interpolating between adjacent values.
func QuantileFromSortedData(sorted []float64, f float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, emptyErr("stats_quantile_from_sorted_data")
	}
	if f < 0 || f > 1 {
		return 0, &gsl.Error{Op: "stats_quantile_from_sorted_data", Code: gsl.EInval}
	}
	return backend.StatsQuantileFromSortedData(sorted, f), nil
}
