//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_statistics_double.h>
*/
import "C"

// Statistics routines operate on caller-owned slices with unit stride.
// Empty inputs are rejected Go-side in the public package before reaching
// these functions.

func StatsMean(data []float64) float64 {
	return float64(C.gsl_stats_mean(dptr(data), 1, C.size_t(len(data))))
}

func StatsVariance(data []float64) float64 {
	return float64(C.gsl_stats_variance(dptr(data), 1, C.size_t(len(data))))
}

func StatsVarianceM(data []float64, mean float64) float64 {
	return float64(C.gsl_stats_variance_m(dptr(data), 1, C.size_t(len(data)), C.double(mean)))
}

func StatsSD(data []float64) float64 {
	return float64(C.gsl_stats_sd(dptr(data), 1, C.size_t(len(data))))
}

func StatsSDM(data []float64, mean float64) float64 {
	return float64(C.gsl_stats_sd_m(dptr(data), 1, C.size_t(len(data)), C.double(mean)))
}

func StatsTSS(data []float64) float64 {
	return float64(C.gsl_stats_tss(dptr(data), 1, C.size_t(len(data))))
}

func StatsAbsDev(data []float64) float64 {
	return float64(C.gsl_stats_absdev(dptr(data), 1, C.size_t(len(data))))
}

func StatsSkew(data []float64) float64 {
	return float64(C.gsl_stats_skew(dptr(data), 1, C.size_t(len(data))))
}

func StatsKurtosis(data []float64) float64 {
	return float64(C.gsl_stats_kurtosis(dptr(data), 1, C.size_t(len(data))))
}

func StatsLag1Autocorrelation(data []float64) float64 {
	return float64(C.gsl_stats_lag1_autocorrelation(dptr(data), 1, C.size_t(len(data))))
}

func StatsCovariance(x, y []float64) float64 {
	return float64(C.gsl_stats_covariance(dptr(x), 1, dptr(y), 1, C.size_t(len(x))))
}

func StatsCorrelation(x, y []float64) float64 {
	return float64(C.gsl_stats_correlation(dptr(x), 1, dptr(y), 1, C.size_t(len(x))))
}

// StatsSpearman computes the Spearman rank correlation. work must have
// length 2*len(x); it is scratch space for the native routine.
func StatsSpearman(x, y, work []float64) float64 {
	return float64(C.gsl_stats_spearman(dptr(x), 1, dptr(y), 1, C.size_t(len(x)), dptr(work)))
}

func StatsMax(data []float64) float64 {
	return float64(C.gsl_stats_max(dptr(data), 1, C.size_t(len(data))))
}

func StatsMin(data []float64) float64 {
	return float64(C.gsl_stats_min(dptr(data), 1, C.size_t(len(data))))
}

func StatsMinmax(data []float64) (min, max float64) {
	var cmin, cmax C.double
	C.gsl_stats_minmax(&cmin, &cmax, dptr(data), 1, C.size_t(len(data)))
	return float64(cmin), float64(cmax)
}

func StatsMaxIndex(data []float64) int {
	return int(C.gsl_stats_max_index(dptr(data), 1, C.size_t(len(data))))
}

func StatsMinIndex(data []float64) int {
	return int(C.gsl_stats_min_index(dptr(data), 1, C.size_t(len(data))))
}

func StatsMedianFromSortedData(sorted []float64) float64 {
	return float64(C.gsl_stats_median_from_sorted_data(dptr(sorted), 1, C.size_t(len(sorted))))
}

func StatsQuantileFromSortedData(sorted []float64, f float64) float64 {
	return float64(C.gsl_stats_quantile_from_sorted_data(dptr(sorted), 1, C.size_t(len(sorted)), C.double(f)))
}
