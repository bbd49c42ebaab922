package stats

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

// Samples long enough that every moment estimator is well defined.
var sample = []float64{
	17.2, 18.1, 16.5, 18.3, 12.6, 14.1, 19.5, 13.4, 16.8, 17.9,
	12.3, 15.6, 14.4, 18.7, 16.2, 13.9, 17.1, 15.0, 18.0, 14.7,
}

func TestEmptyInputRejectedBeforeBoundary(t *testing.T) {
	// These must fail identically with and without the native library,
	// since the check happens Go-side.
	if _, err := Mean(nil); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("Mean(nil) err = %v, want EInval", err)
	}
	if _, err := Variance([]float64{1}); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("Variance(1 elem) err = %v, want EInval", err)
	}
	if _, err := Covariance([]float64{1, 2}, []float64{1}); gsl.CodeOf(err) != gsl.EBadLen {
		t.Errorf("Covariance mismatched err = %v, want EBadLen", err)
	}
	if _, err := QuantileFromSortedData([]float64{1, 2}, 1.5); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("QuantileFromSortedData(f=1.5) err = %v, want EInval", err)
	}
}

// Cross-verification against gonum/stat, which implements the same
// estimators in pure Go.
func TestMomentsMatchGonum(t *testing.T) {
	gsltest.RequireNative(t)

	mean, err := Mean(sample)
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	gsltest.CloseRel(t, mean, stat.Mean(sample, nil), 1e-12, "Mean")

	variance, err := Variance(sample)
	if err != nil {
		t.Fatalf("Variance: %v", err)
	}
	gsltest.CloseRel(t, variance, stat.Variance(sample, nil), 1e-12, "Variance")

	sd, err := SD(sample)
	if err != nil {
		t.Fatalf("SD: %v", err)
	}
	gsltest.CloseRel(t, sd, stat.StdDev(sample, nil), 1e-12, "SD")
}

func TestCorrelationMatchesGonum(t *testing.T) {
	gsltest.RequireNative(t)

	x := sample[:10]
	y := sample[10:]

	cov, err := Covariance(x, y)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	gsltest.CloseRel(t, cov, stat.Covariance(x, y, nil), 1e-12, "Covariance")

	corr, err := Correlation(x, y)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	gsltest.CloseRel(t, corr, stat.Correlation(x, y, nil), 1e-12, "Correlation")
}

func TestSpearmanPerfectMonotone(t *testing.T) {
	gsltest.RequireNative(t)

	x := []float64{1, 2, 3, 4, 5}
	up := []float64{10, 20, 30, 40, 50}
	down := []float64{50, 40, 30, 20, 10}

	rho, err := Spearman(x, up)
	if err != nil {
		t.Fatalf("Spearman: %v", err)
	}
	gsltest.CloseAbs(t, rho, 1, 1e-14, "Spearman increasing")

	rho, err = Spearman(x, down)
	if err != nil {
		t.Fatalf("Spearman: %v", err)
	}
	gsltest.CloseAbs(t, rho, -1, 1e-14, "Spearman decreasing")
}

func TestExtremaAndIndices(t *testing.T) {
	gsltest.RequireNative(t)

	data := []float64{3, -2, 7, 7, -2, 4}

	min, max, err := MinMax(data)
	if err != nil {
		t.Fatalf("MinMax: %v", err)
	}
	if min != -2 || max != 7 {
		t.Errorf("MinMax = %g, %g; want -2, 7", min, max)
	}

	// Ties resolve to the lowest index.
	if i, _ := MaxIndex(data); i != 2 {
		t.Errorf("MaxIndex = %d, want 2", i)
	}
	if i, _ := MinIndex(data); i != 1 {
		t.Errorf("MinIndex = %d, want 1", i)
	}
}

func TestMedianAndQuantiles(t *testing.T) {
	gsltest.RequireNative(t)

	odd := []float64{1, 2, 3, 4, 5}
	even := []float64{1, 2, 3, 4}

	med, err := MedianFromSortedData(odd)
	if err != nil {
		t.Fatalf("MedianFromSortedData: %v", err)
	}
	gsltest.CloseAbs(t, med, 3, 0, "median odd")

	med, err = MedianFromSortedData(even)
	if err != nil {
		t.Fatalf("MedianFromSortedData: %v", err)
	}
	gsltest.CloseAbs(t, med, 2.5, 0, "median even")

	for _, tc := range []struct {
		f, want float64
	}{
		{0, 1},
		{0.5, 3},
		{1, 5},
	} {
		q, err := QuantileFromSortedData(odd, tc.f)
		if err != nil {
			t.Fatalf("QuantileFromSortedData(%g): %v", tc.f, err)
		}
		gsltest.CloseAbs(t, q, tc.want, 1e-14, "quantile")
	}
}

func TestTSSAndAbsDev(t *testing.T) {
	gsltest.RequireNative(t)

	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	tss, err := TSS(data)
	if err != nil {
		t.Fatalf("TSS: %v", err)
	}
	gsltest.CloseRel(t, tss, 32, 1e-13, "TSS")

	ad, err := AbsDev(data)
	if err != nil {
		t.Fatalf("AbsDev: %v", err)
	}
	gsltest.CloseRel(t, ad, 1.5, 1e-13, "AbsDev")
}

func TestLag1AutocorrelationConstantShift(t *testing.T) {
	gsltest.RequireNative(t)

	// A strictly alternating series has lag-1 autocorrelation close to -1.
	data := []float64{1, -1, 1, -1, 1, -1, 1, -1, 1, -1}
	r, err := Lag1Autocorrelation(data)
	if err != nil {
		t.Fatalf("Lag1Autocorrelation: %v", err)
	}
	if r > -0.8 {
		t.Errorf("Lag1Autocorrelation = %g, want near -1", r)
	}
}
