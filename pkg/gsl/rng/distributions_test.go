package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

const nDraws = 50000

// moments collects the sample mean and standard deviation of n draws.
func moments(n int, draw func() float64) (mean, sd float64) {
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := draw()
		sum += x
		sumSq += x * x
	}
	mean = sum / float64(n)
	sd = math.Sqrt(sumSq/float64(n) - mean*mean)
	return mean, sd
}

// Continuous samplers, checked against the distribution's analytic mean
// and standard deviation. Tolerances are generous multiples of the
// standard error so the fixed seed keeps them deterministic anyway.
func TestContinuousSamplerMoments(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(1905)

	cases := []struct {
		name     string
		draw     func() float64
		mean, sd float64
	}{
		{"Gaussian", func() float64 { return r.Gaussian(2) }, 0, 2},
		{"GaussianZiggurat", func() float64 { return r.GaussianZiggurat(2) }, 0, 2},
		{"GaussianRatioMethod", func() float64 { return r.GaussianRatioMethod(2) }, 0, 2},
		{"UGaussian", r.UGaussian, 0, 1},
		{"Exponential", func() float64 { return r.Exponential(3) }, 3, 3},
		{"Laplace", func() float64 { return r.Laplace(1) }, 0, math.Sqrt2},
		{"Rayleigh", func() float64 { return r.Rayleigh(1) }, math.Sqrt(math.Pi / 2), math.Sqrt(2 - math.Pi/2)},
		{"Gamma", func() float64 { return r.Gamma(4, 0.5) }, 2, 1},
		{"GammaKnuth", func() float64 { return r.GammaKnuth(4, 0.5) }, 2, 1},
		{"Flat", func() float64 { return r.Flat(2, 6) }, 4, 4 / math.Sqrt(12)},
		{"ChiSq", func() float64 { return r.ChiSq(5) }, 5, math.Sqrt(10)},
		{"TDist", func() float64 { return r.TDist(10) }, 0, math.Sqrt(10.0 / 8)},
		{"Beta", func() float64 { return r.Beta(2, 2) }, 0.5, math.Sqrt(1.0 / 20)},
		{"Logistic", func() float64 { return r.Logistic(1) }, 0, math.Pi / math.Sqrt(3)},
		{"Weibull", func() float64 { return r.Weibull(1, 2) }, math.Sqrt(math.Pi) / 2, math.Sqrt(1 - math.Pi/4)},
		{"Lognormal", func() float64 { return r.Lognormal(0, 0.25) },
			math.Exp(0.03125), math.Sqrt((math.Exp(0.0625) - 1) * math.Exp(0.0625))},
	}
	for _, tc := range cases {
		mean, sd := moments(nDraws, tc.draw)
		tol := 6 * tc.sd / math.Sqrt(nDraws)
		assert.InDeltaf(t, tc.mean, mean, tol, "%s mean", tc.name)
		assert.InDeltaf(t, tc.sd, sd, 10*tol, "%s sd", tc.name)
	}
}

func TestTailSamplersRespectBounds(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(2024)

	for i := 0; i < 2000; i++ {
		assert.GreaterOrEqual(t, r.GaussianTail(1.5, 1), 1.5, "GaussianTail")
		assert.GreaterOrEqual(t, r.UGaussianTail(2), 2.0, "UGaussianTail")
		assert.GreaterOrEqual(t, r.RayleighTail(1, 1), 1.0, "RayleighTail")
		assert.Greater(t, r.Pareto(3, 2), 2.0-1e-12, "Pareto")
		assert.Greater(t, r.FDist(4, 6), 0.0, "FDist")
		assert.Greater(t, r.Gumbel2(2, 1), 0.0, "Gumbel2")
		assert.False(t, math.IsNaN(r.Exppow(1, 1.5)), "Exppow NaN")
	}
}

func TestHeavyTailedSamplersFinite(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(3)

	for i := 0; i < 2000; i++ {
		require.False(t, math.IsNaN(r.Cauchy(1)), "Cauchy NaN")
		require.False(t, math.IsNaN(r.Landau()), "Landau NaN")
		require.False(t, math.IsNaN(r.Levy(1, 1.5)), "Levy NaN")
		require.False(t, math.IsNaN(r.LevySkew(1, 1.5, 0.5)), "LevySkew NaN")
		require.False(t, math.IsNaN(r.Gumbel1(1, 1)), "Gumbel1 NaN")
	}
}

func TestBivariateGaussianCorrelation(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(77)

	const rho = 0.8
	var sumXY, sumX2, sumY2 float64
	for i := 0; i < nDraws; i++ {
		x, y := r.BivariateGaussian(1, 1, rho)
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}
	got := sumXY / math.Sqrt(sumX2*sumY2)
	assert.InDelta(t, rho, got, 0.02, "sample correlation")
}

func TestDiscreteSamplers(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(4711)

	// Poisson: sample mean tracks mu.
	var sum float64
	for i := 0; i < nDraws; i++ {
		sum += float64(r.Poisson(3.5))
	}
	assert.InDelta(t, 3.5, sum/nDraws, 0.1, "Poisson mean")

	// Bernoulli: only 0 and 1, frequency tracks p.
	ones := 0
	for i := 0; i < nDraws; i++ {
		b := r.Bernoulli(0.3)
		require.LessOrEqual(t, b, uint(1), "Bernoulli range")
		ones += int(b)
	}
	assert.InDelta(t, 0.3, float64(ones)/nDraws, 0.02, "Bernoulli p")

	// Binomial stays within [0, n] with mean np.
	sum = 0
	for i := 0; i < nDraws; i++ {
		b := r.Binomial(0.25, 20)
		require.LessOrEqual(t, b, uint(20), "Binomial range")
		sum += float64(b)
	}
	assert.InDelta(t, 5.0, sum/nDraws, 0.1, "Binomial mean")

	// Geometric counts trials to first success, so it is at least 1.
	sum = 0
	for i := 0; i < nDraws; i++ {
		g := r.Geometric(0.25)
		require.GreaterOrEqual(t, g, uint(1), "Geometric range")
		sum += float64(g)
	}
	assert.InDelta(t, 4.0, sum/nDraws, 0.15, "Geometric mean")

	// Hypergeometric draws at most min(t, n1) successes.
	for i := 0; i < 2000; i++ {
		h := r.Hypergeometric(7, 13, 10)
		require.LessOrEqual(t, h, uint(7), "Hypergeometric range")
	}

	// Logarithmic variates start at 1.
	for i := 0; i < 2000; i++ {
		require.GreaterOrEqual(t, r.Logarithmic(0.5), uint(1), "Logarithmic range")
	}

	// NegativeBinomial and Pascal agree in distribution for integer n.
	var nbSum, paSum float64
	for i := 0; i < nDraws; i++ {
		nbSum += float64(r.NegativeBinomial(0.4, 6))
		paSum += float64(r.Pascal(0.4, 6))
	}
	want := 6 * (1 - 0.4) / 0.4
	assert.InDelta(t, want, nbSum/nDraws, 0.2, "NegativeBinomial mean")
	assert.InDelta(t, want, paSum/nDraws, 0.2, "Pascal mean")
}

func TestMultinomialConservesTotal(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(5)

	probs := []float64{0.2, 0.3, 0.5}
	for i := 0; i < 1000; i++ {
		counts := r.Multinomial(100, probs)
		require.Len(t, counts, 3)
		var total uint32
		for _, c := range counts {
			total += c
		}
		require.Equal(t, uint32(100), total, "Multinomial total")
	}
}

func TestDirichletSumsToOne(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(6)

	alpha := []float64{1, 2, 3, 4}
	for i := 0; i < 1000; i++ {
		theta := r.Dirichlet(alpha)
		require.Len(t, theta, 4)
		sum := 0.0
		for _, v := range theta {
			require.GreaterOrEqual(t, v, 0.0, "Dirichlet component")
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-12, "Dirichlet sum")
	}
}

func TestDirectionSamplersUnitNorm(t *testing.T) {
	gsltest.RequireNative(t)

	r := gen(t, MT19937())
	r.Seed(8)

	for i := 0; i < 2000; i++ {
		x, y := r.Dir2D()
		require.InDelta(t, 1.0, x*x+y*y, 1e-12, "Dir2D norm")

		x, y = r.Dir2DTrigMethod()
		require.InDelta(t, 1.0, x*x+y*y, 1e-12, "Dir2DTrigMethod norm")

		x, y, z := r.Dir3D()
		require.InDelta(t, 1.0, x*x+y*y+z*z, 1e-12, "Dir3D norm")

		v := r.DirND(5)
		require.Len(t, v, 5)
		norm := 0.0
		for _, c := range v {
			norm += c * c
		}
		require.InDelta(t, 1.0, norm, 1e-12, "DirND norm")
	}
}

func TestSamplersOnFreedGenerator(t *testing.T) {
	var r *Rng
	assert.Zero(t, r.Gaussian(1))
	assert.Zero(t, r.Poisson(3))
	assert.Nil(t, r.Dirichlet([]float64{1, 2}))
	assert.Nil(t, r.Multinomial(10, []float64{0.5, 0.5}))
	x, y := r.Dir2D()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
