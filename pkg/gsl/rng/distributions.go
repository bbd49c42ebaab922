package rng

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Distribution samplers, one method per gsl_ran_ function. Each draws from
// the generator it is called on; a freed generator yields zero values.

func (r *Rng) sample1(f func(backend.Rng) float64) float64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := f(r.r)
	runtime.KeepAlive(r)
	return x
}

// Gaussian returns a Gaussian variate with mean zero and standard
// deviation sigma, using the Box-Muller method.
func (r *Rng) Gaussian(sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGaussian(h, sigma) })
}

// GaussianZiggurat returns a Gaussian variate using the Marsaglia-Tsang
// ziggurat method, the fastest of the Gaussian samplers.
func (r *Rng) GaussianZiggurat(sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGaussianZiggurat(h, sigma) })
}

// GaussianRatioMethod returns a Gaussian variate using the Kinderman-
// Monahan-Leva ratio method.
func (r *Rng) GaussianRatioMethod(sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGaussianRatioMethod(h, sigma) })
}

// UGaussian returns a unit Gaussian variate.
func (r *Rng) UGaussian() float64 {
	return r.sample1(backend.RanUGaussian)
}

// GaussianTail returns a Gaussian variate conditioned on being larger than
// the lower limit a.
func (r *Rng) GaussianTail(a, sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGaussianTail(h, a, sigma) })
}

// UGaussianTail returns a unit Gaussian tail variate above a.
func (r *Rng) UGaussianTail(a float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanUGaussianTail(h, a) })
}

// BivariateGaussian returns a correlated pair of Gaussian variates with
// the given standard deviations and correlation coefficient rho.
func (r *Rng) BivariateGaussian(sigmaX, sigmaY, rho float64) (x, y float64) {
	if r == nil || r.r == nil {
		return 0, 0
	}
	x, y = backend.RanBivariateGaussian(r.r, sigmaX, sigmaY, rho)
	runtime.KeepAlive(r)
	return x, y
}

// Exponential returns an exponential variate with mean mu.
func (r *Rng) Exponential(mu float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanExponential(h, mu) })
}

// Laplace returns a Laplace variate with width a.
func (r *Rng) Laplace(a float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanLaplace(h, a) })
}

// Exppow returns an exponential power variate with scale a and exponent b.
func (r *Rng) Exppow(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanExppow(h, a, b) })
}

// Cauchy returns a Cauchy variate with scale a.
func (r *Rng) Cauchy(a float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanCauchy(h, a) })
}

// Rayleigh returns a Rayleigh variate with scale sigma.
func (r *Rng) Rayleigh(sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanRayleigh(h, sigma) })
}

// RayleighTail returns a Rayleigh tail variate above the lower limit a.
func (r *Rng) RayleighTail(a, sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanRayleighTail(h, a, sigma) })
}

// Landau returns a variate from the Landau distribution.
func (r *Rng) Landau() float64 {
	return r.sample1(backend.RanLandau)
}

// Levy returns a variate from the symmetric Levy alpha-stable distribution
// with scale c. alpha must lie in (0, 2].
func (r *Rng) Levy(c, alpha float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanLevy(h, c, alpha) })
}

// LevySkew returns a variate from the skew Levy alpha-stable distribution
// with skewness beta in [-1, 1].
func (r *Rng) LevySkew(c, alpha, beta float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanLevySkew(h, c, alpha, beta) })
}

// Gamma returns a gamma variate with shape a and scale b, using the
// Marsaglia-Tsang method.
func (r *Rng) Gamma(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGamma(h, a, b) })
}

// GammaKnuth returns a gamma variate using the algorithms from Knuth
// volume 2.
func (r *Rng) GammaKnuth(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGammaKnuth(h, a, b) })
}

// Flat returns a variate uniformly distributed in [a, b).
func (r *Rng) Flat(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanFlat(h, a, b) })
}

// Lognormal returns a lognormal variate with parameters zeta and sigma.
func (r *Rng) Lognormal(zeta, sigma float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanLognormal(h, zeta, sigma) })
}

// ChiSq returns a chi-squared variate with nu degrees of freedom.
func (r *Rng) ChiSq(nu float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanChisq(h, nu) })
}

// FDist returns an F-distributed variate with nu1 and nu2 degrees of
// freedom.
func (r *Rng) FDist(nu1, nu2 float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanFdist(h, nu1, nu2) })
}

// TDist returns a t-distributed variate with nu degrees of freedom.
func (r *Rng) TDist(nu float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanTdist(h, nu) })
}

// Beta returns a beta variate with parameters a and b.
func (r *Rng) Beta(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanBeta(h, a, b) })
}

// Logistic returns a logistic variate with scale a.
func (r *Rng) Logistic(a float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanLogistic(h, a) })
}

// Pareto returns a Pareto variate with exponent a and scale b.
func (r *Rng) Pareto(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanPareto(h, a, b) })
}

// Weibull returns a Weibull variate with scale a and exponent b.
func (r *Rng) Weibull(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanWeibull(h, a, b) })
}

// Gumbel1 returns a Type-1 Gumbel variate.
func (r *Rng) Gumbel1(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGumbel1(h, a, b) })
}

// Gumbel2 returns a Type-2 Gumbel variate.
func (r *Rng) Gumbel2(a, b float64) float64 {
	return r.sample1(func(h backend.Rng) float64 { return backend.RanGumbel2(h, a, b) })
}

// Dirichlet returns a point from the Dirichlet distribution of order
// len(alpha). The returned components are in (0, 1) and sum to one. It
// returns nil on an empty alpha or a freed generator.
func (r *Rng) Dirichlet(alpha []float64) []float64 {
	if r == nil || r.r == nil || len(alpha) == 0 {
		return nil
	}
	theta := make([]float64, len(alpha))
	backend.RanDirichlet(r.r, alpha, theta)
	runtime.KeepAlive(r)
	return theta
}

// Poisson returns a Poisson variate with mean mu.
func (r *Rng) Poisson(mu float64) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanPoisson(r.r, mu)
	runtime.KeepAlive(r)
	return k
}

// Bernoulli returns 1 with probability p and 0 otherwise.
func (r *Rng) Bernoulli(p float64) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanBernoulli(r.r, p)
	runtime.KeepAlive(r)
	return k
}

// Binomial returns a binomial variate: the number of successes in n
// independent trials with probability p.
func (r *Rng) Binomial(p float64, n uint) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanBinomial(r.r, p, n)
	runtime.KeepAlive(r)
	return k
}

// Multinomial distributes n trials over len(probs) categories and returns
// the per-category counts. probs need not be normalized. It returns nil on
// an empty probs or a freed generator.
func (r *Rng) Multinomial(n uint, probs []float64) []uint32 {
	if r == nil || r.r == nil || len(probs) == 0 {
		return nil
	}
	counts := make([]uint32, len(probs))
	backend.RanMultinomial(r.r, n, probs, counts)
	runtime.KeepAlive(r)
	return counts
}

// NegativeBinomial returns the number of failures before n successes,
// where n may be fractional.
func (r *Rng) NegativeBinomial(p, n float64) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanNegativeBinomial(r.r, p, n)
	runtime.KeepAlive(r)
	return k
}

// Pascal returns a negative binomial variate with integer n.
func (r *Rng) Pascal(p float64, n uint) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanPascal(r.r, p, n)
	runtime.KeepAlive(r)
	return k
}

// Geometric returns the number of trials up to and including the first
// success, each with probability p.
func (r *Rng) Geometric(p float64) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanGeometric(r.r, p)
	runtime.KeepAlive(r)
	return k
}

// Hypergeometric returns a hypergeometric variate: the number of marked
// items in t draws without replacement from n1 marked and n2 unmarked.
func (r *Rng) Hypergeometric(n1, n2, t uint) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanHypergeometric(r.r, n1, n2, t)
	runtime.KeepAlive(r)
	return k
}

// Logarithmic returns a variate from the logarithmic distribution with
// parameter p.
func (r *Rng) Logarithmic(p float64) uint {
	if r == nil || r.r == nil {
		return 0
	}
	k := backend.RanLogarithmic(r.r, p)
	runtime.KeepAlive(r)
	return k
}

// Dir2D returns a random unit vector in two dimensions.
func (r *Rng) Dir2D() (x, y float64) {
	if r == nil || r.r == nil {
		return 0, 0
	}
	x, y = backend.RanDir2D(r.r)
	runtime.KeepAlive(r)
	return x, y
}

// Dir2DTrigMethod returns a random two-dimensional unit vector using the
// trigonometric method.
func (r *Rng) Dir2DTrigMethod() (x, y float64) {
	if r == nil || r.r == nil {
		return 0, 0
	}
	x, y = backend.RanDir2DTrigMethod(r.r)
	runtime.KeepAlive(r)
	return x, y
}

// Dir3D returns a random unit vector in three dimensions.
func (r *Rng) Dir3D() (x, y, z float64) {
	if r == nil || r.r == nil {
		return 0, 0, 0
	}
	x, y, z = backend.RanDir3D(r.r)
	runtime.KeepAlive(r)
	return x, y, z
}

// DirND returns a random unit vector in n dimensions, or nil for n <= 0 or
// a freed generator.
func (r *Rng) DirND(n int) []float64 {
	if r == nil || r.r == nil || n <= 0 {
		return nil
	}
	x := make([]float64, n)
	backend.RanDirND(r.r, x)
	runtime.KeepAlive(r)
	return x
}
