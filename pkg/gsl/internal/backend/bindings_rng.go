//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_rng.h>
#include <gsl/gsl_randist.h>
*/
import "C"

import "unsafe"

// RngType is the native descriptor for a generator algorithm.
type RngType = *C.gsl_rng_type

// Rng is the native handle for a generator instance.
type Rng = *C.gsl_rng

// Builtin generator algorithms.

func RngTypeMT19937() RngType   { return C.gsl_rng_mt19937 }
func RngTypeRanlxS0() RngType   { return C.gsl_rng_ranlxs0 }
func RngTypeRanlxS1() RngType   { return C.gsl_rng_ranlxs1 }
func RngTypeRanlxS2() RngType   { return C.gsl_rng_ranlxs2 }
func RngTypeRanlxD1() RngType   { return C.gsl_rng_ranlxd1 }
func RngTypeRanlxD2() RngType   { return C.gsl_rng_ranlxd2 }
func RngTypeRanlux389() RngType { return C.gsl_rng_ranlux389 }
func RngTypeCMRG() RngType      { return C.gsl_rng_cmrg }
func RngTypeMRG() RngType       { return C.gsl_rng_mrg }
func RngTypeTaus() RngType      { return C.gsl_rng_taus }
func RngTypeTaus2() RngType     { return C.gsl_rng_taus2 }
func RngTypeGFSR4() RngType     { return C.gsl_rng_gfsr4 }

// RngTypes returns all generator algorithms compiled into the library, in
// the order gsl_rng_types_setup reports them.
func RngTypes() []RngType {
	tt := C.gsl_rng_types_setup()
	var out []RngType
	for p := tt; *p != nil; p = (**C.gsl_rng_type)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		out = append(out, *p)
	}
	return out
}

func RngTypeName(t RngType) string { return C.GoString(t.name) }

func RngTypeMin(t RngType) uint64 { return uint64(t.min) }

func RngTypeMax(t RngType) uint64 { return uint64(t.max) }

// RngEnvSetup reads GSL_RNG_TYPE and GSL_RNG_SEED and installs the result
// as the library default, returning the selected algorithm.
func RngEnvSetup() RngType { return C.gsl_rng_env_setup() }

// RngDefault returns the current default algorithm. Call RngEnvSetup to
// honor the environment first.
func RngDefault() RngType { return C.gsl_rng_default }

// RngDefaultSeed returns the seed selected by RngEnvSetup.
func RngDefaultSeed() uint64 { return uint64(C.gsl_rng_default_seed) }

// RngAlloc allocates a generator of the given algorithm, seeded with the
// library default seed.
func RngAlloc(t RngType) (Rng, error) {
	r := C.gsl_rng_alloc(t)
	if r == nil {
		return nil, &Error{Op: "rng_alloc", Code: ENoMem}
	}
	return r, nil
}

// RngFree releases a generator. Safe on nil.
func RngFree(r Rng) {
	if r == nil {
		return
	}
	C.gsl_rng_free(r)
}

func RngSet(r Rng, seed uint64) { C.gsl_rng_set(r, C.ulong(seed)) }

func RngGet(r Rng) uint64 { return uint64(C.gsl_rng_get(r)) }

func RngUniform(r Rng) float64 { return float64(C.gsl_rng_uniform(r)) }

func RngUniformPos(r Rng) float64 { return float64(C.gsl_rng_uniform_pos(r)) }

// RngUniformInt returns a draw in [0, n). The caller validates n against
// the generator range; out-of-range n makes the native call return 0.
func RngUniformInt(r Rng, n uint64) uint64 {
	return uint64(C.gsl_rng_uniform_int(r, C.ulong(n)))
}

func RngName(r Rng) string { return C.GoString(C.gsl_rng_name(r)) }

func RngMin(r Rng) uint64 { return uint64(C.gsl_rng_min(r)) }

func RngMax(r Rng) uint64 { return uint64(C.gsl_rng_max(r)) }

// RngState copies the opaque generator state out to a fresh byte slice.
func RngState(r Rng) []byte {
	size := C.gsl_rng_size(r)
	if size == 0 {
		return nil
	}
	return C.GoBytes(C.gsl_rng_state(r), C.int(size))
}

// RngMemcpy copies the state of src into dst. Both generators must use the
// same algorithm (EInval otherwise).
func RngMemcpy(dst, src Rng) error {
	return statusErr("rng_memcpy", int(C.gsl_rng_memcpy(dst, src)))
}

// RngClone allocates an exact copy of the generator, state included.
func RngClone(r Rng) (Rng, error) {
	c := C.gsl_rng_clone(r)
	if c == nil {
		return nil, &Error{Op: "rng_clone", Code: ENoMem}
	}
	return c, nil
}

// Shuffling and sampling. The element size is passed explicitly so the
// same native call serves any slice layout.

// RanShuffleFloat64 randomly permutes data in place.
func RanShuffleFloat64(r Rng, data []float64) {
	if len(data) == 0 {
		return
	}
	C.gsl_ran_shuffle(r, unsafe.Pointer(&data[0]), C.size_t(len(data)), C.size_t(unsafe.Sizeof(data[0])))
}

// RanShuffleInt randomly permutes data in place.
func RanShuffleInt(r Rng, data []int) {
	if len(data) == 0 {
		return
	}
	C.gsl_ran_shuffle(r, unsafe.Pointer(&data[0]), C.size_t(len(data)), C.size_t(unsafe.Sizeof(data[0])))
}

// RanChooseFloat64 fills dst with len(dst) items chosen from src without
// replacement, preserving source order. The native library reports EInval
// when len(dst) exceeds len(src).
func RanChooseFloat64(r Rng, dst, src []float64) error {
	var d, s unsafe.Pointer
	if len(dst) > 0 {
		d = unsafe.Pointer(&dst[0])
	}
	if len(src) > 0 {
		s = unsafe.Pointer(&src[0])
	}
	size := C.size_t(unsafe.Sizeof(float64(0)))
	return statusErr("ran_choose", int(C.gsl_ran_choose(r, d, C.size_t(len(dst)), s, C.size_t(len(src)), size)))
}

// RanSampleFloat64 fills dst with len(dst) items sampled from src with
// replacement. It is a no-op when either slice is empty.
func RanSampleFloat64(r Rng, dst, src []float64) {
	if len(dst) == 0 || len(src) == 0 {
		return
	}
	C.gsl_ran_sample(r, unsafe.Pointer(&dst[0]), C.size_t(len(dst)), unsafe.Pointer(&src[0]), C.size_t(len(src)), C.size_t(unsafe.Sizeof(dst[0])))
}

// Continuous distribution samplers.

func RanGaussian(r Rng, sigma float64) float64 {
	return float64(C.gsl_ran_gaussian(r, C.double(sigma)))
}

func RanGaussianZiggurat(r Rng, sigma float64) float64 {
	return float64(C.gsl_ran_gaussian_ziggurat(r, C.double(sigma)))
}

func RanGaussianRatioMethod(r Rng, sigma float64) float64 {
	return float64(C.gsl_ran_gaussian_ratio_method(r, C.double(sigma)))
}

func RanUGaussian(r Rng) float64 { return float64(C.gsl_ran_ugaussian(r)) }

func RanGaussianTail(r Rng, a, sigma float64) float64 {
	return float64(C.gsl_ran_gaussian_tail(r, C.double(a), C.double(sigma)))
}

func RanUGaussianTail(r Rng, a float64) float64 {
	return float64(C.gsl_ran_ugaussian_tail(r, C.double(a)))
}

func RanBivariateGaussian(r Rng, sigmaX, sigmaY, rho float64) (x, y float64) {
	var cx, cy C.double
	C.gsl_ran_bivariate_gaussian(r, C.double(sigmaX), C.double(sigmaY), C.double(rho), &cx, &cy)
	return float64(cx), float64(cy)
}

func RanExponential(r Rng, mu float64) float64 {
	return float64(C.gsl_ran_exponential(r, C.double(mu)))
}

func RanLaplace(r Rng, a float64) float64 {
	return float64(C.gsl_ran_laplace(r, C.double(a)))
}

func RanExppow(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_exppow(r, C.double(a), C.double(b)))
}

func RanCauchy(r Rng, a float64) float64 {
	return float64(C.gsl_ran_cauchy(r, C.double(a)))
}

func RanRayleigh(r Rng, sigma float64) float64 {
	return float64(C.gsl_ran_rayleigh(r, C.double(sigma)))
}

func RanRayleighTail(r Rng, a, sigma float64) float64 {
	return float64(C.gsl_ran_rayleigh_tail(r, C.double(a), C.double(sigma)))
}

func RanLandau(r Rng) float64 { return float64(C.gsl_ran_landau(r)) }

func RanLevy(r Rng, c, alpha float64) float64 {
	return float64(C.gsl_ran_levy(r, C.double(c), C.double(alpha)))
}

func RanLevySkew(r Rng, c, alpha, beta float64) float64 {
	return float64(C.gsl_ran_levy_skew(r, C.double(c), C.double(alpha), C.double(beta)))
}

func RanGamma(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_gamma(r, C.double(a), C.double(b)))
}

func RanGammaKnuth(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_gamma_knuth(r, C.double(a), C.double(b)))
}

func RanFlat(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_flat(r, C.double(a), C.double(b)))
}

func RanLognormal(r Rng, zeta, sigma float64) float64 {
	return float64(C.gsl_ran_lognormal(r, C.double(zeta), C.double(sigma)))
}

func RanChisq(r Rng, nu float64) float64 {
	return float64(C.gsl_ran_chisq(r, C.double(nu)))
}

func RanFdist(r Rng, nu1, nu2 float64) float64 {
	return float64(C.gsl_ran_fdist(r, C.double(nu1), C.double(nu2)))
}

func RanTdist(r Rng, nu float64) float64 {
	return float64(C.gsl_ran_tdist(r, C.double(nu)))
}

func RanBeta(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_beta(r, C.double(a), C.double(b)))
}

func RanLogistic(r Rng, a float64) float64 {
	return float64(C.gsl_ran_logistic(r, C.double(a)))
}

func RanPareto(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_pareto(r, C.double(a), C.double(b)))
}

func RanWeibull(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_weibull(r, C.double(a), C.double(b)))
}

func RanGumbel1(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_gumbel1(r, C.double(a), C.double(b)))
}

func RanGumbel2(r Rng, a, b float64) float64 {
	return float64(C.gsl_ran_gumbel2(r, C.double(a), C.double(b)))
}

// RanDirichlet samples theta from a Dirichlet distribution with
// concentration alpha. len(theta) must equal len(alpha); the caller checks.
func RanDirichlet(r Rng, alpha, theta []float64) {
	C.gsl_ran_dirichlet(r, C.size_t(len(alpha)), dptr(alpha), dptr(theta))
}

// Discrete distribution samplers.

func RanPoisson(r Rng, mu float64) uint {
	return uint(C.gsl_ran_poisson(r, C.double(mu)))
}

func RanBernoulli(r Rng, p float64) uint {
	return uint(C.gsl_ran_bernoulli(r, C.double(p)))
}

func RanBinomial(r Rng, p float64, n uint) uint {
	return uint(C.gsl_ran_binomial(r, C.double(p), C.uint(n)))
}

// RanMultinomial distributes nTrials draws over the categories weighted by
// probs, writing the counts into counts. len(counts) must equal
// len(probs); the caller checks.
func RanMultinomial(r Rng, nTrials uint, probs []float64, counts []uint32) {
	var cp *C.uint
	if len(counts) > 0 {
		cp = (*C.uint)(unsafe.Pointer(&counts[0]))
	}
	C.gsl_ran_multinomial(r, C.size_t(len(probs)), C.uint(nTrials), dptr(probs), cp)
}

func RanNegativeBinomial(r Rng, p, n float64) uint {
	return uint(C.gsl_ran_negative_binomial(r, C.double(p), C.double(n)))
}

func RanPascal(r Rng, p float64, n uint) uint {
	return uint(C.gsl_ran_pascal(r, C.double(p), C.uint(n)))
}

func RanGeometric(r Rng, p float64) uint {
	return uint(C.gsl_ran_geometric(r, C.double(p)))
}

func RanHypergeometric(r Rng, n1, n2, t uint) uint {
	return uint(C.gsl_ran_hypergeometric(r, C.uint(n1), C.uint(n2), C.uint(t)))
}

func RanLogarithmic(r Rng, p float64) uint {
	return uint(C.gsl_ran_logarithmic(r, C.double(p)))
}

// Random direction vectors.

func RanDir2D(r Rng) (x, y float64) {
	var cx, cy C.double
	C.gsl_ran_dir_2d(r, &cx, &cy)
	return float64(cx), float64(cy)
}

func RanDir2DTrigMethod(r Rng) (x, y float64) {
	var cx, cy C.double
	C.gsl_ran_dir_2d_trig_method(r, &cx, &cy)
	return float64(cx), float64(cy)
}

func RanDir3D(r Rng) (x, y, z float64) {
	var cx, cy, cz C.double
	C.gsl_ran_dir_3d(r, &cx, &cy, &cz)
	return float64(cx), float64(cy), float64(cz)
}

// RanDirND writes a random unit vector into x.
func RanDirND(r Rng, x []float64) {
	C.gsl_ran_dir_nd(r, C.size_t(len(x)), dptr(x))
}
