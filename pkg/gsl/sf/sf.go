package sf

import "github.com/ctfree/gogsl/pkg/gsl/internal/backend"

// Result holds a function value and an estimate of its absolute error,
// mirroring gsl_sf_result.
type Result struct {
	Val float64
	Err float64
}

// Mode selects the evaluation accuracy for the functions that accept one,
// trading precision for speed. It mirrors gsl_mode_t.
type Mode = backend.Mode

const (
	PrecDouble = backend.PrecDouble
	PrecSingle = backend.PrecSingle
	PrecApprox = backend.PrecApprox
)

func wrap(val, aerr float64, err error) (Result, error) {
	return Result{Val: val, Err: aerr}, err
}

// BesselJ0 computes the regular cylindrical Bessel function of zeroth
// order, J_0(x).
func BesselJ0(x float64) float64 {
	return backend.SfBesselJ0(x)
}

// BesselJ0E is BesselJ0 with a status code and error estimate.
func BesselJ0E(x float64) (Result, error) {
	return wrap(backend.SfBesselJ0E(x))
}

// BesselJ1 computes the regular cylindrical Bessel function of first
// order, J_1(x).
func BesselJ1(x float64) float64 {
	return backend.SfBesselJ1(x)
}

// BesselJ1E is BesselJ1 with a status code and error estimate.
func BesselJ1E(x float64) (Result, error) {
	return wrap(backend.SfBesselJ1E(x))
}

// BesselJn computes the regular cylindrical Bessel function of order n,
// J_n(x).
func BesselJn(n int, x float64) float64 {
	return backend.SfBesselJn(n, x)
}

// BesselJnE is BesselJn with a status code and error estimate.
func BesselJnE(n int, x float64) (Result, error) {
	return wrap(backend.SfBesselJnE(n, x))
}

// BesselY0 computes the irregular cylindrical Bessel function of zeroth
// order, Y_0(x), for x > 0.
func BesselY0(x float64) float64 {
	return backend.SfBesselY0(x)
}

// BesselY0E is BesselY0 with a status code and error estimate.
func BesselY0E(x float64) (Result, error) {
	return wrap(backend.SfBesselY0E(x))
}

// BesselY1 computes the irregular cylindrical Bessel function of first
// order, Y_1(x), for x > 0.
func BesselY1(x float64) float64 {
	return backend.SfBesselY1(x)
}

// BesselY1E is BesselY1 with a status code and error estimate.
func BesselY1E(x float64) (Result, error) {
	return wrap(backend.SfBesselY1E(x))
}

// BesselYn computes the irregular cylindrical Bessel function of order n,
// Y_n(x), for x > 0.
func BesselYn(n int, x float64) float64 {
	return backend.SfBesselYn(n, x)
}

// BesselYnE is BesselYn with a status code and error estimate.
func BesselYnE(n int, x float64) (Result, error) {
	return wrap(backend.SfBesselYnE(n, x))
}

// BesselI0 computes the regular modified cylindrical Bessel function of
// zeroth order, I_0(x).
func BesselI0(x float64) float64 {
	return backend.SfBesselI0(x)
}

// BesselI0E is BesselI0 with a status code and error estimate.
func BesselI0E(x float64) (Result, error) {
	return wrap(backend.SfBesselI0E(x))
}

// BesselI1 computes the regular modified cylindrical Bessel function of
// first order, I_1(x).
func BesselI1(x float64) float64 {
	return backend.SfBesselI1(x)
}

// BesselI1E is BesselI1 with a status code and error estimate.
func BesselI1E(x float64) (Result, error) {
	return wrap(backend.SfBesselI1E(x))
}

// BesselK0 computes the irregular modified cylindrical Bessel function of
// zeroth order, K_0(x), for x > 0.
func BesselK0(x float64) float64 {
	return backend.SfBesselK0(x)
}

// BesselK0E is BesselK0 with a status code and error estimate.
func BesselK0E(x float64) (Result, error) {
	return wrap(backend.SfBesselK0E(x))
}

// BesselK1 computes the irregular modified cylindrical Bessel function of
// first order, K_1(x), for x > 0.
func BesselK1(x float64) float64 {
	return backend.SfBesselK1(x)
}

// BesselK1E is BesselK1 with a status code and error estimate.
func BesselK1E(x float64) (Result, error) {
	return wrap(backend.SfBesselK1E(x))
}

// Gamma computes the gamma function, undefined at zero and negative
// integers.
func Gamma(x float64) float64 {
	return backend.SfGamma(x)
}

// GammaE is Gamma with a status code and error estimate.
func GammaE(x float64) (Result, error) {
	return wrap(backend.SfGammaE(x))
}

// LnGamma computes the logarithm of the absolute value of the gamma
// function.
func LnGamma(x float64) float64 {
	return backend.SfLnGamma(x)
}

// LnGammaE is LnGamma with a status code and error estimate.
func LnGammaE(x float64) (Result, error) {
	return wrap(backend.SfLnGammaE(x))
}

// GammaInv computes 1/Gamma(x), which is well defined everywhere,
// evaluating to zero at the poles of the gamma function.
func GammaInv(x float64) float64 {
	return backend.SfGammaInv(x)
}

// GammaIncP computes the normalized lower incomplete gamma function
// P(a,x) for a > 0, x >= 0.
func GammaIncP(a, x float64) float64 {
	return backend.SfGammaIncP(a, x)
}

// GammaIncPE is GammaIncP with a status code and error estimate.
func GammaIncPE(a, x float64) (Result, error) {
	return wrap(backend.SfGammaIncPE(a, x))
}

// GammaIncQ computes the normalized upper incomplete gamma function
// Q(a,x) = 1 - P(a,x) for a > 0, x >= 0.
func GammaIncQ(a, x float64) float64 {
	return backend.SfGammaIncQ(a, x)
}

// GammaIncQE is GammaIncQ with a status code and error estimate.
func GammaIncQE(a, x float64) (Result, error) {
	return wrap(backend.SfGammaIncQE(a, x))
}

// Beta computes the beta function B(a,b) for a, b not at negative
// integers.
func Beta(a, b float64) float64 {
	return backend.SfBeta(a, b)
}

// BetaE is Beta with a status code and error estimate.
func BetaE(a, b float64) (Result, error) {
	return wrap(backend.SfBetaE(a, b))
}

// LnBeta computes the logarithm of the beta function.
func LnBeta(a, b float64) float64 {
	return backend.SfLnBeta(a, b)
}

// LnBetaE is LnBeta with a status code and error estimate.
func LnBetaE(a, b float64) (Result, error) {
	return wrap(backend.SfLnBetaE(a, b))
}

// Fact computes n!, overflowing for n > 170.
func Fact(n uint) float64 {
	return backend.SfFact(n)
}

// FactE is Fact with a status code and error estimate.
func FactE(n uint) (Result, error) {
	return wrap(backend.SfFactE(n))
}

// LnFact computes ln(n!).
func LnFact(n uint) float64 {
	return backend.SfLnFact(n)
}

// LnFactE is LnFact with a status code and error estimate.
func LnFactE(n uint) (Result, error) {
	return wrap(backend.SfLnFactE(n))
}

// Choose computes the binomial coefficient n over m.
func Choose(n, m uint) float64 {
	return backend.SfChoose(n, m)
}

// ChooseE is Choose with a status code and error estimate.
func ChooseE(n, m uint) (Result, error) {
	return wrap(backend.SfChooseE(n, m))
}

// Erf computes the error function erf(x).
func Erf(x float64) float64 {
	return backend.SfErf(x)
}

// ErfE is Erf with a status code and error estimate.
func ErfE(x float64) (Result, error) {
	return wrap(backend.SfErfE(x))
}

// Erfc computes the complementary error function erfc(x) = 1 - erf(x).
func Erfc(x float64) float64 {
	return backend.SfErfc(x)
}

// ErfcE is Erfc with a status code and error estimate.
func ErfcE(x float64) (Result, error) {
	return wrap(backend.SfErfcE(x))
}

// LogErfc computes ln(erfc(x)), stable for large positive x.
func LogErfc(x float64) float64 {
	return backend.SfLogErfc(x)
}

// LogErfcE is LogErfc with a status code and error estimate.
func LogErfcE(x float64) (Result, error) {
	return wrap(backend.SfLogErfcE(x))
}

// ErfZ computes the Gaussian probability density Z(x).
func ErfZ(x float64) float64 {
	return backend.SfErfZ(x)
}

// ErfZE is ErfZ with a status code and error estimate.
func ErfZE(x float64) (Result, error) {
	return wrap(backend.SfErfZE(x))
}

// ErfQ computes the upper tail of the Gaussian probability function Q(x).
func ErfQ(x float64) float64 {
	return backend.SfErfQ(x)
}

// ErfQE is ErfQ with a status code and error estimate.
func ErfQE(x float64) (Result, error) {
	return wrap(backend.SfErfQE(x))
}

// Hazard computes the hazard function Z(x)/Q(x) for the normal
// distribution.
func Hazard(x float64) float64 {
	return backend.SfHazard(x)
}

// HazardE is Hazard with a status code and error estimate.
func HazardE(x float64) (Result, error) {
	return wrap(backend.SfHazardE(x))
}

// ExpintE1 computes the exponential integral E_1(x).
func ExpintE1(x float64) float64 {
	return backend.SfExpintE1(x)
}

// ExpintE1E is ExpintE1 with a status code and error estimate.
func ExpintE1E(x float64) (Result, error) {
	return wrap(backend.SfExpintE1E(x))
}

// ExpintE2 computes the second-order exponential integral E_2(x).
func ExpintE2(x float64) float64 {
	return backend.SfExpintE2(x)
}

// ExpintE2E is ExpintE2 with a status code and error estimate.
func ExpintE2E(x float64) (Result, error) {
	return wrap(backend.SfExpintE2E(x))
}

// ExpintEi computes the exponential integral Ei(x).
func ExpintEi(x float64) float64 {
	return backend.SfExpintEi(x)
}

// ExpintEiE is ExpintEi with a status code and error estimate.
func ExpintEiE(x float64) (Result, error) {
	return wrap(backend.SfExpintEiE(x))
}

// Zeta computes the Riemann zeta function for x != 1.
func Zeta(x float64) float64 {
	return backend.SfZeta(x)
}

// ZetaE is Zeta with a status code and error estimate.
func ZetaE(x float64) (Result, error) {
	return wrap(backend.SfZetaE(x))
}

// ZetaInt computes the Riemann zeta function at the integer n != 1.
func ZetaInt(n int) float64 {
	return backend.SfZetaInt(n)
}

// ZetaIntE is ZetaInt with a status code and error estimate.
func ZetaIntE(n int) (Result, error) {
	return wrap(backend.SfZetaIntE(n))
}

// Eta computes the Dirichlet eta function.
func Eta(x float64) float64 {
	return backend.SfEta(x)
}

// EtaE is Eta with a status code and error estimate.
func EtaE(x float64) (Result, error) {
	return wrap(backend.SfEtaE(x))
}

// AiryAi computes the Airy function Ai(x) at the requested accuracy mode.
func AiryAi(x float64, mode Mode) float64 {
	return backend.SfAiryAi(x, mode)
}

// AiryAiE is AiryAi with a status code and error estimate.
func AiryAiE(x float64, mode Mode) (Result, error) {
	return wrap(backend.SfAiryAiE(x, mode))
}

// AiryBi computes the Airy function Bi(x) at the requested accuracy mode.
func AiryBi(x float64, mode Mode) float64 {
	return backend.SfAiryBi(x, mode)
}

// AiryBiE is AiryBi with a status code and error estimate.
func AiryBiE(x float64, mode Mode) (Result, error) {
	return wrap(backend.SfAiryBiE(x, mode))
}

// Psi computes the digamma function for x != 0 and x not a negative
// integer.
func Psi(x float64) float64 {
	return backend.SfPsi(x)
}

// PsiE is Psi with a status code and error estimate.
func PsiE(x float64) (Result, error) {
	return wrap(backend.SfPsiE(x))
}

// Psi1 computes the trigamma function.
func Psi1(x float64) float64 {
	return backend.SfPsi1(x)
}

// Psi1E is Psi1 with a status code and error estimate.
func Psi1E(x float64) (Result, error) {
	return wrap(backend.SfPsi1E(x))
}

// PsiN computes the polygamma function of order n for x > 0.
func PsiN(n int, x float64) float64 {
	return backend.SfPsiN(n, x)
}

// PsiNE is PsiN with a status code and error estimate.
func PsiNE(n int, x float64) (Result, error) {
	return wrap(backend.SfPsiNE(n, x))
}

// LegendreP1 computes the Legendre polynomial P_1(x) = x.
func LegendreP1(x float64) float64 {
	return backend.SfLegendreP1(x)
}

// LegendreP1E is LegendreP1 with a status code and error estimate.
func LegendreP1E(x float64) (Result, error) {
	return wrap(backend.SfLegendreP1E(x))
}

// LegendreP2 computes the Legendre polynomial P_2(x).
func LegendreP2(x float64) float64 {
	return backend.SfLegendreP2(x)
}

// LegendreP2E is LegendreP2 with a status code and error estimate.
func LegendreP2E(x float64) (Result, error) {
	return wrap(backend.SfLegendreP2E(x))
}

// LegendreP3 computes the Legendre polynomial P_3(x).
func LegendreP3(x float64) float64 {
	return backend.SfLegendreP3(x)
}

// LegendreP3E is LegendreP3 with a status code and error estimate.
func LegendreP3E(x float64) (Result, error) {
	return wrap(backend.SfLegendreP3E(x))
}

// LegendrePl computes the Legendre polynomial P_l(x) for l >= 0 and
// |x| <= 1.
func LegendrePl(l int, x float64) float64 {
	return backend.SfLegendrePl(l, x)
}

// LegendrePlE is LegendrePl with a status code and error estimate.
func LegendrePlE(l int, x float64) (Result, error) {
	return wrap(backend.SfLegendrePlE(l, x))
}
