//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_sf.h>
*/
import "C"

// With the error handler off the natural forms return NaN on domain
// failures without any status. The _e forms carry the status and the
// estimated absolute error; public code that needs failure detail calls
// those.

func sfResult(op string, status C.int, r *C.gsl_sf_result) (val, aerr float64, err error) {
	return float64(r.val), float64(r.err), statusErr(op, int(status))
}

// Bessel functions.

func SfBesselJ0(x float64) float64 { return float64(C.gsl_sf_bessel_J0(C.double(x))) }

func SfBesselJ0E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_J0_e", C.gsl_sf_bessel_J0_e(C.double(x), &r), &r)
}

func SfBesselJ1(x float64) float64 { return float64(C.gsl_sf_bessel_J1(C.double(x))) }

func SfBesselJ1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_J1_e", C.gsl_sf_bessel_J1_e(C.double(x), &r), &r)
}

func SfBesselJn(n int, x float64) float64 {
	return float64(C.gsl_sf_bessel_Jn(C.int(n), C.double(x)))
}

func SfBesselJnE(n int, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_Jn_e", C.gsl_sf_bessel_Jn_e(C.int(n), C.double(x), &r), &r)
}

func SfBesselY0(x float64) float64 { return float64(C.gsl_sf_bessel_Y0(C.double(x))) }

func SfBesselY0E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_Y0_e", C.gsl_sf_bessel_Y0_e(C.double(x), &r), &r)
}

func SfBesselY1(x float64) float64 { return float64(C.gsl_sf_bessel_Y1(C.double(x))) }

func SfBesselY1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_Y1_e", C.gsl_sf_bessel_Y1_e(C.double(x), &r), &r)
}

func SfBesselYn(n int, x float64) float64 {
	return float64(C.gsl_sf_bessel_Yn(C.int(n), C.double(x)))
}

func SfBesselYnE(n int, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_Yn_e", C.gsl_sf_bessel_Yn_e(C.int(n), C.double(x), &r), &r)
}

func SfBesselI0(x float64) float64 { return float64(C.gsl_sf_bessel_I0(C.double(x))) }

func SfBesselI0E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_I0_e", C.gsl_sf_bessel_I0_e(C.double(x), &r), &r)
}

func SfBesselI1(x float64) float64 { return float64(C.gsl_sf_bessel_I1(C.double(x))) }

func SfBesselI1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_I1_e", C.gsl_sf_bessel_I1_e(C.double(x), &r), &r)
}

func SfBesselK0(x float64) float64 { return float64(C.gsl_sf_bessel_K0(C.double(x))) }

func SfBesselK0E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_K0_e", C.gsl_sf_bessel_K0_e(C.double(x), &r), &r)
}

func SfBesselK1(x float64) float64 { return float64(C.gsl_sf_bessel_K1(C.double(x))) }

func SfBesselK1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_bessel_K1_e", C.gsl_sf_bessel_K1_e(C.double(x), &r), &r)
}

// Gamma and related functions.

func SfGamma(x float64) float64 { return float64(C.gsl_sf_gamma(C.double(x))) }

func SfGammaE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_gamma_e", C.gsl_sf_gamma_e(C.double(x), &r), &r)
}

func SfLnGamma(x float64) float64 { return float64(C.gsl_sf_lngamma(C.double(x))) }

func SfLnGammaE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_lngamma_e", C.gsl_sf_lngamma_e(C.double(x), &r), &r)
}

func SfGammaInv(x float64) float64 { return float64(C.gsl_sf_gammainv(C.double(x))) }

func SfGammaIncP(a, x float64) float64 {
	return float64(C.gsl_sf_gamma_inc_P(C.double(a), C.double(x)))
}

func SfGammaIncPE(a, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_gamma_inc_P_e", C.gsl_sf_gamma_inc_P_e(C.double(a), C.double(x), &r), &r)
}

func SfGammaIncQ(a, x float64) float64 {
	return float64(C.gsl_sf_gamma_inc_Q(C.double(a), C.double(x)))
}

func SfGammaIncQE(a, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_gamma_inc_Q_e", C.gsl_sf_gamma_inc_Q_e(C.double(a), C.double(x), &r), &r)
}

func SfBeta(a, b float64) float64 { return float64(C.gsl_sf_beta(C.double(a), C.double(b))) }

func SfBetaE(a, b float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_beta_e", C.gsl_sf_beta_e(C.double(a), C.double(b), &r), &r)
}

func SfLnBeta(a, b float64) float64 { return float64(C.gsl_sf_lnbeta(C.double(a), C.double(b))) }

func SfLnBetaE(a, b float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_lnbeta_e", C.gsl_sf_lnbeta_e(C.double(a), C.double(b), &r), &r)
}

func SfFact(n uint) float64 { return float64(C.gsl_sf_fact(C.uint(n))) }

func SfFactE(n uint) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_fact_e", C.gsl_sf_fact_e(C.uint(n), &r), &r)
}

func SfLnFact(n uint) float64 { return float64(C.gsl_sf_lnfact(C.uint(n))) }

func SfLnFactE(n uint) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_lnfact_e", C.gsl_sf_lnfact_e(C.uint(n), &r), &r)
}

func SfChoose(n, m uint) float64 { return float64(C.gsl_sf_choose(C.uint(n), C.uint(m))) }

func SfChooseE(n, m uint) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_choose_e", C.gsl_sf_choose_e(C.uint(n), C.uint(m), &r), &r)
}

// Error functions.

func SfErf(x float64) float64 { return float64(C.gsl_sf_erf(C.double(x))) }

func SfErfE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_erf_e", C.gsl_sf_erf_e(C.double(x), &r), &r)
}

func SfErfc(x float64) float64 { return float64(C.gsl_sf_erfc(C.double(x))) }

func SfErfcE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_erfc_e", C.gsl_sf_erfc_e(C.double(x), &r), &r)
}

func SfLogErfc(x float64) float64 { return float64(C.gsl_sf_log_erfc(C.double(x))) }

func SfLogErfcE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_log_erfc_e", C.gsl_sf_log_erfc_e(C.double(x), &r), &r)
}

func SfErfZ(x float64) float64 { return float64(C.gsl_sf_erf_Z(C.double(x))) }

func SfErfZE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_erf_Z_e", C.gsl_sf_erf_Z_e(C.double(x), &r), &r)
}

func SfErfQ(x float64) float64 { return float64(C.gsl_sf_erf_Q(C.double(x))) }

func SfErfQE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_erf_Q_e", C.gsl_sf_erf_Q_e(C.double(x), &r), &r)
}

func SfHazard(x float64) float64 { return float64(C.gsl_sf_hazard(C.double(x))) }

func SfHazardE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_hazard_e", C.gsl_sf_hazard_e(C.double(x), &r), &r)
}

// Exponential integrals.

func SfExpintE1(x float64) float64 { return float64(C.gsl_sf_expint_E1(C.double(x))) }

func SfExpintE1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_expint_E1_e", C.gsl_sf_expint_E1_e(C.double(x), &r), &r)
}

func SfExpintE2(x float64) float64 { return float64(C.gsl_sf_expint_E2(C.double(x))) }

func SfExpintE2E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_expint_E2_e", C.gsl_sf_expint_E2_e(C.double(x), &r), &r)
}

func SfExpintEi(x float64) float64 { return float64(C.gsl_sf_expint_Ei(C.double(x))) }

func SfExpintEiE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_expint_Ei_e", C.gsl_sf_expint_Ei_e(C.double(x), &r), &r)
}

// Zeta functions.

func SfZeta(s float64) float64 { return float64(C.gsl_sf_zeta(C.double(s))) }

func SfZetaE(s float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_zeta_e", C.gsl_sf_zeta_e(C.double(s), &r), &r)
}

func SfZetaInt(n int) float64 { return float64(C.gsl_sf_zeta_int(C.int(n))) }

func SfZetaIntE(n int) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_zeta_int_e", C.gsl_sf_zeta_int_e(C.int(n), &r), &r)
}

func SfEta(s float64) float64 { return float64(C.gsl_sf_eta(C.double(s))) }

func SfEtaE(s float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_eta_e", C.gsl_sf_eta_e(C.double(s), &r), &r)
}

// Airy functions take an accuracy mode.

func SfAiryAi(x float64, mode Mode) float64 {
	return float64(C.gsl_sf_airy_Ai(C.double(x), C.gsl_mode_t(mode)))
}

func SfAiryAiE(x float64, mode Mode) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_airy_Ai_e", C.gsl_sf_airy_Ai_e(C.double(x), C.gsl_mode_t(mode), &r), &r)
}

func SfAiryBi(x float64, mode Mode) float64 {
	return float64(C.gsl_sf_airy_Bi(C.double(x), C.gsl_mode_t(mode)))
}

func SfAiryBiE(x float64, mode Mode) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_airy_Bi_e", C.gsl_sf_airy_Bi_e(C.double(x), C.gsl_mode_t(mode), &r), &r)
}

// Psi (digamma) functions.

func SfPsi(x float64) float64 { return float64(C.gsl_sf_psi(C.double(x))) }

func SfPsiE(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_psi_e", C.gsl_sf_psi_e(C.double(x), &r), &r)
}

func SfPsi1(x float64) float64 { return float64(C.gsl_sf_psi_1(C.double(x))) }

func SfPsi1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_psi_1_e", C.gsl_sf_psi_1_e(C.double(x), &r), &r)
}

func SfPsiN(n int, x float64) float64 {
	return float64(C.gsl_sf_psi_n(C.int(n), C.double(x)))
}

func SfPsiNE(n int, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_psi_n_e", C.gsl_sf_psi_n_e(C.int(n), C.double(x), &r), &r)
}

// Legendre polynomials.

func SfLegendreP1(x float64) float64 { return float64(C.gsl_sf_legendre_P1(C.double(x))) }

func SfLegendreP1E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_legendre_P1_e", C.gsl_sf_legendre_P1_e(C.double(x), &r), &r)
}

func SfLegendreP2(x float64) float64 { return float64(C.gsl_sf_legendre_P2(C.double(x))) }

func SfLegendreP2E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_legendre_P2_e", C.gsl_sf_legendre_P2_e(C.double(x), &r), &r)
}

func SfLegendreP3(x float64) float64 { return float64(C.gsl_sf_legendre_P3(C.double(x))) }

func SfLegendreP3E(x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_legendre_P3_e", C.gsl_sf_legendre_P3_e(C.double(x), &r), &r)
}

func SfLegendrePl(l int, x float64) float64 {
	return float64(C.gsl_sf_legendre_Pl(C.int(l), C.double(x)))
}

func SfLegendrePlE(l int, x float64) (float64, float64, error) {
	var r C.gsl_sf_result
	return sfResult("sf_legendre_Pl_e", C.gsl_sf_legendre_Pl_e(C.int(l), C.double(x), &r), &r)
}
