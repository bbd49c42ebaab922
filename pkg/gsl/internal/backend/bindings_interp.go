//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_interp.h>
#include <gsl/gsl_spline.h>
*/
import "C"

// InterpType is the native descriptor for an interpolation scheme.
type InterpType = *C.gsl_interp_type

// Accel is the native handle for an interpolation lookup accelerator.
type Accel = *C.gsl_interp_accel

// Spline is the native handle for a gsl_spline, which stores its own copy
// of the data points.
type Spline = *C.gsl_spline

func InterpTypeLinear() InterpType          { return C.gsl_interp_linear }
func InterpTypePolynomial() InterpType      { return C.gsl_interp_polynomial }
func InterpTypeCSpline() InterpType         { return C.gsl_interp_cspline }
func InterpTypeCSplinePeriodic() InterpType { return C.gsl_interp_cspline_periodic }
func InterpTypeAkima() InterpType           { return C.gsl_interp_akima }
func InterpTypeAkimaPeriodic() InterpType   { return C.gsl_interp_akima_periodic }
func InterpTypeSteffen() InterpType         { return C.gsl_interp_steffen }

func InterpTypeName(t InterpType) string { return C.GoString(t.name) }

func InterpTypeMinSize(t InterpType) int { return int(C.gsl_interp_type_min_size(t)) }

// AccelAlloc allocates a lookup accelerator.
func AccelAlloc() (Accel, error) {
	a := C.gsl_interp_accel_alloc()
	if a == nil {
		return nil, &Error{Op: "interp_accel_alloc", Code: ENoMem}
	}
	return a, nil
}

// AccelFree releases an accelerator. Safe on nil.
func AccelFree(a Accel) {
	if a == nil {
		return
	}
	C.gsl_interp_accel_free(a)
}

// AccelFind returns the index i of xs with xs[i] <= x < xs[i+1], caching
// the result for the next lookup.
func AccelFind(a Accel, xs []float64, x float64) int {
	return int(C.gsl_interp_accel_find(a, dptr(xs), C.size_t(len(xs)), C.double(x)))
}

// AccelReset clears the cache and the hit and miss counters.
func AccelReset(a Accel) error {
	return statusErr("interp_accel_reset", int(C.gsl_interp_accel_reset(a)))
}

func AccelStats(a Accel) (hits, misses uint64) {
	return uint64(a.hit_count), uint64(a.miss_count)
}

// SplineAlloc allocates a spline of the given scheme over n points.
func SplineAlloc(t InterpType, n int) (Spline, error) {
	s := C.gsl_spline_alloc(t, C.size_t(n))
	if s == nil {
		return nil, &Error{Op: "spline_alloc", Code: ENoMem}
	}
	return s, nil
}

// SplineFree releases a spline. Safe on nil.
func SplineFree(s Spline) {
	if s == nil {
		return
	}
	C.gsl_spline_free(s)
}

// SplineInit copies the data points into the spline and computes the
// coefficients. xs must be strictly increasing and both slices must match
// the allocated size (EInval from the native side otherwise).
func SplineInit(s Spline, xs, ys []float64) error {
	return statusErr("spline_init", int(C.gsl_spline_init(s, dptr(xs), dptr(ys), C.size_t(len(xs)))))
}

func SplineName(s Spline) string { return C.GoString(C.gsl_spline_name(s)) }

func SplineMinSize(s Spline) int { return int(C.gsl_spline_min_size(s)) }

// SplineEval evaluates the spline at x. Outside the data range it returns
// NaN; use SplineEvalE for the status.
func SplineEval(s Spline, x float64, a Accel) float64 {
	return float64(C.gsl_spline_eval(s, C.double(x), a))
}

func SplineEvalE(s Spline, x float64, a Accel) (float64, error) {
	var y C.double
	status := C.gsl_spline_eval_e(s, C.double(x), a, &y)
	return float64(y), statusErr("spline_eval_e", int(status))
}

func SplineEvalDerivE(s Spline, x float64, a Accel) (float64, error) {
	var d C.double
	status := C.gsl_spline_eval_deriv_e(s, C.double(x), a, &d)
	return float64(d), statusErr("spline_eval_deriv_e", int(status))
}

func SplineEvalDeriv2E(s Spline, x float64, a Accel) (float64, error) {
	var d2 C.double
	status := C.gsl_spline_eval_deriv2_e(s, C.double(x), a, &d2)
	return float64(d2), statusErr("spline_eval_deriv2_e", int(status))
}

// SplineEvalIntegE integrates the spline over [a, b] within the data
// range.
func SplineEvalIntegE(s Spline, a, b float64, acc Accel) (float64, error) {
	var res C.double
	status := C.gsl_spline_eval_integ_e(s, C.double(a), C.double(b), acc, &res)
	return float64(res), statusErr("spline_eval_integ_e", int(status))
}
