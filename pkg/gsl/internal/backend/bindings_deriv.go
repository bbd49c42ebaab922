//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_math.h>
#include <gsl/gsl_deriv.h>

extern double gogslEvalF(double x, void *params);

static gsl_function gogsl_make_deriv_fn(void *token) {
	gsl_function f;
	f.function = gogslEvalF;
	f.params = token;
	return f;
}
*/
import "C"

import "unsafe"

// DerivCentral estimates f'(x) with an adaptive central difference using
// step size h.
func DerivCentral(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	hd, tok := put(f)
	defer del(hd)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_deriv_fn(unsafe.Pointer(tok))
	status := C.gsl_deriv_central(&cf, C.double(x), C.double(h), &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("deriv_central", int(status))
}

// DerivForward estimates f'(x) using values of f at x and above.
func DerivForward(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	hd, tok := put(f)
	defer del(hd)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_deriv_fn(unsafe.Pointer(tok))
	status := C.gsl_deriv_forward(&cf, C.double(x), C.double(h), &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("deriv_forward", int(status))
}

// DerivBackward estimates f'(x) using values of f at x and below.
func DerivBackward(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	hd, tok := put(f)
	defer del(hd)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_deriv_fn(unsafe.Pointer(tok))
	status := C.gsl_deriv_backward(&cf, C.double(x), C.double(h), &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("deriv_backward", int(status))
}
