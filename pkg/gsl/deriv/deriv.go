// Package deriv exposes the adaptive finite-difference routines of
// gsl_deriv. Each function evaluates the user function several times
// around x with initial step h and returns the derivative estimate
// together with an absolute error bound.
package deriv

import (
	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Central estimates f'(x) using a central difference, evaluating f at
// points on both sides of x. It is the most accurate of the three schemes
// and should be preferred when f is defined around x.
func Central(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	if f == nil {
		return 0, 0, &gsl.Error{Op: "deriv_central", Code: gsl.EBadFunc}
	}
	return backend.DerivCentral(f, x, h)
}

// Forward estimates f'(x) using values of f at x and above only, for
// functions undefined below x.
func Forward(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	if f == nil {
		return 0, 0, &gsl.Error{Op: "deriv_forward", Code: gsl.EBadFunc}
	}
	return backend.DerivForward(f, x, h)
}

// Backward estimates f'(x) using values of f at x and below only.
func Backward(f func(float64) float64, x, h float64) (result, abserr float64, err error) {
	if f == nil {
		return 0, 0, &gsl.Error{Op: "deriv_backward", Code: gsl.EBadFunc}
	}
	return backend.DerivBackward(f, x, h)
}
