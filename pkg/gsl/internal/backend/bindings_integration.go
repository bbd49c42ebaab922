//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_math.h>
#include <gsl/gsl_integration.h>

extern double gogslEvalF(double x, void *params);

static gsl_function gogsl_make_fn(void *token) {
	gsl_function f;
	f.function = gogslEvalF;
	f.params = token;
	return f;
}
*/
import "C"

import "unsafe"

// IntegWorkspace is the native handle for an adaptive integration
// workspace.
type IntegWorkspace = *C.gsl_integration_workspace

// IntegWorkspaceAlloc allocates a workspace that can hold limit
// subintervals.
func IntegWorkspaceAlloc(limit int) (IntegWorkspace, error) {
	w := C.gsl_integration_workspace_alloc(C.size_t(limit))
	if w == nil {
		return nil, &Error{Op: "integration_workspace_alloc", Code: ENoMem}
	}
	return w, nil
}

// IntegWorkspaceFree releases a workspace. Safe on nil.
func IntegWorkspaceFree(w IntegWorkspace) {
	if w == nil {
		return
	}
	C.gsl_integration_workspace_free(w)
}

func IntegWorkspaceLimit(w IntegWorkspace) int {
	return int(w.limit)
}

// IntegQng applies the non-adaptive Gauss-Kronrod rule to f on [a, b].
func IntegQng(f func(float64) float64, a, b, epsabs, epsrel float64) (result, abserr float64, neval int, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	var cneval C.size_t
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qng(&cf, C.double(a), C.double(b), C.double(epsabs), C.double(epsrel),
		&cres, &cerr, &cneval)
	return float64(cres), float64(cerr), int(cneval), statusErr("integration_qng", int(status))
}

// IntegQag integrates f on [a, b] adaptively with the given Gauss-Kronrod
// key.
func IntegQag(f func(float64) float64, a, b, epsabs, epsrel float64, limit, key int, w IntegWorkspace) (result, abserr float64, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qag(&cf, C.double(a), C.double(b), C.double(epsabs), C.double(epsrel),
		C.size_t(limit), C.int(key), w, &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("integration_qag", int(status))
}

// IntegQags integrates f on [a, b] adaptively with extrapolation, handling
// integrable singularities.
func IntegQags(f func(float64) float64, a, b, epsabs, epsrel float64, limit int, w IntegWorkspace) (result, abserr float64, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qags(&cf, C.double(a), C.double(b), C.double(epsabs), C.double(epsrel),
		C.size_t(limit), w, &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("integration_qags", int(status))
}

// IntegQagi integrates f over (-inf, +inf).
func IntegQagi(f func(float64) float64, epsabs, epsrel float64, limit int, w IntegWorkspace) (result, abserr float64, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qagi(&cf, C.double(epsabs), C.double(epsrel), C.size_t(limit), w, &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("integration_qagi", int(status))
}

// IntegQagiu integrates f over [a, +inf).
func IntegQagiu(f func(float64) float64, a, epsabs, epsrel float64, limit int, w IntegWorkspace) (result, abserr float64, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qagiu(&cf, C.double(a), C.double(epsabs), C.double(epsrel), C.size_t(limit), w, &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("integration_qagiu", int(status))
}

// IntegQagil integrates f over (-inf, b].
func IntegQagil(f func(float64) float64, b, epsabs, epsrel float64, limit int, w IntegWorkspace) (result, abserr float64, err error) {
	h, tok := put(f)
	defer del(h)
	var cres, cerr C.double
	//nolint:govet // registry token, not a Go pointer
	cf := C.gogsl_make_fn(unsafe.Pointer(tok))
	status := C.gsl_integration_qagil(&cf, C.double(b), C.double(epsabs), C.double(epsrel), C.size_t(limit), w, &cres, &cerr)
	return float64(cres), float64(cerr), statusErr("integration_qagil", int(status))
}
