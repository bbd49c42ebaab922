//go:build cgo && !windows

package backend

/*
// No definitions here: this file carries //export functions, so the
// preamble may only declare. The static helpers that install these
// callbacks into GSL structs live in the bindings files that use them.
*/
import "C"

import (
	"errors"
	"math"
	"sync"
	"unsafe"
)

// handle is an opaque reference to a registered Go value that can be passed
// through GSL's void *params without violating cgo pointer rules.
type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]any{}
)

// put registers a Go value and returns a handle for it. The handle must be
// released with del when the native side can no longer call back.
//
// The uintptr form is converted to unsafe.Pointer inline at the call sites
// passing it to C, which is the conversion pattern cgo permits for
// non-pointer tokens. See https://pkg.go.dev/cmd/cgo#hdr-Passing_pointers
func put(v any) (handle, uintptr) {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h, uintptr(h)
}

// get retrieves a registered Go value from the void *params token handed
// back by GSL.
func get(ptr unsafe.Pointer) (any, bool) {
	if ptr == nil {
		return nil, false
	}
	h := handle(uintptr(ptr))
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

// del removes a registered Go value from the registry.
func del(h handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// odeSystem is the registry payload for an ODE system. The callbacks need
// the dimension to rebuild slice views over the native arrays.
type odeSystem struct {
	fn  func(t float64, y, dydt []float64) error
	jac func(t float64, y, dfdy, dfdt []float64) error
	dim int
}

// callbackCode maps an error returned by a user callback onto the status
// GSL expects. A *Error keeps its native code so user functions can signal
// domain conditions precisely; anything else becomes EBadFunc.
func callbackCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EBadFunc
}

// gogslEvalF evaluates a registered func(float64) float64. GSL has no
// status channel for scalar integrands, so a stale token yields NaN and
// lets the caller's routine report the failure.
//
//export gogslEvalF
func gogslEvalF(x C.double, params unsafe.Pointer) C.double {
	v, ok := get(params)
	if !ok {
		return C.double(math.NaN())
	}
	f, ok := v.(func(float64) float64)
	if !ok {
		return C.double(math.NaN())
	}
	return C.double(f(float64(x)))
}

// gogslOdeFunc forwards dydt evaluation to the registered ODE system.
//
//export gogslOdeFunc
func gogslOdeFunc(t C.double, y *C.double, dydt *C.double, params unsafe.Pointer) C.int {
	v, ok := get(params)
	if !ok {
		return C.int(EBadFunc)
	}
	sys, ok := v.(*odeSystem)
	if !ok {
		return C.int(EBadFunc)
	}
	ys := unsafe.Slice((*float64)(unsafe.Pointer(y)), sys.dim)
	dy := unsafe.Slice((*float64)(unsafe.Pointer(dydt)), sys.dim)
	if err := sys.fn(float64(t), ys, dy); err != nil {
		return C.int(callbackCode(err))
	}
	return C.int(Success)
}

// gogslOdeJac forwards Jacobian evaluation to the registered ODE system.
// dfdy is the dim-by-dim row-major Jacobian, dfdt the partial derivatives
// with respect to t.
//
//export gogslOdeJac
func gogslOdeJac(t C.double, y *C.double, dfdy *C.double, dfdt *C.double, params unsafe.Pointer) C.int {
	v, ok := get(params)
	if !ok {
		return C.int(EBadFunc)
	}
	sys, ok := v.(*odeSystem)
	if !ok || sys.jac == nil {
		return C.int(EBadFunc)
	}
	ys := unsafe.Slice((*float64)(unsafe.Pointer(y)), sys.dim)
	jy := unsafe.Slice((*float64)(unsafe.Pointer(dfdy)), sys.dim*sys.dim)
	jt := unsafe.Slice((*float64)(unsafe.Pointer(dfdt)), sys.dim)
	if err := sys.jac(float64(t), ys, jy, jt); err != nil {
		return C.int(callbackCode(err))
	}
	return C.int(Success)
}
