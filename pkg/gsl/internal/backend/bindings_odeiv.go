//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <gsl/gsl_errno.h>
#include <gsl/gsl_odeiv2.h>

extern int gogslOdeFunc(double t, double *y, double *dydt, void *params);
extern int gogslOdeJac(double t, double *y, double *dfdy, double *dfdt, void *params);

// The exported Go callbacks cannot carry const qualifiers, so the
// assignments cast to the exact native signatures.
static gsl_odeiv2_system *gogsl_system_alloc(void *token, size_t dim, int with_jac) {
	gsl_odeiv2_system *s = malloc(sizeof(gsl_odeiv2_system));
	if (s == NULL) {
		return NULL;
	}
	s->function = (int (*)(double, const double *, double *, void *))gogslOdeFunc;
	s->jacobian = with_jac ? (int (*)(double, const double *, double *, double *, void *))gogslOdeJac : NULL;
	s->dimension = dim;
	s->params = token;
	return s;
}
*/
import "C"

import "unsafe"

// OdeStepType is the native descriptor for a stepping algorithm.
type OdeStepType = *C.gsl_odeiv2_step_type

// OdeStep is the native handle for a stepper instance.
type OdeStep = *C.gsl_odeiv2_step

// OdeControl is the native handle for a step size control object.
type OdeControl = *C.gsl_odeiv2_control

// OdeEvolve is the native handle for an evolution object.
type OdeEvolve = *C.gsl_odeiv2_evolve

// OdeDriver is the native handle for a driver combining step, control and
// evolve.
type OdeDriver = *C.gsl_odeiv2_driver

// OdeSystem owns the C-side gsl_odeiv2_system struct together with the
// registry entry for the Go callbacks. It must stay alive while any
// stepper, evolver or driver built on it can still run.
type OdeSystem struct {
	csys *C.gsl_odeiv2_system
	h    handle
}

func StepTypeRK2() OdeStepType     { return C.gsl_odeiv2_step_rk2 }
func StepTypeRK4() OdeStepType     { return C.gsl_odeiv2_step_rk4 }
func StepTypeRKF45() OdeStepType   { return C.gsl_odeiv2_step_rkf45 }
func StepTypeRKCK() OdeStepType    { return C.gsl_odeiv2_step_rkck }
func StepTypeRK8PD() OdeStepType   { return C.gsl_odeiv2_step_rk8pd }
func StepTypeRK1Imp() OdeStepType  { return C.gsl_odeiv2_step_rk1imp }
func StepTypeRK2Imp() OdeStepType  { return C.gsl_odeiv2_step_rk2imp }
func StepTypeRK4Imp() OdeStepType  { return C.gsl_odeiv2_step_rk4imp }
func StepTypeBSImp() OdeStepType   { return C.gsl_odeiv2_step_bsimp }
func StepTypeMSAdams() OdeStepType { return C.gsl_odeiv2_step_msadams }
func StepTypeMSBDF() OdeStepType   { return C.gsl_odeiv2_step_msbdf }

// SystemAlloc registers the Go callbacks and allocates the C-side system
// struct pointing at them. jac may be nil for explicit steppers.
func SystemAlloc(f func(t float64, y, dydt []float64) error, jac func(t float64, y, dfdy, dfdt []float64) error, dim int) (*OdeSystem, error) {
	payload := &odeSystem{fn: f, jac: jac, dim: dim}
	h, tok := put(payload)
	withJac := C.int(0)
	if jac != nil {
		withJac = 1
	}
	//nolint:govet // registry token, not a Go pointer
	csys := C.gogsl_system_alloc(unsafe.Pointer(tok), C.size_t(dim), withJac)
	if csys == nil {
		del(h)
		return nil, &Error{Op: "odeiv2_system_alloc", Code: ENoMem}
	}
	return &OdeSystem{csys: csys, h: h}, nil
}

// SystemFree releases the C-side struct and the registry entry. Safe on
// nil and after a previous SystemFree.
func SystemFree(s *OdeSystem) {
	if s == nil || s.csys == nil {
		return
	}
	C.free(unsafe.Pointer(s.csys))
	s.csys = nil
	del(s.h)
}

// StepAlloc allocates a stepper of the given algorithm and dimension.
func StepAlloc(t OdeStepType, dim int) (OdeStep, error) {
	s := C.gsl_odeiv2_step_alloc(t, C.size_t(dim))
	if s == nil {
		return nil, &Error{Op: "odeiv2_step_alloc", Code: ENoMem}
	}
	return s, nil
}

// StepFree releases a stepper. Safe on nil.
func StepFree(s OdeStep) {
	if s == nil {
		return
	}
	C.gsl_odeiv2_step_free(s)
}

func StepReset(s OdeStep) error {
	return statusErr("odeiv2_step_reset", int(C.gsl_odeiv2_step_reset(s)))
}

func StepName(s OdeStep) string { return C.GoString(C.gsl_odeiv2_step_name(s)) }

func StepOrder(s OdeStep) int { return int(C.gsl_odeiv2_step_order(s)) }

// StepSetDriver attaches a driver to the stepper. The implicit algorithms
// require one before StepApply.
func StepSetDriver(s OdeStep, d OdeDriver) error {
	return statusErr("odeiv2_step_set_driver", int(C.gsl_odeiv2_step_set_driver(s, d)))
}

// StepApply advances y from t by the fixed step h, writing error estimates
// into yerr. dydtIn and dydtOut are optional derivative arrays.
func StepApply(s OdeStep, t, h float64, y, yerr, dydtIn, dydtOut []float64, sys *OdeSystem) error {
	status := C.gsl_odeiv2_step_apply(s, C.double(t), C.double(h), dptr(y), dptr(yerr),
		dptr(dydtIn), dptr(dydtOut), sys.csys)
	return statusErr("odeiv2_step_apply", int(status))
}

// ControlAllocStandard creates a control with error level
// eps_abs + eps_rel * (a_y |y| + a_dydt h |y'|).
func ControlAllocStandard(epsAbs, epsRel, aY, aDydt float64) (OdeControl, error) {
	c := C.gsl_odeiv2_control_standard_new(C.double(epsAbs), C.double(epsRel), C.double(aY), C.double(aDydt))
	if c == nil {
		return nil, &Error{Op: "odeiv2_control_standard_new", Code: ENoMem}
	}
	return c, nil
}

// ControlAllocY creates a control keeping the local error within eps_abs
// and eps_rel of the solution values.
func ControlAllocY(epsAbs, epsRel float64) (OdeControl, error) {
	c := C.gsl_odeiv2_control_y_new(C.double(epsAbs), C.double(epsRel))
	if c == nil {
		return nil, &Error{Op: "odeiv2_control_y_new", Code: ENoMem}
	}
	return c, nil
}

// ControlAllocYP creates a control scaled to the derivative values.
func ControlAllocYP(epsAbs, epsRel float64) (OdeControl, error) {
	c := C.gsl_odeiv2_control_yp_new(C.double(epsAbs), C.double(epsRel))
	if c == nil {
		return nil, &Error{Op: "odeiv2_control_yp_new", Code: ENoMem}
	}
	return c, nil
}

// ControlAllocScaled creates a control with per-component absolute error
// scales.
func ControlAllocScaled(epsAbs, epsRel, aY, aDydt float64, scaleAbs []float64) (OdeControl, error) {
	c := C.gsl_odeiv2_control_scaled_new(C.double(epsAbs), C.double(epsRel), C.double(aY), C.double(aDydt),
		dptr(scaleAbs), C.size_t(len(scaleAbs)))
	if c == nil {
		return nil, &Error{Op: "odeiv2_control_scaled_new", Code: ENoMem}
	}
	return c, nil
}

// ControlFree releases a control object. Safe on nil.
func ControlFree(c OdeControl) {
	if c == nil {
		return
	}
	C.gsl_odeiv2_control_free(c)
}

func ControlName(c OdeControl) string { return C.GoString(C.gsl_odeiv2_control_name(c)) }

// ControlHAdjust rescales h based on the last step's error estimates,
// returning HAdjDec, HAdjNil or HAdjInc together with the new step size.
func ControlHAdjust(c OdeControl, s OdeStep, y, yerr, dydt []float64, h float64) (adj int, newH float64) {
	ch := C.double(h)
	r := C.gsl_odeiv2_control_hadjust(c, s, dptr(y), dptr(yerr), dptr(dydt), &ch)
	return int(r), float64(ch)
}

// ControlErrLevel computes the desired error level for component ind.
func ControlErrLevel(c OdeControl, y, dydt, h float64, ind int) (float64, error) {
	var lev C.double
	status := C.gsl_odeiv2_control_errlevel(c, C.double(y), C.double(dydt), C.double(h), C.size_t(ind), &lev)
	return float64(lev), statusErr("odeiv2_control_errlevel", int(status))
}

// EvolveAlloc allocates an evolution object for systems of the given
// dimension.
func EvolveAlloc(dim int) (OdeEvolve, error) {
	e := C.gsl_odeiv2_evolve_alloc(C.size_t(dim))
	if e == nil {
		return nil, &Error{Op: "odeiv2_evolve_alloc", Code: ENoMem}
	}
	return e, nil
}

// EvolveFree releases an evolution object. Safe on nil.
func EvolveFree(e OdeEvolve) {
	if e == nil {
		return
	}
	C.gsl_odeiv2_evolve_free(e)
}

func EvolveReset(e OdeEvolve) error {
	return statusErr("odeiv2_evolve_reset", int(C.gsl_odeiv2_evolve_reset(e)))
}

// EvolveApply advances the system from t toward t1 with an adaptively
// chosen step, returning the new t and the suggested next step size.
func EvolveApply(e OdeEvolve, c OdeControl, s OdeStep, sys *OdeSystem, t, t1, h float64, y []float64) (tOut, hOut float64, err error) {
	ct, ch := C.double(t), C.double(h)
	status := C.gsl_odeiv2_evolve_apply(e, c, s, sys.csys, &ct, C.double(t1), &ch, dptr(y))
	return float64(ct), float64(ch), statusErr("odeiv2_evolve_apply", int(status))
}

// EvolveApplyFixedStep advances the system by exactly h, returning the new
// t.
func EvolveApplyFixedStep(e OdeEvolve, c OdeControl, s OdeStep, sys *OdeSystem, t, h float64, y []float64) (tOut float64, err error) {
	ct := C.double(t)
	status := C.gsl_odeiv2_evolve_apply_fixed_step(e, c, s, sys.csys, &ct, C.double(h), dptr(y))
	return float64(ct), statusErr("odeiv2_evolve_apply_fixed_step", int(status))
}

// DriverAllocY creates a driver with a y-based control.
func DriverAllocY(sys *OdeSystem, t OdeStepType, hstart, epsAbs, epsRel float64) (OdeDriver, error) {
	d := C.gsl_odeiv2_driver_alloc_y_new(sys.csys, t, C.double(hstart), C.double(epsAbs), C.double(epsRel))
	if d == nil {
		return nil, &Error{Op: "odeiv2_driver_alloc_y_new", Code: ENoMem}
	}
	return d, nil
}

// DriverAllocYP creates a driver with a derivative-based control.
func DriverAllocYP(sys *OdeSystem, t OdeStepType, hstart, epsAbs, epsRel float64) (OdeDriver, error) {
	d := C.gsl_odeiv2_driver_alloc_yp_new(sys.csys, t, C.double(hstart), C.double(epsAbs), C.double(epsRel))
	if d == nil {
		return nil, &Error{Op: "odeiv2_driver_alloc_yp_new", Code: ENoMem}
	}
	return d, nil
}

// DriverAllocStandard creates a driver with the standard blended control.
func DriverAllocStandard(sys *OdeSystem, t OdeStepType, hstart, epsAbs, epsRel, aY, aDydt float64) (OdeDriver, error) {
	d := C.gsl_odeiv2_driver_alloc_standard_new(sys.csys, t, C.double(hstart), C.double(epsAbs), C.double(epsRel),
		C.double(aY), C.double(aDydt))
	if d == nil {
		return nil, &Error{Op: "odeiv2_driver_alloc_standard_new", Code: ENoMem}
	}
	return d, nil
}

// DriverAllocScaled creates a driver with per-component error scales.
func DriverAllocScaled(sys *OdeSystem, t OdeStepType, hstart, epsAbs, epsRel, aY, aDydt float64, scaleAbs []float64) (OdeDriver, error) {
	d := C.gsl_odeiv2_driver_alloc_scaled_new(sys.csys, t, C.double(hstart), C.double(epsAbs), C.double(epsRel),
		C.double(aY), C.double(aDydt), dptr(scaleAbs))
	if d == nil {
		return nil, &Error{Op: "odeiv2_driver_alloc_scaled_new", Code: ENoMem}
	}
	return d, nil
}

// DriverFree releases a driver and its internal step, control and evolve
// objects. Safe on nil. The system passed at allocation is not released.
func DriverFree(d OdeDriver) {
	if d == nil {
		return
	}
	C.gsl_odeiv2_driver_free(d)
}

func DriverSetHMin(d OdeDriver, hmin float64) error {
	return statusErr("odeiv2_driver_set_hmin", int(C.gsl_odeiv2_driver_set_hmin(d, C.double(hmin))))
}

func DriverSetHMax(d OdeDriver, hmax float64) error {
	return statusErr("odeiv2_driver_set_hmax", int(C.gsl_odeiv2_driver_set_hmax(d, C.double(hmax))))
}

func DriverSetNMax(d OdeDriver, nmax uint64) error {
	return statusErr("odeiv2_driver_set_nmax", int(C.gsl_odeiv2_driver_set_nmax(d, C.ulong(nmax))))
}

// DriverApply integrates the system from t to t1, returning the reached t.
// On failure the reached t reflects the partial progress.
func DriverApply(d OdeDriver, t, t1 float64, y []float64) (float64, error) {
	ct := C.double(t)
	status := C.gsl_odeiv2_driver_apply(d, &ct, C.double(t1), dptr(y))
	return float64(ct), statusErr("odeiv2_driver_apply", int(status))
}

// DriverApplyFixedStep advances the system by n fixed steps of size h.
func DriverApplyFixedStep(d OdeDriver, t, h float64, n uint64, y []float64) (float64, error) {
	ct := C.double(t)
	status := C.gsl_odeiv2_driver_apply_fixed_step(d, &ct, C.double(h), C.ulong(n), dptr(y))
	return float64(ct), statusErr("odeiv2_driver_apply_fixed_step", int(status))
}

func DriverReset(d OdeDriver) error {
	return statusErr("odeiv2_driver_reset", int(C.gsl_odeiv2_driver_reset(d)))
}

func DriverResetHStart(d OdeDriver, hstart float64) error {
	return statusErr("odeiv2_driver_reset_hstart", int(C.gsl_odeiv2_driver_reset_hstart(d, C.double(hstart))))
}
