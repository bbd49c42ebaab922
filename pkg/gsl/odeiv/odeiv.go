// Package odeiv exposes gsl_odeiv2, the solver framework for systems of
// ordinary differential equations dy/dt = f(t, y).
//
// The building blocks mirror the native layering: a System describes the
// equations, a Step advances the solution by one step of a fixed
// algorithm, a Control chooses step sizes from local error estimates, and
// an Evolve combines the two into an adaptive loop. Most callers want
// none of that detail and should use a Driver, which packages all three
// behind Apply.
//
// The right-hand side and the optional Jacobian are ordinary Go
// functions. An error returned from one of them aborts the native routine
// with the error's own status when it is a *gsl.Error, and with EBadFunc
// otherwise.
package odeiv

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// System describes the ODE system dy/dt = F(t, y).
//
// F stores the derivatives of y into dydt; both slices have length Dim.
// Jacobian is required by the implicit algorithms (RK1Imp, RK2Imp, RK4Imp,
// BSImp, MSBDF) and may be nil otherwise: it stores the Dim-by-Dim
// row-major matrix dF_i/dy_j into dfdy and the partials dF_i/dt into dfdt.
type System struct {
	F        func(t float64, y, dydt []float64) error
	Jacobian func(t float64, y, dfdy, dfdt []float64) error
	Dim      int
}

// alloc materializes the native system struct. The caller owns the result
// and must release it with backend.SystemFree.
func (s *System) alloc(op string) (*backend.OdeSystem, error) {
	if s == nil || s.F == nil {
		return nil, &gsl.Error{Op: op, Code: gsl.EBadFunc}
	}
	if s.Dim <= 0 {
		return nil, &gsl.Error{Op: op, Code: gsl.EInval}
	}
	return backend.SystemAlloc(s.F, s.Jacobian, s.Dim)
}

// StepType identifies a stepping algorithm. The zero StepType is invalid;
// obtain one from the algorithm constructors.
type StepType struct {
	t backend.OdeStepType
}

// RK2 returns the explicit embedded Runge-Kutta (2, 3) method.
func RK2() StepType { return StepType{t: backend.StepTypeRK2()} }

// RK4 returns the explicit 4th order (classical) Runge-Kutta method.
func RK4() StepType { return StepType{t: backend.StepTypeRK4()} }

// RKF45 returns the explicit embedded Runge-Kutta-Fehlberg (4, 5) method,
// a good general-purpose default.
func RKF45() StepType { return StepType{t: backend.StepTypeRKF45()} }

// RKCK returns the explicit embedded Runge-Kutta Cash-Karp (4, 5) method.
func RKCK() StepType { return StepType{t: backend.StepTypeRKCK()} }

// RK8PD returns the explicit embedded Runge-Kutta Prince-Dormand (8, 9)
// method.
func RK8PD() StepType { return StepType{t: backend.StepTypeRK8PD()} }

// RK1Imp returns the implicit Euler method. Requires a Jacobian.
func RK1Imp() StepType { return StepType{t: backend.StepTypeRK1Imp()} }

// RK2Imp returns the implicit 2nd order Runge-Kutta at Gaussian points.
// Requires a Jacobian.
func RK2Imp() StepType { return StepType{t: backend.StepTypeRK2Imp()} }

// RK4Imp returns the implicit 4th order Runge-Kutta at Gaussian points.
// Requires a Jacobian.
func RK4Imp() StepType { return StepType{t: backend.StepTypeRK4Imp()} }

// BSImp returns the implicit Bulirsch-Stoer method of Bader and Deuflhard,
// suited to stiff systems. Requires a Jacobian.
func BSImp() StepType { return StepType{t: backend.StepTypeBSImp()} }

// MSAdams returns the variable-order Adams multistep method (orders 1-12).
func MSAdams() StepType { return StepType{t: backend.StepTypeMSAdams()} }

// MSBDF returns the variable-order BDF multistep method (orders 1-5),
// suited to stiff systems. Requires a Jacobian.
func MSBDF() StepType { return StepType{t: backend.StepTypeMSBDF()} }

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// Step advances a solution by single steps of a fixed algorithm. Most
// callers should use Driver instead.
type Step struct {
	s   backend.OdeStep
	dim int
}

// NewStep allocates a stepper of the given algorithm for systems of
// dimension dim.
func NewStep(t StepType, dim int) (*Step, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if t.t == nil || dim <= 0 {
		return nil, &gsl.Error{Op: "odeiv2_step_alloc", Code: gsl.EInval}
	}
	h, err := backend.StepAlloc(t.t, dim)
	if err != nil {
		return nil, err
	}
	s := &Step{s: h, dim: dim}
	runtime.SetFinalizer(s, (*Step).Free)
	return s, nil
}

// Free releases the native stepper. It is idempotent and safe on a nil
// receiver.
func (s *Step) Free() {
	if s != nil && s.s != nil {
		backend.StepFree(s.s)
		s.s = nil
		runtime.SetFinalizer(s, nil)
	}
}

// Reset clears the stepper's internal state, required after a change of
// direction or a discontinuous jump in the solution.
func (s *Step) Reset() error {
	if s == nil || s.s == nil {
		return freedErr("odeiv2_step_reset")
	}
	err := backend.StepReset(s.s)
	runtime.KeepAlive(s)
	return err
}

// Name returns the algorithm name, such as "rkf45".
func (s *Step) Name() string {
	if s == nil || s.s == nil {
		return ""
	}
	name := backend.StepName(s.s)
	runtime.KeepAlive(s)
	return name
}

// Order returns the order of the method on exact quadratures.
func (s *Step) Order() int {
	if s == nil || s.s == nil {
		return 0
	}
	o := backend.StepOrder(s.s)
	runtime.KeepAlive(s)
	return o
}

// SetDriver attaches a driver to the stepper. The implicit and multistep
// algorithms require one before Apply.
func (s *Step) SetDriver(d *Driver) error {
	if s == nil || s.s == nil || d == nil || d.d == nil {
		return freedErr("odeiv2_step_set_driver")
	}
	err := backend.StepSetDriver(s.s, d.d)
	runtime.KeepAlive(s)
	runtime.KeepAlive(d)
	return err
}

// Apply advances y in place from t by the fixed step h and stores local
// error estimates in yerr. dydtIn may carry the derivatives at t from a
// previous step to save an evaluation; dydtOut, when non-nil, receives
// the derivatives at t+h. All non-nil slices must have the system
// dimension.
func (s *Step) Apply(sys *System, t, h float64, y, yerr, dydtIn, dydtOut []float64) error {
	if s == nil || s.s == nil {
		return freedErr("odeiv2_step_apply")
	}
	if sys == nil || sys.Dim != s.dim {
		return &gsl.Error{Op: "odeiv2_step_apply", Code: gsl.EBadLen}
	}
	if len(y) != s.dim || len(yerr) != s.dim ||
		(dydtIn != nil && len(dydtIn) != s.dim) || (dydtOut != nil && len(dydtOut) != s.dim) {
		return &gsl.Error{Op: "odeiv2_step_apply", Code: gsl.EBadLen}
	}
	nsys, err := sys.alloc("odeiv2_step_apply")
	if err != nil {
		return err
	}
	defer backend.SystemFree(nsys)
	err = backend.StepApply(s.s, t, h, y, yerr, dydtIn, dydtOut, nsys)
	runtime.KeepAlive(s)
	return err
}

// Step size adjustment outcomes reported by Control.HAdjust.
const (
	HAdjDec = backend.HAdjDec // step size was decreased; retry the step
	HAdjNil = backend.HAdjNil // step size unchanged
	HAdjInc = backend.HAdjInc // step size was increased for the next step
)

// Control chooses step sizes from the local error estimates of a Step.
type Control struct {
	c backend.OdeControl
}

func newControl(h backend.OdeControl, err error) (*Control, error) {
	if err != nil {
		return nil, err
	}
	c := &Control{c: h}
	runtime.SetFinalizer(c, (*Control).Free)
	return c, nil
}

// NewControlStandard creates a control keeping the local error within
// epsAbs + epsRel * (aY |y_i| + aDydt h |y'_i|) for each component.
func NewControlStandard(epsAbs, epsRel, aY, aDydt float64) (*Control, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	return newControl(backend.ControlAllocStandard(epsAbs, epsRel, aY, aDydt))
}

// NewControlY creates a control scaled to the solution values, equivalent
// to the standard control with aY=1, aDydt=0.
func NewControlY(epsAbs, epsRel float64) (*Control, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	return newControl(backend.ControlAllocY(epsAbs, epsRel))
}

// NewControlYP creates a control scaled to the derivative values,
// equivalent to the standard control with aY=0, aDydt=1.
func NewControlYP(epsAbs, epsRel float64) (*Control, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	return newControl(backend.ControlAllocYP(epsAbs, epsRel))
}

// NewControlScaled creates a control with a separate absolute error scale
// for each solution component.
func NewControlScaled(epsAbs, epsRel, aY, aDydt float64, scaleAbs []float64) (*Control, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if len(scaleAbs) == 0 {
		return nil, &gsl.Error{Op: "odeiv2_control_scaled_new", Code: gsl.EInval}
	}
	return newControl(backend.ControlAllocScaled(epsAbs, epsRel, aY, aDydt, scaleAbs))
}

// Free releases the native control object. It is idempotent and safe on a
// nil receiver.
func (c *Control) Free() {
	if c != nil && c.c != nil {
		backend.ControlFree(c.c)
		c.c = nil
		runtime.SetFinalizer(c, nil)
	}
}

// Name returns the control name, such as "standard".
func (c *Control) Name() string {
	if c == nil || c.c == nil {
		return ""
	}
	name := backend.ControlName(c.c)
	runtime.KeepAlive(c)
	return name
}

// HAdjust rescales the step size h based on the last step's solution y,
// error estimates yerr and derivatives dydt, returning HAdjDec, HAdjNil
// or HAdjInc together with the new step size.
func (c *Control) HAdjust(s *Step, y, yerr, dydt []float64, h float64) (adj int, newH float64, err error) {
	if c == nil || c.c == nil || s == nil || s.s == nil {
		return 0, 0, freedErr("odeiv2_control_hadjust")
	}
	if len(y) != s.dim || len(yerr) != s.dim || len(dydt) != s.dim {
		return 0, 0, &gsl.Error{Op: "odeiv2_control_hadjust", Code: gsl.EBadLen}
	}
	adj, newH = backend.ControlHAdjust(c.c, s.s, y, yerr, dydt, h)
	runtime.KeepAlive(c)
	runtime.KeepAlive(s)
	return adj, newH, nil
}

// ErrLevel returns the desired error level for solution component ind
// given its value y, derivative dydt and the step size h.
func (c *Control) ErrLevel(y, dydt, h float64, ind int) (float64, error) {
	if c == nil || c.c == nil {
		return 0, freedErr("odeiv2_control_errlevel")
	}
	lev, err := backend.ControlErrLevel(c.c, y, dydt, h, ind)
	runtime.KeepAlive(c)
	return lev, err
}

// Evolve runs the adaptive loop combining a Step and a Control, retrying
// rejected steps with smaller sizes.
type Evolve struct {
	e   backend.OdeEvolve
	dim int
}

// NewEvolve allocates an evolution object for systems of dimension dim.
func NewEvolve(dim int) (*Evolve, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if dim <= 0 {
		return nil, &gsl.Error{Op: "odeiv2_evolve_alloc", Code: gsl.EInval}
	}
	h, err := backend.EvolveAlloc(dim)
	if err != nil {
		return nil, err
	}
	e := &Evolve{e: h, dim: dim}
	runtime.SetFinalizer(e, (*Evolve).Free)
	return e, nil
}

// Free releases the native evolution object. It is idempotent and safe on
// a nil receiver.
func (e *Evolve) Free() {
	if e != nil && e.e != nil {
		backend.EvolveFree(e.e)
		e.e = nil
		runtime.SetFinalizer(e, nil)
	}
}

// Reset clears the internal state, required after a change of direction
// or a discontinuous jump in the solution.
func (e *Evolve) Reset() error {
	if e == nil || e.e == nil {
		return freedErr("odeiv2_evolve_reset")
	}
	err := backend.EvolveReset(e.e)
	runtime.KeepAlive(e)
	return err
}

func (e *Evolve) check(op string, c *Control, s *Step, sys *System, y []float64) error {
	if e == nil || e.e == nil || c == nil || c.c == nil || s == nil || s.s == nil {
		return freedErr(op)
	}
	if sys == nil || sys.Dim != e.dim || s.dim != e.dim || len(y) != e.dim {
		return &gsl.Error{Op: op, Code: gsl.EBadLen}
	}
	return nil
}

// Apply advances the system from (t, y) toward t1 by one adaptively sized
// step, updating y in place. It returns the new t and the step size
// suggested for the next call; pass the latter back as h. t never
// overshoots t1.
func (e *Evolve) Apply(c *Control, s *Step, sys *System, t, t1, h float64, y []float64) (tOut, hOut float64, err error) {
	if err := e.check("odeiv2_evolve_apply", c, s, sys, y); err != nil {
		return t, h, err
	}
	nsys, err := sys.alloc("odeiv2_evolve_apply")
	if err != nil {
		return t, h, err
	}
	defer backend.SystemFree(nsys)
	tOut, hOut, err = backend.EvolveApply(e.e, c.c, s.s, nsys, t, t1, h, y)
	runtime.KeepAlive(e)
	runtime.KeepAlive(c)
	runtime.KeepAlive(s)
	return tOut, hOut, err
}

// ApplyFixedStep advances the system by exactly h, returning the new t.
// The step is rejected (with the time unchanged) when the control deems
// its local error too large.
func (e *Evolve) ApplyFixedStep(c *Control, s *Step, sys *System, t, h float64, y []float64) (tOut float64, err error) {
	if err := e.check("odeiv2_evolve_apply_fixed_step", c, s, sys, y); err != nil {
		return t, err
	}
	nsys, err := sys.alloc("odeiv2_evolve_apply_fixed_step")
	if err != nil {
		return t, err
	}
	defer backend.SystemFree(nsys)
	tOut, err = backend.EvolveApplyFixedStep(e.e, c.c, s.s, nsys, t, h, y)
	runtime.KeepAlive(e)
	runtime.KeepAlive(c)
	runtime.KeepAlive(s)
	return tOut, err
}
