package odeiv

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Driver packages a stepper, a control and an evolver behind a single
// Apply call. It is the recommended entry point of the package.
//
// The driver keeps the registered Go callbacks of its System alive for
// its whole lifetime; Free releases the native driver and the callback
// registration exactly once.
type Driver struct {
	d   backend.OdeDriver
	sys *backend.OdeSystem
	dim int
}

func newDriver(op string, sys *System, alloc func(*backend.OdeSystem) (backend.OdeDriver, error)) (*Driver, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	nsys, err := sys.alloc(op)
	if err != nil {
		return nil, err
	}
	h, err := alloc(nsys)
	if err != nil {
		backend.SystemFree(nsys)
		return nil, err
	}
	d := &Driver{d: h, sys: nsys, dim: sys.Dim}
	runtime.SetFinalizer(d, (*Driver).Free)
	return d, nil
}

// NewDriverY creates a driver with a control scaled to the solution
// values. hstart is the initial step size guess; t selects the stepping
// algorithm.
func NewDriverY(sys *System, t StepType, hstart, epsAbs, epsRel float64) (*Driver, error) {
	if t.t == nil {
		return nil, &gsl.Error{Op: "odeiv2_driver_alloc_y_new", Code: gsl.EInval}
	}
	return newDriver("odeiv2_driver_alloc_y_new", sys, func(ns *backend.OdeSystem) (backend.OdeDriver, error) {
		return backend.DriverAllocY(ns, t.t, hstart, epsAbs, epsRel)
	})
}

// NewDriverYP creates a driver with a control scaled to the derivative
// values.
func NewDriverYP(sys *System, t StepType, hstart, epsAbs, epsRel float64) (*Driver, error) {
	if t.t == nil {
		return nil, &gsl.Error{Op: "odeiv2_driver_alloc_yp_new", Code: gsl.EInval}
	}
	return newDriver("odeiv2_driver_alloc_yp_new", sys, func(ns *backend.OdeSystem) (backend.OdeDriver, error) {
		return backend.DriverAllocYP(ns, t.t, hstart, epsAbs, epsRel)
	})
}

// NewDriverStandard creates a driver with the standard blended control
// (see NewControlStandard).
func NewDriverStandard(sys *System, t StepType, hstart, epsAbs, epsRel, aY, aDydt float64) (*Driver, error) {
	if t.t == nil {
		return nil, &gsl.Error{Op: "odeiv2_driver_alloc_standard_new", Code: gsl.EInval}
	}
	return newDriver("odeiv2_driver_alloc_standard_new", sys, func(ns *backend.OdeSystem) (backend.OdeDriver, error) {
		return backend.DriverAllocStandard(ns, t.t, hstart, epsAbs, epsRel, aY, aDydt)
	})
}

// NewDriverScaled creates a driver with per-component absolute error
// scales. len(scaleAbs) must equal the system dimension.
func NewDriverScaled(sys *System, t StepType, hstart, epsAbs, epsRel, aY, aDydt float64, scaleAbs []float64) (*Driver, error) {
	if t.t == nil {
		return nil, &gsl.Error{Op: "odeiv2_driver_alloc_scaled_new", Code: gsl.EInval}
	}
	if sys != nil && len(scaleAbs) != sys.Dim {
		return nil, &gsl.Error{Op: "odeiv2_driver_alloc_scaled_new", Code: gsl.EBadLen}
	}
	return newDriver("odeiv2_driver_alloc_scaled_new", sys, func(ns *backend.OdeSystem) (backend.OdeDriver, error) {
		return backend.DriverAllocScaled(ns, t.t, hstart, epsAbs, epsRel, aY, aDydt, scaleAbs)
	})
}

// Free releases the native driver and the callback registration of its
// system. It is idempotent and safe on a nil receiver.
func (d *Driver) Free() {
	if d == nil {
		return
	}
	if d.d != nil {
		backend.DriverFree(d.d)
		d.d = nil
		runtime.SetFinalizer(d, nil)
	}
	if d.sys != nil {
		backend.SystemFree(d.sys)
		d.sys = nil
	}
}

// SetHMin sets the smallest step size the driver may take.
func (d *Driver) SetHMin(hmin float64) error {
	if d == nil || d.d == nil {
		return freedErr("odeiv2_driver_set_hmin")
	}
	err := backend.DriverSetHMin(d.d, hmin)
	runtime.KeepAlive(d)
	return err
}

// SetHMax sets the largest step size the driver may take.
func (d *Driver) SetHMax(hmax float64) error {
	if d == nil || d.d == nil {
		return freedErr("odeiv2_driver_set_hmax")
	}
	err := backend.DriverSetHMax(d.d, hmax)
	runtime.KeepAlive(d)
	return err
}

// SetNMax caps the number of steps a single Apply may take; 0 removes the
// cap. Hitting the cap makes Apply report EMaxIter.
func (d *Driver) SetNMax(nmax uint64) error {
	if d == nil || d.d == nil {
		return freedErr("odeiv2_driver_set_nmax")
	}
	err := backend.DriverSetNMax(d.d, nmax)
	runtime.KeepAlive(d)
	return err
}

// Apply integrates the system from (t, y) to t1, updating y in place and
// returning the time actually reached. On failure the returned time
// reflects the partial progress made before the error.
func (d *Driver) Apply(t, t1 float64, y []float64) (float64, error) {
	if d == nil || d.d == nil {
		return t, freedErr("odeiv2_driver_apply")
	}
	if len(y) != d.dim {
		return t, &gsl.Error{Op: "odeiv2_driver_apply", Code: gsl.EBadLen}
	}
	tOut, err := backend.DriverApply(d.d, t, t1, y)
	runtime.KeepAlive(d)
	return tOut, err
}

// ApplyFixedStep integrates the system from (t, y) by n fixed steps of
// size h, ignoring the control.
func (d *Driver) ApplyFixedStep(t, h float64, n uint64, y []float64) (float64, error) {
	if d == nil || d.d == nil {
		return t, freedErr("odeiv2_driver_apply_fixed_step")
	}
	if len(y) != d.dim {
		return t, &gsl.Error{Op: "odeiv2_driver_apply_fixed_step", Code: gsl.EBadLen}
	}
	tOut, err := backend.DriverApplyFixedStep(d.d, t, h, n, y)
	runtime.KeepAlive(d)
	return tOut, err
}

// Reset clears the driver's internal state, keeping the configured step
// bounds.
func (d *Driver) Reset() error {
	if d == nil || d.d == nil {
		return freedErr("odeiv2_driver_reset")
	}
	err := backend.DriverReset(d.d)
	runtime.KeepAlive(d)
	return err
}

// ResetHStart clears the internal state and restarts with the given
// initial step size.
func (d *Driver) ResetHStart(hstart float64) error {
	if d == nil || d.d == nil {
		return freedErr("odeiv2_driver_reset_hstart")
	}
	err := backend.DriverResetHStart(d.d, hstart)
	runtime.KeepAlive(d)
	return err
}
