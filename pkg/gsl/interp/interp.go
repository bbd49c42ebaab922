// Package interp exposes gsl_spline, the higher-level interpolation
// interface that keeps its own copy of the data points, together with the
// gsl_interp_accel lookup accelerator.
//
// A Spline is built from a scheme (Linear, CSpline, Akima, ...) and a set
// of strictly increasing x values. Evaluation outside [x[0], x[n-1]]
// reports EDom. An Accel caches the bracketing interval of the last
// lookup; callers evaluating at monotonically advancing points should
// reuse one, but never share it between goroutines.
package interp

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Type identifies an interpolation scheme. The zero Type is invalid;
// obtain one from the scheme constructors.
type Type struct {
	t backend.InterpType
}

// Linear returns the piecewise linear scheme.
func Linear() Type { return Type{t: backend.InterpTypeLinear()} }

// Polynomial returns global polynomial interpolation. It is numerically
// sensible only for small point counts.
func Polynomial() Type { return Type{t: backend.InterpTypePolynomial()} }

// CSpline returns the cubic spline with natural boundary conditions.
func CSpline() Type { return Type{t: backend.InterpTypeCSpline()} }

// CSplinePeriodic returns the cubic spline with periodic boundary
// conditions; the first and last y values must match.
func CSplinePeriodic() Type { return Type{t: backend.InterpTypeCSplinePeriodic()} }

// Akima returns the non-rounded Akima spline.
func Akima() Type { return Type{t: backend.InterpTypeAkima()} }

// AkimaPeriodic returns the Akima spline with periodic boundary
// conditions.
func AkimaPeriodic() Type { return Type{t: backend.InterpTypeAkimaPeriodic()} }

// Steffen returns Steffen's monotone scheme, which never overshoots the
// data values.
func Steffen() Type { return Type{t: backend.InterpTypeSteffen()} }

// Name returns the native name of the scheme, such as "cspline", or the
// empty string for the zero Type.
func (t Type) Name() string {
	if t.t == nil {
		return ""
	}
	return backend.InterpTypeName(t.t)
}

// MinSize returns the smallest number of points the scheme accepts.
func (t Type) MinSize() int {
	if t.t == nil {
		return 0
	}
	return backend.InterpTypeMinSize(t.t)
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// Accel caches the most recent bracketing interval of an index lookup.
//
// Sharing one Accel between goroutines corrupts its statistics and may
// return stale intervals; give each goroutine its own.
type Accel struct {
	a backend.Accel
}

// NewAccel allocates a lookup accelerator.
func NewAccel() (*Accel, error) {
	h, err := backend.AccelAlloc()
	if err != nil {
		return nil, err
	}
	a := &Accel{a: h}
	runtime.SetFinalizer(a, (*Accel).Free)
	return a, nil
}

// Free releases the native accelerator. It is idempotent and safe on a
// nil receiver.
func (a *Accel) Free() {
	if a != nil && a.a != nil {
		backend.AccelFree(a.a)
		a.a = nil
		runtime.SetFinalizer(a, nil)
	}
}

// Find returns the index i such that xs[i] <= x < xs[i+1], caching it for
// the next lookup. xs must be sorted ascending. It returns 0 on a freed
// accelerator.
func (a *Accel) Find(xs []float64, x float64) int {
	if a == nil || a.a == nil || len(xs) == 0 {
		return 0
	}
	i := backend.AccelFind(a.a, xs, x)
	runtime.KeepAlive(a)
	return i
}

// Reset clears the cached interval and the hit and miss counters.
func (a *Accel) Reset() error {
	if a == nil || a.a == nil {
		return freedErr("interp_accel_reset")
	}
	err := backend.AccelReset(a.a)
	runtime.KeepAlive(a)
	return err
}

// Stats returns the cache hit and miss counters accumulated since the
// last Reset.
func (a *Accel) Stats() (hits, misses uint64) {
	if a == nil || a.a == nil {
		return 0, 0
	}
	hits, misses = backend.AccelStats(a.a)
	runtime.KeepAlive(a)
	return hits, misses
}

func (a *Accel) handle() backend.Accel {
	if a == nil {
		return nil
	}
	return a.a
}

// Spline is an interpolating function built over a fixed set of data
// points, which it copies at construction.
type Spline struct {
	s      backend.Spline
	x0, x1 float64 // interpolation domain endpoints
}

// NewSpline builds a spline of the given scheme through the points
// (xs[i], ys[i]). xs must be strictly increasing, len(xs) must equal
// len(ys) and meet the scheme's MinSize.
func NewSpline(t Type, xs, ys []float64) (*Spline, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if t.t == nil {
		return nil, &gsl.Error{Op: "spline_alloc", Code: gsl.EInval}
	}
	if len(xs) != len(ys) {
		return nil, &gsl.Error{Op: "spline_init", Code: gsl.EBadLen}
	}
	if len(xs) < backend.InterpTypeMinSize(t.t) {
		return nil, &gsl.Error{Op: "spline_alloc", Code: gsl.EInval}
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, &gsl.Error{Op: "spline_init", Code: gsl.EInval}
		}
	}
	h, err := backend.SplineAlloc(t.t, len(xs))
	if err != nil {
		return nil, err
	}
	if err := backend.SplineInit(h, xs, ys); err != nil {
		backend.SplineFree(h)
		return nil, err
	}
	s := &Spline{s: h, x0: xs[0], x1: xs[len(xs)-1]}
	runtime.SetFinalizer(s, (*Spline).Free)
	return s, nil
}

// Free releases the native spline. It is idempotent and safe on a nil
// receiver.
func (s *Spline) Free() {
	if s != nil && s.s != nil {
		backend.SplineFree(s.s)
		s.s = nil
		runtime.SetFinalizer(s, nil)
	}
}

// Name returns the scheme name of this spline.
func (s *Spline) Name() string {
	if s == nil || s.s == nil {
		return ""
	}
	name := backend.SplineName(s.s)
	runtime.KeepAlive(s)
	return name
}

// MinSize returns the smallest number of points the scheme accepts.
func (s *Spline) MinSize() int {
	if s == nil || s.s == nil {
		return 0
	}
	n := backend.SplineMinSize(s.s)
	runtime.KeepAlive(s)
	return n
}

// X0 returns the lower end of the interpolation domain.
func (s *Spline) X0() float64 {
	if s == nil || s.s == nil {
		return 0
	}
	return s.x0
}

// X1 returns the upper end of the interpolation domain.
func (s *Spline) X1() float64 {
	if s == nil || s.s == nil {
		return 0
	}
	return s.x1
}

func (s *Spline) eval(op string, a *Accel, f func(backend.Spline, backend.Accel) (float64, error)) (float64, error) {
	if s == nil || s.s == nil {
		return 0, freedErr(op)
	}
	y, err := f(s.s, a.handle())
	runtime.KeepAlive(s)
	runtime.KeepAlive(a)
	return y, err
}

// Eval returns the interpolated value at x. Outside the data range it
// reports EDom. a may be nil to skip accelerated lookup.
func (s *Spline) Eval(x float64, a *Accel) (float64, error) {
	return s.eval("spline_eval_e", a, func(h backend.Spline, ah backend.Accel) (float64, error) {
		return backend.SplineEvalE(h, x, ah)
	})
}

// EvalDeriv returns the first derivative of the interpolant at x.
func (s *Spline) EvalDeriv(x float64, a *Accel) (float64, error) {
	return s.eval("spline_eval_deriv_e", a, func(h backend.Spline, ah backend.Accel) (float64, error) {
		return backend.SplineEvalDerivE(h, x, ah)
	})
}

// EvalDeriv2 returns the second derivative of the interpolant at x.
func (s *Spline) EvalDeriv2(x float64, a *Accel) (float64, error) {
	return s.eval("spline_eval_deriv2_e", a, func(h backend.Spline, ah backend.Accel) (float64, error) {
		return backend.SplineEvalDeriv2E(h, x, ah)
	})
}

// EvalInteg returns the definite integral of the interpolant over [lo,
// hi], which must lie within the data range.
func (s *Spline) EvalInteg(lo, hi float64, a *Accel) (float64, error) {
	return s.eval("spline_eval_integ_e", a, func(h backend.Spline, ah backend.Accel) (float64, error) {
		return backend.SplineEvalIntegE(h, lo, hi, ah)
	})
}
