// Package integration exposes the one-dimensional quadrature routines of
// gsl_integration. QNG needs no state; the adaptive routines (QAG, QAGS
// and the infinite-interval variants) bisect the interval into
// subintervals held in a Workspace.
//
// The integrand is an ordinary Go func(float64) float64, invoked from
// native code through a registered trampoline. Routines that fail to
// converge report the library's own failure codes: EMaxIter when the
// subinterval limit is hit, ERound on roundoff trouble, ESing near a
// non-integrable singularity and EDiverge for divergent integrals.
package integration

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Gauss-Kronrod rule keys for QAG.
const (
	Gauss15 = backend.Gauss15
	Gauss21 = backend.Gauss21
	Gauss31 = backend.Gauss31
	Gauss41 = backend.Gauss41
	Gauss51 = backend.Gauss51
	Gauss61 = backend.Gauss61
)

func badFuncErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EBadFunc}
}

// QNG applies the non-adaptive Gauss-Kronrod-Patterson rules to f on
// [a, b], stopping at the first rule that meets either tolerance. It
// returns the integral estimate, an absolute error bound and the number of
// function evaluations used.
func QNG(f func(float64) float64, a, b, epsAbs, epsRel float64) (result, abserr float64, neval int, err error) {
	if f == nil {
		return 0, 0, 0, badFuncErr("integration_qng")
	}
	return backend.IntegQng(f, a, b, epsAbs, epsRel)
}

// Workspace holds the subinterval table used by the adaptive routines. A
// workspace may be reused across integrations but not shared between
// goroutines.
type Workspace struct {
	w     backend.IntegWorkspace
	limit int
}

// NewWorkspace allocates a workspace able to hold limit subintervals.
func NewWorkspace(limit int) (*Workspace, error) {
	if limit <= 0 {
		return nil, &gsl.Error{Op: "integration_workspace_alloc", Code: gsl.EInval}
	}
	h, err := backend.IntegWorkspaceAlloc(limit)
	if err != nil {
		return nil, err
	}
	w := &Workspace{w: h, limit: limit}
	runtime.SetFinalizer(w, (*Workspace).Free)
	return w, nil
}

// Free releases the native workspace. It is idempotent and safe on a nil
// receiver.
func (w *Workspace) Free() {
	if w != nil && w.w != nil {
		backend.IntegWorkspaceFree(w.w)
		w.w = nil
		runtime.SetFinalizer(w, nil)
	}
}

// Limit returns the maximum number of subintervals, or 0 for a freed
// workspace.
func (w *Workspace) Limit() int {
	if w == nil || w.w == nil {
		return 0
	}
	return w.limit
}

func (w *Workspace) check(op string, f func(float64) float64) error {
	if f == nil {
		return badFuncErr(op)
	}
	if w == nil || w.w == nil {
		return &gsl.Error{Op: op, Code: gsl.EFault}
	}
	return nil
}

// QAG integrates f on [a, b] adaptively with the Gauss-Kronrod rule
// selected by key (Gauss15..Gauss61). Higher-order rules suit smooth
// integrands; lower-order rules save evaluations on less regular ones.
func (w *Workspace) QAG(f func(float64) float64, a, b, epsAbs, epsRel float64, key int) (result, abserr float64, err error) {
	if err := w.check("integration_qag", f); err != nil {
		return 0, 0, err
	}
	if key < Gauss15 || key > Gauss61 {
		return 0, 0, &gsl.Error{Op: "integration_qag", Code: gsl.EInval}
	}
	result, abserr, err = backend.IntegQag(f, a, b, epsAbs, epsRel, w.limit, key, w.w)
	runtime.KeepAlive(w)
	return result, abserr, err
}

// QAGS integrates f on [a, b] adaptively with epsilon-algorithm
// extrapolation, converging even in the presence of integrable endpoint
// singularities.
func (w *Workspace) QAGS(f func(float64) float64, a, b, epsAbs, epsRel float64) (result, abserr float64, err error) {
	if err := w.check("integration_qags", f); err != nil {
		return 0, 0, err
	}
	result, abserr, err = backend.IntegQags(f, a, b, epsAbs, epsRel, w.limit, w.w)
	runtime.KeepAlive(w)
	return result, abserr, err
}

// QAGI integrates f over the whole real line, mapping it onto (0, 1]
// before applying QAGS.
func (w *Workspace) QAGI(f func(float64) float64, epsAbs, epsRel float64) (result, abserr float64, err error) {
	if err := w.check("integration_qagi", f); err != nil {
		return 0, 0, err
	}
	result, abserr, err = backend.IntegQagi(f, epsAbs, epsRel, w.limit, w.w)
	runtime.KeepAlive(w)
	return result, abserr, err
}

// QAGIU integrates f over [a, +inf).
func (w *Workspace) QAGIU(f func(float64) float64, a, epsAbs, epsRel float64) (result, abserr float64, err error) {
	if err := w.check("integration_qagiu", f); err != nil {
		return 0, 0, err
	}
	result, abserr, err = backend.IntegQagiu(f, a, epsAbs, epsRel, w.limit, w.w)
	runtime.KeepAlive(w)
	return result, abserr, err
}

// QAGIL integrates f over (-inf, b].
func (w *Workspace) QAGIL(f func(float64) float64, b, epsAbs, epsRel float64) (result, abserr float64, err error) {
	if err := w.check("integration_qagil", f); err != nil {
		return 0, 0, err
	}
	result, abserr, err = backend.IntegQagil(f, b, epsAbs, epsRel, w.limit, w.w)
	runtime.KeepAlive(w)
	return result, abserr, err
}
