package integration

import (
	"math"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

func ws(t *testing.T, limit int) *Workspace {
	t.Helper()
	w, err := NewWorkspace(limit)
	if err != nil {
		t.Fatalf("NewWorkspace(%d): %v", limit, err)
	}
	t.Cleanup(w.Free)
	return w
}

func TestNewWorkspaceRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -5} {
		w, err := NewWorkspace(limit)
		if w != nil || gsl.CodeOf(err) != gsl.EInval {
			t.Errorf("NewWorkspace(%d) = %v, %v; want nil, EInval", limit, w, err)
		}
	}
}

func TestNilFunctionAndFreedWorkspace(t *testing.T) {
	f := math.Sqrt

	if _, _, _, err := QNG(nil, 0, 1, 0, 1e-7); gsl.CodeOf(err) != gsl.EBadFunc {
		t.Errorf("QNG(nil) err = %v, want EBadFunc", err)
	}

	var w *Workspace
	if _, _, err := w.QAGS(f, 0, 1, 0, 1e-7); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("nil workspace QAGS err = %v, want EFault", err)
	}
	if w.Limit() != 0 {
		t.Errorf("nil workspace Limit = %d, want 0", w.Limit())
	}
}

func TestQAGRejectsBadKey(t *testing.T) {
	gsltest.RequireNative(t)

	w := ws(t, 100)
	if _, _, err := w.QAG(math.Exp, 0, 1, 0, 1e-7, 0); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("QAG key 0 err = %v, want EInval", err)
	}
}

func TestQNGSmoothIntegrand(t *testing.T) {
	gsltest.RequireNative(t)

	// Integral of cos over [0, pi/2] is exactly 1.
	result, abserr, neval, err := QNG(math.Cos, 0, math.Pi/2, 0, 1e-10)
	if err != nil {
		t.Fatalf("QNG: %v", err)
	}
	gsltest.CloseAbs(t, result, 1, 1e-12, "QNG cos")
	if abserr > 1e-10 {
		t.Errorf("QNG abserr = %g, want <= 1e-10", abserr)
	}
	if neval == 0 {
		t.Error("QNG reported zero evaluations")
	}
}

func TestQAGOscillatory(t *testing.T) {
	gsltest.RequireNative(t)

	// Integral of sin(30x) over [0, 2pi] is (1 - cos(60pi))/30 = 0.
	w := ws(t, 1000)
	f := func(x float64) float64 { return math.Sin(30 * x) }
	result, _, err := w.QAG(f, 0, 2*math.Pi, 1e-10, 0, Gauss61)
	if err != nil {
		t.Fatalf("QAG: %v", err)
	}
	gsltest.CloseAbs(t, result, 0, 1e-9, "QAG sin(30x)")
}

// The reference integral from the GSL manual's QAGS example:
// int_0^1 x^{-1/2} log(x) dx = -4.
func TestQAGSEndpointSingularity(t *testing.T) {
	gsltest.RequireNative(t)

	w := ws(t, 1000)
	f := func(x float64) float64 { return math.Log(x) / math.Sqrt(x) }
	result, abserr, err := w.QAGS(f, 0, 1, 0, 1e-7)
	if err != nil {
		t.Fatalf("QAGS: %v", err)
	}
	gsltest.CloseAbs(t, result, -4, 1e-6, "QAGS x^-1/2 log x")
	if abserr > 1e-6 {
		t.Errorf("QAGS abserr = %g, want small", abserr)
	}
}

func TestInfiniteIntervals(t *testing.T) {
	gsltest.RequireNative(t)

	w := ws(t, 1000)
	gauss := func(x float64) float64 { return math.Exp(-x * x) }

	result, _, err := w.QAGI(gauss, 0, 1e-9)
	if err != nil {
		t.Fatalf("QAGI: %v", err)
	}
	gsltest.CloseRel(t, result, math.Sqrt(math.Pi), 1e-8, "QAGI exp(-x^2)")

	result, _, err = w.QAGIU(gauss, 0, 0, 1e-9)
	if err != nil {
		t.Fatalf("QAGIU: %v", err)
	}
	gsltest.CloseRel(t, result, math.Sqrt(math.Pi)/2, 1e-8, "QAGIU exp(-x^2)")

	result, _, err = w.QAGIL(gauss, 0, 0, 1e-9)
	if err != nil {
		t.Fatalf("QAGIL: %v", err)
	}
	gsltest.CloseRel(t, result, math.Sqrt(math.Pi)/2, 1e-8, "QAGIL exp(-x^2)")
}

func TestDivergentIntegralReported(t *testing.T) {
	gsltest.RequireNative(t)

	w := ws(t, 1000)
	f := func(x float64) float64 { return 1 / x }
	_, _, err := w.QAGS(f, 0, 1, 1e-10, 1e-10)
	if err == nil {
		t.Fatal("QAGS of 1/x on [0,1] converged; want failure")
	}
	switch gsl.CodeOf(err) {
	case gsl.EDiverge, gsl.ESing, gsl.ERound, gsl.EMaxIter:
	default:
		t.Errorf("QAGS 1/x err = %v, want a native convergence failure", err)
	}
}

func TestWorkspaceReuse(t *testing.T) {
	gsltest.RequireNative(t)

	w := ws(t, 200)
	for i := 0; i < 3; i++ {
		result, _, err := w.QAGS(math.Exp, 0, 1, 0, 1e-9)
		if err != nil {
			t.Fatalf("QAGS round %d: %v", i, err)
		}
		gsltest.CloseRel(t, result, math.E-1, 1e-9, "QAGS exp reuse")
	}
	if w.Limit() != 200 {
		t.Errorf("Limit = %d, want 200", w.Limit())
	}
}
