package interp

import (
	"math"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

func spline(t *testing.T, typ Type, xs, ys []float64) *Spline {
	t.Helper()
	s, err := NewSpline(typ, xs, ys)
	if err != nil {
		t.Fatalf("NewSpline(%s): %v", typ.Name(), err)
	}
	t.Cleanup(s.Free)
	return s
}

func TestNewSplineValidation(t *testing.T) {
	gsltest.RequireNative(t)

	// Zero Type.
	if _, err := NewSpline(Type{}, []float64{0, 1}, []float64{0, 1}); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("zero Type err = %v, want EInval", err)
	}
	// Length mismatch.
	if _, err := NewSpline(Linear(), []float64{0, 1, 2}, []float64{0, 1}); gsl.CodeOf(err) != gsl.EBadLen {
		t.Errorf("length mismatch err = %v, want EBadLen", err)
	}
	// Too few points for a cubic spline (min size 3).
	if _, err := NewSpline(CSpline(), []float64{0, 1}, []float64{0, 1}); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("too few points err = %v, want EInval", err)
	}
	// Non-increasing x values.
	if _, err := NewSpline(Linear(), []float64{0, 1, 1}, []float64{0, 1, 2}); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("non-increasing xs err = %v, want EInval", err)
	}
}

func TestTypeDescriptors(t *testing.T) {
	gsltest.RequireNative(t)

	names := []struct {
		typ  Type
		name string
	}{
		{Linear(), "linear"},
		{Polynomial(), "polynomial"},
		{CSpline(), "cspline"},
		{CSplinePeriodic(), "cspline-periodic"},
		{Akima(), "akima"},
		{AkimaPeriodic(), "akima-periodic"},
		{Steffen(), "steffen"},
	}
	for _, tc := range names {
		if got := tc.typ.Name(); got != tc.name {
			t.Errorf("Name = %q, want %q", got, tc.name)
		}
		if tc.typ.MinSize() < 2 {
			t.Errorf("%s MinSize = %d, want >= 2", tc.name, tc.typ.MinSize())
		}
	}

	// Sizes documented in the GSL manual.
	if got := Linear().MinSize(); got != 2 {
		t.Errorf("linear MinSize = %d, want 2", got)
	}
	if got := CSpline().MinSize(); got != 3 {
		t.Errorf("cspline MinSize = %d, want 3", got)
	}
	if got := Akima().MinSize(); got != 5 {
		t.Errorf("akima MinSize = %d, want 5", got)
	}
}

func TestSplineInterpolatesKnots(t *testing.T) {
	gsltest.RequireNative(t)

	xs := []float64{0, 0.5, 1.2, 2, 3.1, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	for _, typ := range []Type{Linear(), CSpline(), Akima(), Steffen()} {
		s := spline(t, typ, xs, ys)
		for i, x := range xs {
			y, err := s.Eval(x, nil)
			if err != nil {
				t.Fatalf("%s Eval(knot %d): %v", typ.Name(), i, err)
			}
			gsltest.CloseAbs(t, y, ys[i], 1e-12, typ.Name()+" at knot")
		}
	}
}

func TestCSplineApproximatesSmoothFunction(t *testing.T) {
	gsltest.RequireNative(t)

	// Dense sin samples; cubic interpolation error scales as h^4.
	n := 33
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = 2 * math.Pi * float64(i) / float64(n-1)
		ys[i] = math.Sin(xs[i])
	}
	s := spline(t, CSpline(), xs, ys)
	a, err := NewAccel()
	if err != nil {
		t.Fatalf("NewAccel: %v", err)
	}
	defer a.Free()

	for x := 0.1; x < 2*math.Pi; x += 0.17 {
		y, err := s.Eval(x, a)
		if err != nil {
			t.Fatalf("Eval(%g): %v", x, err)
		}
		gsltest.CloseAbs(t, y, math.Sin(x), 1e-3, "cspline sin")

		d, err := s.EvalDeriv(x, a)
		if err != nil {
			t.Fatalf("EvalDeriv(%g): %v", x, err)
		}
		gsltest.CloseAbs(t, d, math.Cos(x), 1e-2, "cspline d/dx sin")
	}

	// Integral of sin over a full period vanishes.
	integ, err := s.EvalInteg(s.X0(), s.X1(), a)
	if err != nil {
		t.Fatalf("EvalInteg: %v", err)
	}
	gsltest.CloseAbs(t, integ, 0, 1e-3, "cspline integral")

	hits, misses := a.Stats()
	if hits+misses == 0 {
		t.Error("accelerator saw no lookups")
	}
	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if h, m := a.Stats(); h != 0 || m != 0 {
		t.Errorf("Stats after Reset = %d, %d; want 0, 0", h, m)
	}
}

func TestEvalOutsideDomain(t *testing.T) {
	gsltest.RequireNative(t)

	s := spline(t, Linear(), []float64{0, 1, 2}, []float64{0, 1, 4})
	if _, err := s.Eval(-0.5, nil); gsl.CodeOf(err) != gsl.EDom {
		t.Errorf("Eval below domain err = %v, want EDom", err)
	}
	if _, err := s.Eval(2.5, nil); gsl.CodeOf(err) != gsl.EDom {
		t.Errorf("Eval above domain err = %v, want EDom", err)
	}
	if s.X0() != 0 || s.X1() != 2 {
		t.Errorf("domain = [%g, %g], want [0, 2]", s.X0(), s.X1())
	}
}

func TestAccelFind(t *testing.T) {
	gsltest.RequireNative(t)

	a, err := NewAccel()
	if err != nil {
		t.Fatalf("NewAccel: %v", err)
	}
	defer a.Free()

	xs := []float64{0, 1, 2, 3, 4}
	for _, tc := range []struct {
		x    float64
		want int
	}{
		{0.5, 0},
		{1.5, 1},
		{3.9, 3},
	} {
		if got := a.Find(xs, tc.x); got != tc.want {
			t.Errorf("Find(%g) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestFreedHandles(t *testing.T) {
	var s *Spline
	var a *Accel

	s.Free()
	a.Free()

	if _, err := s.Eval(0, nil); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("nil spline Eval err = %v, want EFault", err)
	}
	if s.Name() != "" || s.MinSize() != 0 {
		t.Error("nil spline getters must return zero values")
	}
	if a.Find([]float64{0, 1}, 0.5) != 0 {
		t.Error("nil accel Find must return 0")
	}
	if err := a.Reset(); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("nil accel Reset err = %v, want EFault", err)
	}
}
