package deriv

import (
	"math"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

func TestNilFunctionRejected(t *testing.T) {
	for _, tc := range []struct {
		name string
		call func() (float64, float64, error)
	}{
		{"Central", func() (float64, float64, error) { return Central(nil, 1, 1e-8) }},
		{"Forward", func() (float64, float64, error) { return Forward(nil, 1, 1e-8) }},
		{"Backward", func() (float64, float64, error) { return Backward(nil, 1, 1e-8) }},
	} {
		if _, _, err := tc.call(); gsl.CodeOf(err) != gsl.EBadFunc {
			t.Errorf("%s(nil) err = %v, want EBadFunc", tc.name, err)
		}
	}
}

// The x^1.5 cases reproduce the worked example from the GSL manual's
// differentiation chapter.
func TestPowerThreeHalves(t *testing.T) {
	gsltest.RequireNative(t)

	f := func(x float64) float64 { return math.Pow(x, 1.5) }

	r, abserr, err := Central(f, 2, 1e-8)
	if err != nil {
		t.Fatalf("Central: %v", err)
	}
	want := 1.5 * math.Sqrt(2)
	gsltest.CloseAbs(t, r, want, abserr, "Central at x=2")
	gsltest.CloseRel(t, r, want, 1e-8, "Central at x=2")

	// At x=0 the derivative exists only from the right.
	r, abserr, err = Forward(f, 0, 1e-8)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	gsltest.CloseAbs(t, r, 0, abserr+1e-8, "Forward at x=0")
}

func TestSchemesAgreeOnSmoothFunction(t *testing.T) {
	gsltest.RequireNative(t)

	x := 0.7
	want := math.Cos(x)

	for _, tc := range []struct {
		name string
		call func(func(float64) float64, float64, float64) (float64, float64, error)
	}{
		{"Central", Central},
		{"Forward", Forward},
		{"Backward", Backward},
	} {
		r, _, err := tc.call(math.Sin, x, 1e-8)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		gsltest.CloseRel(t, r, want, 1e-6, tc.name+" d/dx sin")
	}
}
