package qrng

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

func seq(t *testing.T, typ Type, dim int) *Qrng {
	t.Helper()
	q, err := New(typ, dim)
	if err != nil {
		t.Fatalf("New(%s, %d): %v", typ.Name(), dim, err)
	}
	t.Cleanup(q.Free)
	return q
}

func TestNewValidation(t *testing.T) {
	gsltest.RequireNative(t)

	if _, err := New(Type{}, 2); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("zero Type err = %v, want EInval", err)
	}
	if _, err := New(Sobol(), 0); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("dim 0 err = %v, want EInval", err)
	}
	if _, err := New(Sobol(), Sobol().MaxDimension()+1); gsl.CodeOf(err) != gsl.EInval {
		t.Errorf("dim over max err = %v, want EInval", err)
	}
}

func TestTypeDescriptors(t *testing.T) {
	gsltest.RequireNative(t)

	for _, tc := range []struct {
		typ  Type
		name string
	}{
		{Sobol(), "sobol"},
		{Niederreiter2(), "niederreiter-base-2"},
		{Halton(), "halton"},
		{ReverseHalton(), "reversehalton"},
	} {
		if got := tc.typ.Name(); got != tc.name {
			t.Errorf("Name = %q, want %q", got, tc.name)
		}
		if tc.typ.MaxDimension() < 2 {
			t.Errorf("%s MaxDimension = %d, want >= 2", tc.name, tc.typ.MaxDimension())
		}
	}
}

func TestPointsInOpenUnitCube(t *testing.T) {
	gsltest.RequireNative(t)

	for _, typ := range []Type{Sobol(), Niederreiter2(), Halton(), ReverseHalton()} {
		q := seq(t, typ, 3)
		for i := 0; i < 100; i++ {
			x, err := q.Next()
			if err != nil {
				t.Fatalf("%s Next: %v", typ.Name(), err)
			}
			if len(x) != 3 {
				t.Fatalf("%s point dimension = %d, want 3", typ.Name(), len(x))
			}
			for j, v := range x {
				if v <= 0 || v >= 1 {
					t.Fatalf("%s point %d coordinate %d = %g, want in (0,1)", typ.Name(), i, j, v)
				}
			}
		}
	}
}

func TestResetReplaysSequence(t *testing.T) {
	gsltest.RequireNative(t)

	q := seq(t, Sobol(), 2)

	first := make([][]float64, 5)
	for i := range first {
		x, err := q.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		first[i] = x
	}

	if err := q.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	for i := range first {
		x, err := q.Next()
		if err != nil {
			t.Fatalf("Next after Reset: %v", err)
		}
		if diff := cmp.Diff(first[i], x); diff != "" {
			t.Fatalf("point %d differs after Reset (-first +replay):\n%s", i, diff)
		}
	}
}

func TestCloneContinuesInLockstep(t *testing.T) {
	gsltest.RequireNative(t)

	q := seq(t, Halton(), 2)
	for i := 0; i < 7; i++ {
		if _, err := q.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	c, err := q.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer c.Free()

	if c.Name() != q.Name() || c.Dim() != q.Dim() {
		t.Fatalf("clone descriptor = %s/%d, want %s/%d", c.Name(), c.Dim(), q.Name(), q.Dim())
	}
	for i := 0; i < 10; i++ {
		a, err := q.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		b, err := c.Next()
		if err != nil {
			t.Fatalf("clone Next: %v", err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("clone diverged at point %d (-orig +clone):\n%s", i, diff)
		}
	}
}

func TestNextIntoLengthCheck(t *testing.T) {
	gsltest.RequireNative(t)

	q := seq(t, Sobol(), 3)
	if err := q.NextInto(make([]float64, 2)); gsl.CodeOf(err) != gsl.EBadLen {
		t.Errorf("NextInto short err = %v, want EBadLen", err)
	}
	if err := q.NextInto(make([]float64, 3)); err != nil {
		t.Errorf("NextInto exact err = %v, want nil", err)
	}
}

func TestFreedHandle(t *testing.T) {
	var q *Qrng
	q.Free()

	if q.Dim() != 0 || q.Name() != "" {
		t.Error("nil qrng getters must return zero values")
	}
	if _, err := q.Next(); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("nil qrng Next err = %v, want EFault", err)
	}
	if err := q.Reset(); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("nil qrng Reset err = %v, want EFault", err)
	}
}
