package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
	"github.com/ctfree/gogsl/pkg/gsl/matrix"
	"github.com/ctfree/gogsl/pkg/gsl/vector"
)

func mtx(t *testing.T, rows, cols int, data []float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromSlice(rows, cols, data)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	t.Cleanup(m.Free)
	return m
}

func vec(t *testing.T, data ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.FromSlice(data)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	t.Cleanup(v.Free)
	return v
}

func TestLUSolveAndDet(t *testing.T) {
	gsltest.RequireNative(t)

	aData := []float64{4, 3, 6, 3}
	a := mtx(t, 2, 2, aData)

	p, signum, err := LUDecomp(a)
	if err != nil {
		t.Fatalf("LUDecomp: %v", err)
	}
	defer p.Free()

	x, err := LUSolve(a, p, vec(t, 10, 12))
	if err != nil {
		t.Fatalf("LUSolve: %v", err)
	}
	defer x.Free()
	gsltest.CloseRel(t, x.At(0), 1, 1e-12, "x[0]")
	gsltest.CloseRel(t, x.At(1), 2, 1e-12, "x[1]")

	det := LUDet(a, signum)
	want := mat.Det(mat.NewDense(2, 2, aData))
	gsltest.CloseRel(t, det, want, 1e-12, "det")
	gsltest.CloseAbs(t, LULnDet(a), math.Log(math.Abs(want)), 1e-12, "lndet")
}

func TestLUSvxInPlace(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 2, []float64{2, 0, 0, 4})
	p, _, err := LUDecomp(a)
	if err != nil {
		t.Fatalf("LUDecomp: %v", err)
	}
	defer p.Free()

	x := vec(t, 6, 8)
	if err := LUSvx(a, p, x); err != nil {
		t.Fatalf("LUSvx: %v", err)
	}
	gsltest.CloseRel(t, x.At(0), 3, 1e-12, "x[0]")
	gsltest.CloseRel(t, x.At(1), 2, 1e-12, "x[1]")
}

func TestLUInvert(t *testing.T) {
	gsltest.RequireNative(t)

	aData := []float64{4, 7, 2, 6}
	a := mtx(t, 2, 2, aData)
	p, _, err := LUDecomp(a)
	if err != nil {
		t.Fatalf("LUDecomp: %v", err)
	}
	defer p.Free()

	inv, err := LUInvert(a, p)
	if err != nil {
		t.Fatalf("LUInvert: %v", err)
	}
	defer inv.Free()

	// inv * original must be the identity.
	orig := mat.NewDense(2, 2, aData)
	var prod mat.Dense
	prod.Mul(mat.NewDense(2, 2, inv.Data()), orig)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(prod.At(i, j)-want) > 1e-12 {
				t.Errorf("(inv*A)[%d,%d] = %g, want %g", i, j, prod.At(i, j), want)
			}
		}
	}
}

func TestLUSingularMatrix(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 2, []float64{1, 2, 2, 4})
	p, _, err := LUDecomp(a)
	if err != nil {
		t.Fatalf("LUDecomp: %v", err)
	}
	defer p.Free()

	_, err = LUInvert(a, p)
	if c := gsl.CodeOf(err); c != gsl.EDom && c != gsl.ESing {
		t.Errorf("LUInvert singular = %v (code %v), want EDom or ESing", err, c)
	}
}

func TestLUNonSquare(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, _, err := LUDecomp(a); gsl.CodeOf(err) != gsl.ENotSqr {
		t.Errorf("LUDecomp non-square = %v, want ENotSqr", err)
	}
}

func TestQRSolve(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 2, []float64{4, 3, 6, 3})
	tau, err := QRDecomp(a)
	if err != nil {
		t.Fatalf("QRDecomp: %v", err)
	}
	defer tau.Free()

	x, err := QRSolve(a, tau, vec(t, 10, 12))
	if err != nil {
		t.Fatalf("QRSolve: %v", err)
	}
	defer x.Free()
	gsltest.CloseRel(t, x.At(0), 1, 1e-12, "x[0]")
	gsltest.CloseRel(t, x.At(1), 2, 1e-12, "x[1]")
}

func TestQRLeastSquares(t *testing.T) {
	gsltest.RequireNative(t)

	// Fit y = c0 + c1*t through (0,1), (1,3), (2,5): exactly c = (1, 2).
	a := mtx(t, 3, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
	})
	tau, err := QRDecomp(a)
	if err != nil {
		t.Fatalf("QRDecomp: %v", err)
	}
	defer tau.Free()

	x, res, err := QRLSSolve(a, tau, vec(t, 1, 3, 5))
	if err != nil {
		t.Fatalf("QRLSSolve: %v", err)
	}
	defer x.Free()
	defer res.Free()

	gsltest.CloseRel(t, x.At(0), 1, 1e-12, "c0")
	gsltest.CloseRel(t, x.At(1), 2, 1e-12, "c1")
	for i := 0; i < res.Len(); i++ {
		gsltest.CloseAbs(t, res.At(i), 0, 1e-12, "residual")
	}
}

func TestCholesky(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 2, []float64{4, 2, 2, 3})
	if err := CholeskyDecomp(a); err != nil {
		t.Fatalf("CholeskyDecomp: %v", err)
	}

	x, err := CholeskySolve(a, vec(t, 10, 8))
	if err != nil {
		t.Fatalf("CholeskySolve: %v", err)
	}
	defer x.Free()
	gsltest.CloseRel(t, x.At(0), 1.75, 1e-12, "x[0]")
	gsltest.CloseRel(t, x.At(1), 1.5, 1e-12, "x[1]")

	if err := CholeskyInvert(a); err != nil {
		t.Fatalf("CholeskyInvert: %v", err)
	}
	// inverse of [[4,2],[2,3]] is 1/8 * [[3,-2],[-2,4]]
	gsltest.CloseRel(t, a.At(0, 0), 0.375, 1e-12, "inv[0,0]")
	gsltest.CloseRel(t, a.At(1, 1), 0.5, 1e-12, "inv[1,1]")
	gsltest.CloseRel(t, a.At(0, 1), -0.25, 1e-12, "inv[0,1]")
}

func TestCholeskyNotPositiveDefinite(t *testing.T) {
	gsltest.RequireNative(t)

	a := mtx(t, 2, 2, []float64{1, 2, 2, 1})
	if err := CholeskyDecomp(a); gsl.CodeOf(err) != gsl.EDom {
		t.Errorf("CholeskyDecomp indefinite = %v, want EDom", err)
	}
}

func TestSVDecompMatchesGonum(t *testing.T) {
	gsltest.RequireNative(t)

	aData := []float64{2, 0, 0, -3, 0, 0}
	a := mtx(t, 3, 2, aData)

	v, s, err := SVDecomp(a)
	if err != nil {
		t.Fatalf("SVDecomp: %v", err)
	}
	defer v.Free()
	defer s.Free()

	var ref mat.SVD
	if !ref.Factorize(mat.NewDense(3, 2, aData), mat.SVDThin) {
		t.Fatal("gonum SVD failed to factorize")
	}
	want := ref.Values(nil)

	got := s.Data()
	if len(got) != len(want) {
		t.Fatalf("got %d singular values, want %d", len(got), len(want))
	}
	for i := range want {
		gsltest.CloseRel(t, got[i], want[i], 1e-12, "singular value")
	}
}

func TestSVSolve(t *testing.T) {
	gsltest.RequireNative(t)

	// Overdetermined consistent system, same line fit as the QR test.
	a := mtx(t, 3, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
	})
	v, s, err := SVDecomp(a)
	if err != nil {
		t.Fatalf("SVDecomp: %v", err)
	}
	defer v.Free()
	defer s.Free()

	x, err := SVSolve(a, v, s, vec(t, 1, 3, 5))
	if err != nil {
		t.Fatalf("SVSolve: %v", err)
	}
	defer x.Free()
	gsltest.CloseRel(t, x.At(0), 1, 1e-10, "c0")
	gsltest.CloseRel(t, x.At(1), 2, 1e-10, "c1")
}

func TestFreedInputs(t *testing.T) {
	gsltest.RequireNative(t)

	m, err := matrix.New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Free()

	if _, _, err := LUDecomp(m); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("LUDecomp freed = %v, want EFault", err)
	}
	if LUDet(m, 1) != 0 {
		t.Error("LUDet freed must return 0")
	}
	if err := CholeskyDecomp(m); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("CholeskyDecomp freed = %v, want EFault", err)
	}
}
